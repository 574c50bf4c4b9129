package configuration

import (
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"gopkg.in/yaml.v3"
)

// Decode converts a loosely typed configuration value, as read from a file, into target.
// Fields of target are matched through their yaml tags.
func Decode(raw any, target any) error {
	content, err := yaml.Marshal(raw)
	if err != nil {
		return errorutils.CheckError(err)
	}
	return errorutils.CheckError(yaml.Unmarshal(content, target))
}
