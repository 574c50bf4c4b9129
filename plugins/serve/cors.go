package serve

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
)

const (
	configKey      = "config"
	corsConfigName = "web-dev-server.cors.config.mjs"
)

// The dev server has no CORS flag, it only accepts middlewares from a configuration module.
const corsConfigTemplate = `export default {
  middleware: [
    function cors(context, next) {
      context.set('Access-Control-Allow-Origin', %s);
      context.set('Access-Control-Allow-Methods', 'GET');
      return next();
    },
  ],
};
`

// writeCorsConfig writes a dev server configuration module allowing origin.
// The returned cleanup removes it.
func writeCorsConfig(origin string) (path string, cleanup func() error, err error) {
	quotedOrigin, err := json.Marshal(origin)
	if err != nil {
		return "", nil, errorutils.CheckError(err)
	}
	dir, err := fileutils.CreateTempDir()
	if err != nil {
		return "", nil, err
	}
	cleanup = func() error {
		return fileutils.RemoveTempDir(dir)
	}
	path = filepath.Join(dir, corsConfigName)
	if err = os.WriteFile(path, []byte(fmt.Sprintf(corsConfigTemplate, quotedOrigin)), 0600); err != nil {
		return "", nil, errorutils.CheckError(fmt.Errorf("%w (cleanup: %v)", err, cleanup()))
	}
	return path, cleanup, nil
}

// hasCustomConfig reports whether the dev server already reads a configuration module,
// which a generated one cannot be combined with.
func hasCustomConfig(base map[string]any, argv []string) bool {
	for key := range base {
		if key == configKey {
			return true
		}
	}
	for _, arg := range argv {
		if arg == "--"+configKey || arg == "-c" || strings.HasPrefix(arg, "--"+configKey+"=") {
			return true
		}
	}
	return false
}
