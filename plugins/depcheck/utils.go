package depcheck

import (
	"regexp"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"golang.org/x/exp/slices"
)

// Pluralizes "dependency".
func dependencies(length int) string {
	if length < 2 {
		return "dependency"
	}
	return "dependencies"
}

// depMatches reports whether dep matches the alias matcher. A matcher is a name prefix,
// a "/pattern/" regular expression, or a list of those.
func depMatches(dep string, match any) (bool, error) {
	switch value := match.(type) {
	case string:
		if pattern, ok := regexpPattern(value); ok {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return false, errorutils.CheckErrorf("invalid alias pattern %s: %s", value, err.Error())
			}
			return re.MatchString(dep), nil
		}
		return strings.HasPrefix(dep, value), nil
	case *regexp.Regexp:
		return value.MatchString(dep), nil
	case []string:
		return depMatchesAny(dep, len(value), func(i int) any { return value[i] })
	case []any:
		return depMatchesAny(dep, len(value), func(i int) any { return value[i] })
	}
	return false, errorutils.CheckErrorf("unsupported alias matcher %v of type %T", match, match)
}

func depMatchesAny(dep string, length int, get func(int) any) (bool, error) {
	for i := 0; i < length; i++ {
		matches, err := depMatches(dep, get(i))
		if err != nil || matches {
			return matches, err
		}
	}
	return false, nil
}

func regexpPattern(value string) (string, bool) {
	if len(value) > 2 && strings.HasPrefix(value, "/") && strings.HasSuffix(value, "/") {
		return value[1 : len(value)-1], true
	}
	return "", false
}

type aliasDetection struct {
	missing   []string
	detected  bool
	installed bool
}

// detectAlias filters the explicit imports of an aliased dependency's sub-dependencies out of missing,
// as long as the aliased dependency itself is installed.
func detectAlias(missing, installed []string, alias string, match any) (aliasDetection, error) {
	outsideAlias := make([]string, 0, len(missing))
	for _, dep := range missing {
		matches, err := depMatches(dep, match)
		if err != nil {
			return aliasDetection{}, err
		}
		if !matches {
			outsideAlias = append(outsideAlias, dep)
		}
	}
	result := aliasDetection{
		missing:   outsideAlias,
		detected:  len(outsideAlias) != len(missing),
		installed: slices.Contains(installed, alias),
	}
	if !result.installed {
		result.missing = missing
	}
	return result, nil
}
