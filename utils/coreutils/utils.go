package coreutils

import (
	"errors"
	"os"
	"os/exec"
	"reflect"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Error modes (how should the application behave when the CheckError function is invoked):
type OnError string

var cliExecutableName = "ring-toolkit"

func init() {
	// Initialize error handling.
	if os.Getenv(ErrorHandling) == string(OnErrorPanic) {
		errorutils.CheckError = PanicOnError
	}
}

// Exit codes:
type ExitCode struct {
	Code int
}

var ExitCodeNoError = ExitCode{0}
var ExitCodeError = ExitCode{1}

type CliError struct {
	ExitCode
	ErrorMsg string
}

func (err CliError) Error() string {
	return err.ErrorMsg
}

func PanicOnError(err error) error {
	if err != nil {
		panic(err)
	}
	return err
}

func ExitOnErr(err error) {
	var cliError CliError
	if errors.As(err, &cliError) {
		traceExit(cliError.ExitCode, err)
	}
	if exitCode := GetExitCode(err); exitCode != ExitCodeNoError {
		traceExit(exitCode, err)
	}
}

func traceExit(exitCode ExitCode, err error) {
	if err != nil && len(err.Error()) > 0 {
		log.Error(err)
	}
	os.Exit(exitCode.Code)
}

func GetExitCode(err error) ExitCode {
	var cliError CliError
	if errors.As(err, &cliError) {
		return cliError.ExitCode
	}
	if err != nil {
		return ExitCodeError
	}
	return ExitCodeNoError
}

// When running a tool in an external process, if the tool fails to run or doesn't complete successfully ExitError is returned.
// We would like to return a regular error instead of ExitError,
// because urfave/cli automatically exits when this error is returned.
func ConvertExitCodeError(err error) error {
	if _, ok := err.(*exec.ExitError); ok {
		err = errors.New(err.Error())
	}
	return err
}

func SetCliExecutableName(executableName string) {
	cliExecutableName = executableName
}

func GetCliExecutableName() string {
	return cliExecutableName
}

// IsFalsy reports whether value would be skipped as "no value":
// nil (also a typed nil), false, the empty string and numeric zero.
func IsFalsy(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return !v.Bool()
	case reflect.String:
		return v.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// ToCamelCase converts a kebab-case option name to camelCase, e.g. "ssl-key" to "sslKey".
func ToCamelCase(name string) string {
	parts := strings.Split(name, "-")
	title := cases.Title(language.Und, cases.NoLower)
	var builder strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if builder.Len() == 0 && i == 0 {
			builder.WriteString(part)
			continue
		}
		builder.WriteString(title.String(part))
	}
	return builder.String()
}

// ToKebabCase converts a camelCase configuration key to a kebab-case flag name, e.g. "appIndex" to "app-index".
func ToKebabCase(name string) string {
	var builder strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				builder.WriteByte('-')
			}
			builder.WriteRune(r + ('a' - 'A'))
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

func ListToText(list []string) string {
	return "'" + strings.Join(list, "', '") + "'"
}
