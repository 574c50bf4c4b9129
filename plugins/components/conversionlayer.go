package components

import (
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/ringtoolkit/ring-toolkit-core/docs/common"
	"github.com/urfave/cli"
)

// ConvertCommand builds the urfave/cli representation of a registered command, used to render its help.
func ConvertCommand(name string, aliases []string, executable *Executable) cli.Command {
	return cli.Command{
		Name:      name,
		Flags:     ConvertFlags(executable.Options),
		Aliases:   aliases,
		Usage:     executable.Summary,
		HelpName:  common.CreateUsage(name, executable.Summary, createCommandUsage(name, executable)),
		UsageText: createArgumentsSummary(executable),
	}
}

func createCommandUsage(name string, executable *Executable) []string {
	usage := name
	if len(ConvertFlags(executable.Options)) > 0 {
		usage += " [command options]"
	}
	if defaultOption, ok := executable.DefaultOption(); ok {
		usage += " <" + defaultOption.Name + ">"
	}
	return []string{usage}
}

func createArgumentsSummary(executable *Executable) string {
	defaultOption, ok := executable.DefaultOption()
	if !ok || defaultOption.Hidden {
		return ""
	}
	return "\t" + defaultOption.Name + "\n\t\t" + defaultOption.Description + "\n"
}

// ConvertFlags converts option definitions to urfave/cli flags. Hidden and positional options are skipped.
func ConvertFlags(flags []Flag) []cli.Flag {
	var convertedFlags []cli.Flag
	for _, flag := range flags {
		if flag.IsHidden() {
			continue
		}
		if stringFlag, ok := flag.(StringFlag); ok && stringFlag.DefaultOption {
			continue
		}
		converted, err := convertByType(flag)
		if err != nil {
			log.Warn(err.Error())
			continue
		}
		convertedFlags = append(convertedFlags, converted)
	}
	return convertedFlags
}

func convertByType(flag Flag) (cli.Flag, error) {
	if f, ok := flag.(StringFlag); ok {
		return convertStringFlag(f), nil
	}
	if f, ok := flag.(BoolFlag); ok {
		return convertBoolFlag(f), nil
	}
	return nil, errorutils.CheckErrorf("Flag '%s' does not match any known flag type.", flag.GetName())
}

// urfave/cli renders "name, x" as --name, -x.
func flagNames(flag Flag) string {
	if flag.GetAlias() == "" {
		return flag.GetName()
	}
	return flag.GetName() + ", " + flag.GetAlias()
}

func convertStringFlag(f StringFlag) cli.Flag {
	stringFlag := cli.StringFlag{
		Name:  flagNames(f),
		Usage: f.Description + "` `",
	}
	// If default is set, add it's value and return.
	if f.DefaultValue != "" {
		stringFlag.Usage = "[Default: " + f.DefaultValue + "] " + stringFlag.Usage
		return stringFlag
	}
	// Otherwise, mark as mandatory/optional accordingly.
	if f.isMandatory() {
		stringFlag.Usage = "[Mandatory] " + stringFlag.Usage
	} else {
		stringFlag.Usage = "[Optional] " + stringFlag.Usage
	}
	return stringFlag
}

func convertBoolFlag(f BoolFlag) cli.Flag {
	if f.DefaultValue {
		return cli.BoolTFlag{
			Name:  flagNames(f),
			Usage: "[Default: true] " + f.Description + "` `",
		}
	}
	return cli.BoolFlag{
		Name:  flagNames(f),
		Usage: "[Default: false] " + f.Description + "` `",
	}
}
