package common

const GlobalHelpTemplate = `{{.Title}}

Usage:
	{{.Usage}}

Available Commands:
{{.Commands}}
{{if .HelpCommands}}For more info, run any command with the --help flag:
{{range .HelpCommands}}	{{.}}
{{end}}
{{end}}Options:
	{{range .SharedFlags}}{{.}}
	{{end}}
`

const CommandHelpTemplate = `{{.HelpName}}{{if .UsageText}}
Arguments:
{{.UsageText}}
{{end}}
Command options:
	{{if .VisibleFlags}}{{range .VisibleFlags}}{{.}}
	{{end}}{{else}}No options
	{{end}}
Shared options:
	{{range .SharedFlags}}{{.}}
	{{end}}

`
