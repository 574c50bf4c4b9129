package coreutils

import (
	"github.com/forPelevin/gomoji"
	"github.com/gookit/color"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

// Add green color style to the string if possible.
func PrintTitle(str string) string {
	return colorStr(str, color.Green)
}

// Add bold style to the string if possible.
func PrintBold(str string) string {
	return colorStr(str, color.Bold)
}

// Add bold and green style to the string if possible.
func PrintBoldTitle(str string) string {
	return PrintBold(PrintTitle(str))
}

// Add yellow color style to the string if possible.
func PrintYellow(str string) string {
	return colorStr(str, color.Yellow)
}

// Add red color style to the string if possible.
func PrintRed(str string) string {
	return colorStr(str, color.Red)
}

// Add the requested style to the string if possible.
func colorStr(str string, c color.Color) string {
	// Add styles only on supported terminals
	if log.IsStdOutTerminal() && log.IsColorsSupported() {
		return c.Render(str)
	}
	return RemoveEmojisIfNonSupportedTerminal(str)
}

// Remove emojis from non-supported terminals
func RemoveEmojisIfNonSupportedTerminal(msg string) string {
	if !(log.IsStdOutTerminal() && log.IsColorsSupported()) {
		if gomoji.ContainsEmoji(msg) {
			msg = gomoji.RemoveEmojis(msg)
		}
	}
	return msg
}
