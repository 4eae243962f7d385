package util

import (
	"github.com/fatih/color"
)

//	ForceColor turns escape codes on even when stdout is not a terminal, or
//	off entirely.
func ForceColor(enabled bool) {
	color.NoColor = !enabled
}

func Cyan(s string) string {
	cyan := color.New(color.FgHiCyan)
	return cyan.SprintFunc()(s)
}

func Green(s string) string {
	green := color.New(color.FgHiGreen)
	return green.SprintFunc()(s)
}

func Yellow(s string) string {
	yellow := color.New(color.FgHiYellow)
	return yellow.SprintFunc()(s)
}

func Red(s string) string {
	red := color.New(color.FgHiRed)
	return red.SprintFunc()(s)
}
