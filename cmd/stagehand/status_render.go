package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func renderGateLine(label string, ready bool, colorize bool) string {
	status := "READY"
	color := ansiGreen
	if !ready {
		status = "NOT READY"
		color = ansiRed
	}
	line := fmt.Sprintf("%-20s [%s]", label+":", status)
	if colorize {
		return color + line + ansiReset
	}
	return line
}

func renderGateReason(reason string, colorize bool) string {
	line := "  - " + reason
	if colorize {
		return ansiYellow + line + ansiReset
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
