package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgHiMagenta, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	labelColor   = color.New(color.FgCyan)
	requestColor = color.New(color.FgBlue)
)

func printHeader(text string) {
	if jsonOutput {
		return
	}
	line := strings.Repeat("=", 60)
	headerColor.Println(line)
	pad := (60 - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	headerColor.Println(strings.Repeat(" ", pad) + text)
	headerColor.Println(line)
}

func printRequest(u string) {
	if jsonOutput {
		return
	}
	requestColor.Printf("→ GET %s\n", u)
}

func printSuccess(format string, a ...any) {
	successColor.Printf("✓ "+format+"\n", a...)
}

func printError(format string, a ...any) {
	errorColor.Fprintf(os.Stderr, "✗ "+format+"\n", a...)
}

func printInfo(label string, value any) {
	labelColor.Printf("  %s: ", label)
	fmt.Println(value)
}

// printJSON dumps the raw envelope for machine consumption.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
