package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. When rendering fails (no
// usable terminal profile) the raw markdown is still printed.
func printMarkdown(doc string) {
	out, err := glamour.RenderWithEnvironmentConfig(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
