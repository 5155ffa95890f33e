package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBoldUpper upper-cases a help heading and makes it bold on terminals
func formatBoldUpper(s string) string {
	upper := strings.ToUpper(s)
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return upper
	}
	return pterm.Bold.Sprint(upper)
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"boldUpper": formatBoldUpper,
	})
}
