// internal/cli/list.go
package compbench

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mwiater/compbench/internal/registry"
	"github.com/mwiater/compbench/internal/util"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered benchmark test cases",
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := registry.FromConfig(GetConfig())
		if err != nil {
			return err
		}

		nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
		out := cmd.OutOrStdout()
		for i, tc := range cases {
			fmt.Fprintf(out, "%d. %s (%d bytes)\n", i+1, nameStyle.Render(tc.Name), len(tc.Source))
			fmt.Fprintf(out, "   %s\n", util.TruncateRunes(firstLine(tc.Source), 72))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func firstLine(source string) string {
	trimmed := strings.TrimSpace(source)
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}
