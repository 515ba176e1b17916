package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pindex-dev/pindex/pkg/lockfile"
)

// newLockfilesCmd creates the lockfiles command listing recognized formats.
func newLockfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lockfiles",
		Short: "List the recognized dependency file formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

			rows := make([][]string, 0, len(lockfile.Types()))
			for _, t := range lockfile.Types() {
				rows = append(rows, []string{t.String(), t.FileName(), t.RegistryHost()})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Format", "File", "Registry").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					return StyleValue
				})
			fmt.Println(t.Render())
		},
	}
}
