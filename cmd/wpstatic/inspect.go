package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/wpstatic/pkg/services"
	"github.com/kerbaras/wpstatic/pkg/wxr"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [export.xml]",
	Short: "Show what an export contains without writing anything",
	Long:  "Parse the export file and list its pages, posts, and attachments in a table (dry run)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		export, err := wxr.Parse(args[0])
		cobra.CheckErr(err)

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Type", "Title", "Slug", "Status")

		for i, rec := range export.Records {
			t.Row(fmt.Sprintf("%d", i+1), string(rec.Kind), truncateString(rec.Title, 48), rec.Slug, rec.Status)
		}

		fmt.Printf("\n%s\n", export.Site.Title)
		if export.Site.Description != "" {
			fmt.Println(export.Site.Description)
		}
		fmt.Println(t)

		media := services.CollectMedia(export)
		fmt.Printf("📄 %d pages, %d posts, %d media URLs", len(export.Pages()), len(export.Posts()), len(media))
		if export.Skipped > 0 {
			fmt.Printf(", %d skipped", export.Skipped)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
