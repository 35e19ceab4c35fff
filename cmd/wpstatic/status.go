package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kerbaras/wpstatic/pkg/data"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the download state of the media manifest",
	Long:  "Display every attachment in the manifest database with its download status",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		repo, err := data.NewRepository(cfg.Database)
		cobra.CheckErr(err)
		defer repo.Close()

		attachments, err := repo.ListAttachments()
		cobra.CheckErr(err)

		if len(attachments) == 0 {
			fmt.Println("📄 No attachments in manifest. Run 'wpstatic convert' first.")
			return
		}

		columns := []table.Column{
			{Title: "File", Width: 36},
			{Title: "Status", Width: 10},
			{Title: "Size", Width: 10},
			{Title: "Error", Width: 32},
		}

		rows := []table.Row{}
		for _, att := range attachments {
			size := ""
			if att.Size > 0 {
				size = fmt.Sprintf("%d", att.Size)
			}
			rows = append(rows, table.Row{
				truncateString(att.Filename, 34),
				string(att.Status),
				size,
				truncateString(att.Error, 30),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		counts, err := repo.StatusCounts()
		cobra.CheckErr(err)

		fmt.Printf("\n📦 Manifest (%d attachments: %d success, %d pending, %d failed)\n\n",
			len(attachments),
			counts[data.StatusSuccess],
			counts[data.StatusPending],
			counts[data.StatusFailed])
		fmt.Println(t.View())
	},
}

func init() {
	statusCmd.Flags().StringP("out", "o", "site", "Output directory")
	statusCmd.Flags().String("db", "", "Manifest database path")

	rootCmd.AddCommand(statusCmd)
}
