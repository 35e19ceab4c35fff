package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/wpstatic/pkg/data"
	"github.com/kerbaras/wpstatic/pkg/integrations"
	"github.com/kerbaras/wpstatic/pkg/wxr"
)

var epubCmd = &cobra.Command{
	Use:   "epub [export.xml]",
	Short: "Bundle the converted content into a single EPUB",
	Long:  "Compile every published page and post into one EPUB file, from the manifest database or directly from the export file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		var siteInfo data.Site
		var records []*data.ExportRecord

		if len(args) == 1 {
			export, err := wxr.Parse(args[0])
			cobra.CheckErr(err)
			siteInfo = export.Site
			records = export.Records
		} else {
			repo, err := data.NewRepository(cfg.Database)
			cobra.CheckErr(err)
			defer repo.Close()

			records, err = repo.ListRecords()
			cobra.CheckErr(err)
			if len(records) == 0 {
				cobra.CheckErr(fmt.Errorf("no records in manifest; pass the export file or run 'wpstatic convert' first"))
			}
			siteInfo = data.Site{Title: "Site Export"}
		}

		if title, _ := cmd.Flags().GetString("title"); title != "" {
			siteInfo.Title = title
		}

		builder := integrations.NewEPubBuilder(cfg.OutputDir)
		path, err := builder.CreateEPub(siteInfo, records)
		cobra.CheckErr(err)

		fmt.Printf("📖 EPUB created: %s\n", path)
	},
}

func init() {
	epubCmd.Flags().StringP("out", "o", "site", "Output directory")
	epubCmd.Flags().String("db", "", "Manifest database path")
	epubCmd.Flags().StringP("title", "t", "", "Custom title for the EPUB")
}
