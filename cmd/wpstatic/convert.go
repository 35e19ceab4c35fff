package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/kerbaras/wpstatic/pkg/data"
	"github.com/kerbaras/wpstatic/pkg/services"
)

var convertCmd = &cobra.Command{
	Use:   "convert [export.xml]",
	Short: "Convert a WordPress export into a static HTML site",
	Long:  "Parse the WXR export file, write one HTML page per published page/post, and record the referenced media in the manifest",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)

		repo := openRepository(cfg.Database)
		if repo != nil {
			defer repo.Close()
		}

		fmt.Println("Parsing WordPress XML...")

		converter := newConverter(repo, cfg.OutputDir)
		summary, err := converter.Convert(args[0])
		cobra.CheckErr(err)

		fmt.Printf("✓ Static site created in '%s/'\n", cfg.OutputDir)
		fmt.Printf("  - %d pages\n", summary.Pages)
		fmt.Printf("  - %d posts\n", summary.Posts)
		fmt.Printf("  - %d attachments to download\n", summary.Attachments)
		if summary.Skipped > 0 {
			fmt.Printf("  - %d items skipped (see warnings above)\n", summary.Skipped)
		}
		fmt.Println("\n💡 To fetch the media files, run: wpstatic download")
	},
}

func init() {
	convertCmd.Flags().StringP("out", "o", "site", "Output directory")
	convertCmd.Flags().String("db", "", "Manifest database path")
}

// openRepository opens the manifest database, degrading to manifest-less
// operation when it cannot be opened. The JSON manifests still cover the
// downloader in that case.
func openRepository(path string) *data.Repository {
	repo, err := data.NewRepository(path)
	if err != nil {
		log.Printf("Warning: manifest database unavailable (%v), continuing without it", err)
		return nil
	}
	return repo
}

// newConverter keeps the nil repository from sneaking into the interface.
func newConverter(repo *data.Repository, outDir string) *services.Converter {
	if repo == nil {
		return services.NewConverter(nil, outDir)
	}
	return services.NewConverter(repo, outDir)
}
