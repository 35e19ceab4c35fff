package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/wpstatic/pkg/app"
	"github.com/kerbaras/wpstatic/pkg/data"
	"github.com/kerbaras/wpstatic/pkg/services"
	"github.com/kerbaras/wpstatic/pkg/wxr"
)

var downloadCmd = &cobra.Command{
	Use:   "download [export.xml]",
	Short: "Download the media files referenced by the export",
	Long: `Fetch every media attachment in the manifest into <out>/assets.

Without arguments the attachment manifest from a previous 'convert' run
is used. Passing the export file parses the attachment list directly.
Failed downloads are logged and reported in failed-downloads.json; they
never abort the run.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		useTUI, _ := cmd.Flags().GetBool("tui")

		repo := openRepository(cfg.Database)
		if repo != nil {
			defer repo.Close()
		}

		attachments, err := resolveAttachments(repo, args, overwrite)
		cobra.CheckErr(err)

		if len(attachments) == 0 {
			fmt.Println("✓ Nothing to download.")
			return
		}

		fmt.Printf("Downloading %d attachments...\n", len(attachments))

		opts := services.DownloaderOptions{
			Timeout:    cfg.Timeout(),
			UserAgent:  cfg.UserAgent,
			RateLimit:  cfg.RateLimit(),
			Overwrite:  overwrite || cfg.Overwrite,
			Thumbnails: cfg.Thumbnails,
		}
		downloader := newDownloader(repo, cfg.OutputDir, opts)
		defer downloader.Close()

		var summary *services.DownloadSummary
		if useTUI {
			summary, err = app.RunDownloadUI(downloader, attachments)
		} else {
			// Listen for progress
			go func() {
				for progress := range downloader.GetProgressChannel() {
					switch progress.Status {
					case "complete":
						fmt.Printf("[%d/%d] ✓ %s\n", progress.Index, progress.Total, progress.Filename)
					case "skipped":
						fmt.Printf("[%d/%d] ✓ Already exists: %s\n", progress.Index, progress.Total, progress.Filename)
					case "error":
						fmt.Printf("[%d/%d] ✗ %s: %v\n", progress.Index, progress.Total, progress.Filename, progress.Error)
					}
				}
			}()
			summary, err = downloader.DownloadAll(attachments)
		}
		cobra.CheckErr(err)

		fmt.Println()
		fmt.Printf("Downloaded: %d/%d (skipped %d)\n", summary.Downloaded, summary.Total, summary.Skipped)
		if summary.Failed > 0 {
			fmt.Printf("Failed: %d (full list in %s/failed-downloads.json)\n", summary.Failed, cfg.OutputDir)
		}
	},
}

func init() {
	downloadCmd.Flags().StringP("out", "o", "site", "Output directory")
	downloadCmd.Flags().String("db", "", "Manifest database path")
	downloadCmd.Flags().Bool("overwrite", false, "Re-download files that already exist")
	downloadCmd.Flags().Bool("tui", false, "Show a live progress view")
}

// resolveAttachments prefers the manifest database, falling back to
// parsing the export file directly.
func resolveAttachments(repo *data.Repository, args []string, overwrite bool) ([]*data.MediaAttachment, error) {
	if len(args) == 1 {
		export, err := wxr.Parse(args[0])
		if err != nil {
			return nil, err
		}
		return services.CollectMedia(export), nil
	}

	if repo == nil {
		return nil, fmt.Errorf("no manifest database found; pass the export file or run 'wpstatic convert' first")
	}

	if overwrite {
		return repo.ListAttachments()
	}
	return repo.ListPendingAttachments()
}

func newDownloader(repo *data.Repository, outDir string, opts services.DownloaderOptions) *services.Downloader {
	if repo == nil {
		return services.NewDownloader(nil, outDir, opts)
	}
	return services.NewDownloader(repo, outDir, opts)
}
