package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/wpstatic/pkg/site"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [dir]",
	Short: "Strip WordPress leftovers and fix links in exported HTML",
	Long: `Remove WordPress-only script and stylesheet references from every
HTML file under the directory, and rewrite absolute links to relative
ones so the site works when hosted under a subpath.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		siteURL, _ := cmd.Flags().GetString("site-url")

		fmt.Println("Cleaning WordPress dependencies...")

		fixed, err := site.CleanDir(args[0], siteURL)
		cobra.CheckErr(err)

		fmt.Printf("✓ Done! Cleaned %d files\n", fixed)
	},
}

func init() {
	cleanCmd.Flags().String("site-url", "", "Original site URL to rewrite to relative links")

	rootCmd.AddCommand(cleanCmd)
}
