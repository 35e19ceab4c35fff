package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/wpstatic/pkg/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "wpstatic",
	Short: "Convert a WordPress export into a static site",
	Long:  "Parse a WordPress XML export (WXR), generate a static HTML site, and download the referenced media files",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.wpstatic.yaml)")

	// Add all subcommands
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(epubCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file, then lets changed flags win.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(cfgFile)
	cobra.CheckErr(err)

	if cmd.Flags().Changed("out") {
		cfg.OutputDir, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("db") {
		cfg.Database, _ = cmd.Flags().GetString("db")
	}
	return cfg
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
