package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
)

var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio, on the web and in the terminal",
	Long: `portfolio serves the portfolio site over HTTP (serve) or renders the same
content as an interactive terminal page (tui).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cfg.LogLevel, nil)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.ContentFile, "content", cfg.ContentFile, "YAML file with site content (default: built in)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
}
