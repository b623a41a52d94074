package main

import (
	"context"
	"io"
	"os"
	"os/user"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, closeLog, err := tuiLogOutput(cmd)
		if err != nil {
			return err
		}
		defer closeLog()
		logrus.SetOutput(out)

		site, err := content.Load(cfg.ContentFile)
		if err != nil {
			return err
		}

		ctx := context.Background()
		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		owner := "local"
		if u, err := user.Current(); err == nil {
			owner = u.Username
		}

		m := tui.New(ctx, tui.Config{Site: site, Store: store, Owner: owner})
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

// tuiLogOutput picks where logs go while the TUI runs. The alternate
// screen owns the terminal, so that is the --log-file file or nowhere.
func tuiLogOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return nil, nil, err
	}
	if logFile == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().String("log-file", "", "Write logs to this file while the TUI runs")
}
