// Package cli wires the showerthoughts commands.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skeeto/showerthoughts/internal/infra/logger"
	"github.com/skeeto/showerthoughts/internal/infra/workspacefinder"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "showerthoughts",
		Short:        "showerthoughts — distill a scored record dump into a fortune file",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}

			logRoot := wd
			if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ = logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .showerthoughts/logs/showerthoughts.log")

	cmd.AddCommand(runCmd(), benchCmd(), browseCmd(), initCmd(), versionCmd())
	return cmd
}
