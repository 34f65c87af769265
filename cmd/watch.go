package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/runelabs/realias/internal"
	"github.com/runelabs/realias/rewrite"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Preview rewrites as files change",
	Long: `Watches the given directories and, whenever a source file is written,
logs the rewrites that a run would apply to it. Nothing is ever written back.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directories to watch")
			os.Exit(1)
		}

		engine, err := rewrite.New(cfgFile, true)
		if err != nil {
			logger.Fatal("Failed to initialize rewrite engine", zap.Error(err))
		}

		watcher, err := internal.NewWatcher(engine, logger, args, rewrite.SourceExtension)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer watcher.Stop()

		// block until interrupted
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}
