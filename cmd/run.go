package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/runelabs/realias/formatter"
	tt "github.com/runelabs/realias/internal/types"
	"github.com/runelabs/realias/rewrite"
)

var (
	dryRun        bool
	ignorePaths   string
	runJsonOutput bool
	outPath       string
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Rewrite aliases across a source tree",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide a root directory")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := rewrite.New(cfgFile, dryRun)
		if err != nil {
			logger.Fatal("Failed to initialize rewrite engine", zap.Error(err))
		}

		if ignorePaths != "" {
			paths := strings.Split(ignorePaths, ",")
			for _, path := range paths {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		results, err := rewrite.ProcessRoot(ctx, logger, engine, args[0])
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}

		printResults(logger, results, dryRun, runJsonOutput, outPath)
	},
}

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute and report changes without writing them")
	runCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of path substrings to ignore")
	runCmd.Flags().BoolVar(&runJsonOutput, "json", false, "Output results in JSON format")
	runCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func printResults(logger *zap.Logger, results []tt.FileResult, dryRun, isJson bool, jsonOutput string) {
	if !isJson {
		fmt.Println(formatter.GenerateReport(results, dryRun))
		return
	}

	d, err := json.Marshal(results)
	if err != nil {
		logger.Error("Error marshalling results to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}

	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
