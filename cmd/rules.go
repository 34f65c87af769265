package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/runelabs/realias/rewrite"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active rewrite rule table",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := rewrite.New(cfgFile, true)
		if err != nil {
			logger.Fatal("Failed to initialize rewrite engine", zap.Error(err))
		}

		for _, rule := range engine.Rules() {
			fmt.Printf("%s\n", rule.Description)
			fmt.Printf("  pattern:     %s\n", rule.Pattern.String())
			fmt.Printf("  replacement: %s\n", rule.Replacement)
			if rule.Import != "" {
				fmt.Printf("  import:      %s\n", rule.Import)
			}
			fmt.Println()
		}
	},
}
