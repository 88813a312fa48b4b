package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wordz",
	Short: "Personal vocabulary trainer",
	Long:  "wordz is a terminal app that walks through a word list, tracks which words you know and helps you learn the rest.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (overrides WORDZ_CONFIG env var)")
	rootCmd.PersistentFlags().String("progress", "", "Path to the progress JSON file (overrides WORDZ_PROGRESS env var)")
	rootCmd.PersistentFlags().String("dict", "", "Path to a base dictionary JSON file (overrides WORDZ_DICTIONARY env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDZ_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
