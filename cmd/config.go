package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordz/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, _ := cmd.Flags().GetBool("env")
		if env {
			text, err := config.Usage()
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		orDefault := func(s string) string {
			if s == "" {
				return "(default)"
			}
			return s
		}
		fmt.Printf("Config file:    %s\n", orDefault(config.DefaultPath()))
		fmt.Printf("Progress:       %s\n", orDefault(cfg.Paths.Progress))
		fmt.Printf("Dictionary:     %s\n", orDefault(cfg.Paths.Dictionary))
		fmt.Printf("Database:       %s\n", orDefault(cfg.Paths.DB))
		fmt.Printf("Log file:       %s\n", orDefault(cfg.Paths.Log))
		fmt.Printf("Save debounce:  %s\n", cfg.Save.Debounce)
		fmt.Printf("Backup on exit: %v\n", cfg.Save.BackupOnExit)
		fmt.Printf("Max history:    %d\n", cfg.Session.MaxHistory)
		fmt.Printf("Auto mark:      %v\n", cfg.Session.AutoMarkKnown)
		fmt.Printf("Log:            %s/%s\n", cfg.Log.Level, cfg.Log.Format)
		fmt.Printf("LLM provider:   %s\n", orDefault(cfg.LLM.Provider))
		fmt.Printf("Speech:         %s\n", orDefault(cfg.Speech.Command))
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("env", false, "List the supported environment variables")
}
