package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after applying the config file, the
--difficulty preset and asset overrides from the environment.

Save the output to ~/.invasion/configs/invasion.yaml to customise the game.`,
	Run: runConfigDump,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in default configuration",
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configDefaultsCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) {
	cfg, _, err := loadGameConfig()
	if err != nil {
		exitf("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		exitf("%v", err)
	}
	os.Stdout.Write(data)
}
