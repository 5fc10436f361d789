package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/golddigger/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print, validate or describe the tuning file",
	Long: `Work with the golddigger.yaml tuning file.

The file is looked up in this order:
  --config <path>
  ~/.golddigger/configs/golddigger.yaml
  ./configs/golddigger.yaml
  built-in defaults

Examples:
  golddigger config print > golddigger.yaml
  golddigger config print --effective --difficulty hard
  golddigger config validate ./golddigger.yaml
  golddigger config schema`,
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the default tuning file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !flagEffective {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}

		cfg, source, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("config: encode: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# source: %s, difficulty: %s\n", source, preset)
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a tuning file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("config: read %s: %w", args[0], err)
		}
		if _, err := config.Parse(data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the tuning file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.Schema())
		return err
	},
}

func init() {
	configPrintCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the loaded config with the difficulty applied")
	configCmd.AddCommand(configPrintCmd, configValidateCmd, configSchemaCmd)
}
