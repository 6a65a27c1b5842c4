package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pydantic-validate",
	Short: "Validate documents against a declarative schema",
	Long:  `pydantic-validate builds a validator from a schema file and checks JSON or YAML documents against it, reporting every failure with its location.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("schema", "s", "", "Path to the schema file (YAML or JSON)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to an optional config file (YAML or JSON)")
	_ = rootCmd.MarkPersistentFlagRequired("schema")
}

// buildFromFlags loads the schema and optional config named on the command
// line and builds the validator.
func buildFromFlags(cmd *cobra.Command) (*validatorHandle, error) {
	schemaPath, _ := cmd.Flags().GetString("schema")
	configPath, _ := cmd.Flags().GetString("config")
	return buildValidator(schemaPath, configPath)
}
