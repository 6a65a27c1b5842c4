package main

import (
	"fmt"
	"os"

	pydanticcore "github.com/AlexWaygood/pydantic-core"
	"github.com/AlexWaygood/pydantic-core/internal/schemafile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [documents...]",
	Short: "Validate documents against the schema",
	Long:  `Validates each document file (JSON or YAML, by extension) against the schema and prints every line error with its location. Exits non-zero if any document fails.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handle, err := buildFromFlags(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		failed := false
		for _, path := range args {
			if err := validateDocument(handle, path); err != nil {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validatorHandle pairs the built validator with its source path for
// reporting.
type validatorHandle struct {
	sv         *pydanticcore.SchemaValidator
	schemaPath string
}

func buildValidator(schemaPath, configPath string) (*validatorHandle, error) {
	schema, err := schemafile.Load(schemaPath)
	if err != nil {
		return nil, err
	}
	var config map[string]any
	if configPath != "" {
		config, err = schemafile.Load(configPath)
		if err != nil {
			return nil, err
		}
	}
	sv, err := pydanticcore.BuildSchema(schema, config)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", schemaPath, err)
	}
	return &validatorHandle{sv: sv, schemaPath: schemaPath}, nil
}

func validateDocument(handle *validatorHandle, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return err
	}
	if schemafile.IsYAML(path) {
		_, err = handle.sv.ValidateYAML(data)
	} else {
		_, err = handle.sv.ValidateJSON(data)
	}
	if err == nil {
		fmt.Printf("%s: ok\n", path)
		return nil
	}
	if ve, ok := pydanticcore.AsValidationError(err); ok {
		fmt.Printf("%s: %d error(s)\n", path, len(ve.Errors()))
		for _, line := range ve.Errors() {
			loc := line.Loc.String()
			if loc == "" {
				loc = "(root)"
			}
			fmt.Printf("  %s: %s [%s]\n", loc, line.Message(), line.Kind)
		}
		return err
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
	return err
}
