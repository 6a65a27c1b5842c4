package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Build the schema without validating anything",
	Long:  `Builds the validator from the schema file and reports build errors (malformed nodes, unknown kinds, unresolved references). Useful in CI to catch schema drift early.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handle, err := buildFromFlags(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok (%s)\n", handle.schemaPath, handle.sv.Name())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
