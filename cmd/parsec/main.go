package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parsec",
		Short: "Tokenize and lex source text against a LanguageDef",
	}

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newPresetCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
