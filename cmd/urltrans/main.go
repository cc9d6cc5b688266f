package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/articletrans/internal/cli"
	"codeberg.org/snonux/articletrans/internal/llm"
	"codeberg.org/snonux/articletrans/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateURLCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Credentials are validated before any network call happens
	translator, err := llm.NewTranslator(cli.OpenAIConfig())
	if err != nil {
		return err
	}

	proc := processor.NewURLProcessor(flags, translator)
	return proc.Run(context.Background())
}
