package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rsa-snake/internal/config"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the words that can be encrypted",
	Args:  cobra.NoArgs,
	RunE:  runWords,
}

func runWords(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(cfg.Vocabulary) == 0 {
		fmt.Fprintln(out, "No words configured.")
		return nil
	}

	fmt.Fprintf(out, "Vocabulary (%d words):\n\n", len(cfg.Vocabulary))
	for _, w := range cfg.Vocabulary {
		fmt.Fprintf(out, "  %s\n", w)
	}
	return nil
}
