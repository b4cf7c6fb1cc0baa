package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/game"
	"github.com/vovakirdan/rsa-snake/internal/numtheory"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through one RSA round without playing",
	Long: `Generate the numbers of one round with the same generators the game uses
and print every step: the prime pool, p and q, n and phi, the exponent
options, d, the ciphertext of a word and its decryption.

Examples:
  rsasnake demo
  rsasnake demo --seed 42 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	difficulty := config.Easy
	if flagDifficulty != "" {
		if difficulty, err = config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return writeDemo(cmd.OutOrStdout(), cfg, difficulty, seed)
}

// writeDemo prints one round derived from seed.
func writeDemo(w io.Writer, cfg config.Config, d config.Difficulty, seed int64) error {
	field := game.Field{Cols: cfg.Field.Cols, Rows: cfg.Field.Rows}
	gen := game.NewGenerator(rand.New(rand.NewSource(seed)), field, cfg.Field.CellWidth)
	dc := cfg.For(d)

	pool, targets := gen.PuzzleNumbers(dc)
	keys := game.NewKeyMaterial(targets[0], targets[1])

	fmt.Fprintf(w, "RSA round (%s, seed %d)\n\n", d.Title(), seed)
	fmt.Fprintf(w, "1. Primes\n")
	fmt.Fprintf(w, "   pool     %s\n", joinInts(pool))
	fmt.Fprintf(w, "   p, q     %d, %d\n", keys.P, keys.Q)
	fmt.Fprintf(w, "   n        %d\n", keys.N)
	fmt.Fprintf(w, "   phi      %d\n\n", keys.Phi)

	options := gen.ExponentCandidates(keys.Phi, cfg.Exponent.SearchCap, cfg.Exponent.PoolSize)
	if len(options) == 0 {
		return fmt.Errorf("no exponent coprime to phi=%d", keys.Phi)
	}
	keys, err := keys.WithExponent(options[0])
	if err != nil {
		return fmt.Errorf("exponent %d: %w", options[0], err)
	}

	fmt.Fprintf(w, "2. Public exponent\n")
	fmt.Fprintf(w, "   options  %s\n", joinInts(options))
	fmt.Fprintf(w, "   e        %d\n", keys.E)
	fmt.Fprintf(w, "   d        %d  (e*d mod phi = %d)\n\n", keys.D, keys.E*keys.D%keys.Phi)

	word := gen.Word(cfg.Vocabulary)
	cipher := numtheory.EncryptText(word, keys.E, keys.N)
	fmt.Fprintf(w, "3. Encrypt\n")
	fmt.Fprintf(w, "   word     %s\n", word)
	fmt.Fprintf(w, "   cipher   %s\n\n", joinInts(cipher))

	plain := numtheory.DecryptText(cipher, keys.D, keys.N)
	fmt.Fprintf(w, "4. Decrypt\n")
	fmt.Fprintf(w, "   n, d     %d, %d\n", keys.N, keys.D)
	fmt.Fprintf(w, "   text     %s\n", plain)
	if plain == word {
		fmt.Fprintln(w, "   result   decrypted correctly")
	} else {
		fmt.Fprintln(w, "   result   mismatch")
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
