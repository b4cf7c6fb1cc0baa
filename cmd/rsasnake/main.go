// rsasnake is a terminal snake game that walks the player through one
// textbook RSA round: pick two primes, choose a public exponent, encrypt
// a word letter by letter and decrypt it back.
//
// Usage:
//
//	rsasnake [play]          - Play (default)
//	rsasnake config          - Print the effective configuration
//	rsasnake demo            - Walk through one RSA round without the game
//	rsasnake words           - List the word vocabulary
//
// Global flags:
//
//	--config <path>        - Custom config YAML
//	--player <name>        - Skip the name prompt
//	--difficulty <level>   - easy, medium or hard (skips the menu with --player)
//	--fps <rate>           - Tick rate (default: from config)
//	--seed <value>         - RNG seed for reproducible rounds
//	--log-file <path>      - Write logs to a file
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagPlayer     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rsasnake",
	Short: "RSA Snake - learn RSA by eating numbers",
	Long: `RSA Snake is a terminal snake game built around one RSA round.

Stages:
  1. Eat the two required primes p and q
  2. Eat a public exponent e coprime to phi = (p-1)(q-1)
  3. Encrypt a word by eating its letters in order
  4. Decrypt it by eating n and then d

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  demo     - Non-interactive walkthrough of one round
  words    - List the vocabulary

Examples:
  rsasnake
  rsasnake --player alice --difficulty hard
  rsasnake demo --seed 42
  rsasnake config --config ./my-rsasnake.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagPlayer, "player", "", "Player name (skips registration)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(wordsCmd)
}
