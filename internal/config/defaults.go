package config

import (
	_ "embed"
)

//go:embed defaults/rsasnake.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// YAML and is used when that cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Cols:      24,
			Rows:      12,
			CellWidth: 3,
		},
		Timing: TimingConfig{
			TickRate:       30,
			MovesPerSecond: 10,
		},
		Exponent: ExponentConfig{
			SearchCap:  1000,
			PoolSize:   3,
			DecoyBelow: 100,
			DecoyAbove: 10,
		},
		Decrypt: DecryptConfig{
			DecoySlack: 10,
		},
		Vocabulary: []string{
			"HELLO", "WORLD", "APPLE", "BANANA", "ORANGE", "PEACH",
			"MANGO", "CHERRY", "LEMON", "PYTHON", "COMPUTER", "KEYBOARD",
		},
		Difficulties: map[Difficulty]DifficultyConfig{
			Easy:   {Min: 10, Max: 50, PoolSize: 5, FoodCount: 4, ShowPrimeHint: true},
			Medium: {Min: 50, Max: 150, PoolSize: 8, FoodCount: 7, ShowPrimeHint: true},
			Hard:   {Min: 150, Max: 500, PoolSize: 8, FoodCount: 7, ShowPrimeHint: false},
		},
	}
}
