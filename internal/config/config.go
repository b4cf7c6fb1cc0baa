// Package config provides YAML-based configuration loading and validation
// for RSA Snake.
package config

// Config is the complete game configuration.
type Config struct {
	Field        FieldConfig                     `yaml:"field"`
	Timing       TimingConfig                    `yaml:"timing"`
	Exponent     ExponentConfig                  `yaml:"exponent"`
	Decrypt      DecryptConfig                   `yaml:"decrypt"`
	Vocabulary   []string                        `yaml:"vocabulary"`
	Difficulties map[Difficulty]DifficultyConfig `yaml:"difficulties"`
}

// FieldConfig defines the playing field grid.
type FieldConfig struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per grid cell
}

// TimingConfig defines the tick loop rates.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`
	MovesPerSecond int `yaml:"moves_per_second"`
}

// MoveEveryTicks returns how many ticks pass between two snake moves.
func (t TimingConfig) MoveEveryTicks() int {
	if t.MovesPerSecond <= 0 || t.TickRate <= t.MovesPerSecond {
		return 1
	}
	return t.TickRate / t.MovesPerSecond
}

// ExponentConfig tunes the public exponent stage.
type ExponentConfig struct {
	SearchCap  int `yaml:"search_cap"`  // Exclusive upper bound of the truncated search range
	PoolSize   int `yaml:"pool_size"`   // Number of valid candidates kept per attempt
	DecoyBelow int `yaml:"decoy_below"` // Decoys start at phi - decoy_below
	DecoyAbove int `yaml:"decoy_above"` // Decoys end at phi + decoy_above
}

// DecryptConfig tunes the decryption stage.
type DecryptConfig struct {
	DecoySlack int `yaml:"decoy_slack"` // Decoys are drawn from [1, n + decoy_slack]
}

// DifficultyConfig holds the per-difficulty puzzle parameters.
type DifficultyConfig struct {
	Min           int  `yaml:"min"`
	Max           int  `yaml:"max"`
	PoolSize      int  `yaml:"pool_size"`
	FoodCount     int  `yaml:"food_count"`
	ShowPrimeHint bool `yaml:"show_prime_hint"`
}

// For returns the parameters of the given difficulty, falling back to the
// built-in defaults when the config does not define it.
func (c Config) For(d Difficulty) DifficultyConfig {
	if dc, ok := c.Difficulties[d]; ok {
		return dc
	}
	return DefaultConfig().Difficulties[d]
}
