package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.Field != def.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, def.Field)
	}
	if cfg.Exponent != def.Exponent {
		t.Errorf("Exponent = %+v, expected %+v", cfg.Exponent, def.Exponent)
	}
	if len(cfg.Vocabulary) != len(def.Vocabulary) {
		t.Errorf("Vocabulary has %d words, expected %d", len(cfg.Vocabulary), len(def.Vocabulary))
	}
	for _, d := range Difficulties() {
		if cfg.For(d) != def.For(d) {
			t.Errorf("%s = %+v, expected %+v", d, cfg.For(d), def.For(d))
		}
	}
}

func TestDefaultFoodCounts(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		d         Difficulty
		pool      int
		foodCount int
		hint      bool
	}{
		{Easy, 5, 4, true},
		{Medium, 8, 7, true},
		{Hard, 8, 7, false},
	}

	for _, tc := range tests {
		dc := cfg.For(tc.d)
		if dc.PoolSize != tc.pool || dc.FoodCount != tc.foodCount || dc.ShowPrimeHint != tc.hint {
			t.Errorf("%s = %+v, expected pool=%d food=%d hint=%v", tc.d, dc, tc.pool, tc.foodCount, tc.hint)
		}
	}
}

func TestParseOverridesKeepDefaults(t *testing.T) {
	cfg, err := Parse([]byte("field:\n  cols: 30\n  rows: 20\n  cell_width: 4\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Field.Cols != 30 || cfg.Field.CellWidth != 4 {
		t.Errorf("Field = %+v, expected overrides applied", cfg.Field)
	}
	if cfg.Exponent.SearchCap != 1000 {
		t.Errorf("SearchCap = %d, expected default 1000", cfg.Exponent.SearchCap)
	}
	if cfg.For(Easy).FoodCount != 4 {
		t.Errorf("easy food_count = %d, expected default 4", cfg.For(Easy).FoodCount)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny field", func(c *Config) { c.Field.Cols = 2 }},
		{"short words only", func(c *Config) { c.Vocabulary = []string{"CAT", "DOG"} }},
		{"lower-case word", func(c *Config) { c.Vocabulary = []string{"hello"} }},
		{"food above pool", func(c *Config) {
			dc := c.Difficulties[Easy]
			dc.FoodCount = 6
			c.Difficulties[Easy] = dc
		}},
		{"range without primes", func(c *Config) {
			dc := c.Difficulties[Medium]
			dc.Min, dc.Max = 24, 28
			dc.PoolSize, dc.FoodCount = 4, 4
			c.Difficulties[Medium] = dc
		}},
		{"modulus too small for letters", func(c *Config) {
			dc := c.Difficulties[Easy]
			dc.Min, dc.Max = 2, 20
			c.Difficulties[Easy] = dc
		}},
		{"missing difficulty", func(c *Config) { delete(c.Difficulties, Hard) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() succeeded, expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not match ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  tick_rate: 60\n  moves_per_second: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timing.MoveEveryTicks() != 5 {
		t.Errorf("MoveEveryTicks() = %d, expected 5", cfg.Timing.MoveEveryTicks())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(default)) failed: %v", err)
	}
	if cfg.For(Hard).Max != 500 {
		t.Errorf("hard max = %d, expected 500", cfg.For(Hard).Max)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected Difficulty
		wantErr  bool
	}{
		{"easy", Easy, false},
		{"E", Easy, false},
		{" Medium ", Medium, false},
		{"h", Hard, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
