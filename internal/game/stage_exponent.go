package game

import (
	"fmt"
	"slices"
)

// exponentStage asks for a public exponent e coprime with phi. Decoys share
// a factor with phi and only reshuffle the food.
type exponentStage struct {
	keys  KeyMaterial
	valid []int
	items []Food
}

func newExponentStage(p, q int) *exponentStage {
	return &exponentStage{keys: NewKeyMaterial(p, q)}
}

func (s *exponentStage) ID() StageID { return StageExponent }

func (s *exponentStage) begin(env *stageEnv) {
	x := env.cfg.Exponent
	s.valid = env.gen.ExponentCandidates(s.keys.Phi, x.SearchCap, x.PoolSize)
	s.regenerate(env)
}

func (s *exponentStage) regenerate(env *stageEnv) {
	x := env.cfg.Exponent
	decoys := env.gen.ExponentDecoys(s.keys.Phi, s.valid, env.dc.FoodCount-1, x.DecoyBelow, x.DecoyAbove)
	s.items = env.gen.ExponentFood(s.valid, decoys, env.snake)
}

func (s *exponentStage) eat(env *stageEnv, f Food) Outcome {
	if slices.Contains(s.valid, f.Value) {
		keys, err := s.keys.WithExponent(f.Value)
		if err == nil {
			return Outcome{Kind: OutcomeExponentChosen, Keys: keys}
		}
		env.log.Error("valid exponent without inverse", "e", f.Value, "phi", s.keys.Phi, "err", err)
	}
	s.regenerate(env)
	return proceed()
}

func (s *exponentStage) food() []Food { return s.items }

func (s *exponentStage) info() []string {
	return []string{
		"Stage 2: Eat a valid key exponent e, coprime with φ(n).",
		fmt.Sprintf("p = %d, q = %d, n = %d, φ(n) = %d", s.keys.P, s.keys.Q, s.keys.N, s.keys.Phi),
		fmt.Sprintf("Hint: valid e options %s", joinInts(s.valid, ", ")),
		"",
	}
}
