package game

import (
	"fmt"
	"slices"
)

// primeStage asks for both target primes, in any order. Other numbers
// only make the snake grow.
type primeStage struct {
	pool      []int
	targets   [2]int
	collected []int
	items     []Food
	showHint  bool
}

func (s *primeStage) ID() StageID { return StagePrimes }

func (s *primeStage) begin(env *stageEnv) {
	s.pool, s.targets = env.gen.PuzzleNumbers(env.dc)
	s.collected = nil
	s.showHint = env.dc.ShowPrimeHint
	s.items = env.gen.PrimeFood(s.pool, env.dc.FoodCount, env.snake)
	env.log.Debug("prime pool", "pool", s.pool, "targets", s.targets)
}

func (s *primeStage) eat(env *stageEnv, f Food) Outcome {
	if slices.Contains(s.targets[:], f.Value) && !slices.Contains(s.collected, f.Value) {
		s.collected = append(s.collected, f.Value)
	}
	if len(s.collected) == 2 {
		return Outcome{Kind: OutcomePrimesFound, Primes: s.targets}
	}
	s.items = env.gen.PrimeFood(s.pool, env.dc.FoodCount, env.snake)
	return proceed()
}

func (s *primeStage) food() []Food { return s.items }

func (s *primeStage) info() []string {
	hint := ""
	if s.showHint {
		hint = fmt.Sprintf("Hint: required primes %d and %d", s.targets[0], s.targets[1])
	}
	return []string{
		"Stage 1: Eat the two prime numbers p and q.",
		"They will be multiplied to form n.",
		hint,
		fmt.Sprintf("Collected: %s", joinInts(s.collected, ", ")),
	}
}
