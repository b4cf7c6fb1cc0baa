package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/rsa-snake/internal/numtheory"
)

// encryptStage asks for the letters of a plaintext word in order. A wrong
// letter reshuffles the food without losing progress.
type encryptStage struct {
	keys     KeyMaterial
	word     string
	progress int
	items    []Food
}

func newEncryptStage(keys KeyMaterial) *encryptStage {
	return &encryptStage{keys: keys}
}

func (s *encryptStage) ID() StageID { return StageEncrypt }

func (s *encryptStage) begin(env *stageEnv) {
	s.word = env.gen.Word(env.cfg.Vocabulary)
	s.progress = 0
	s.regenerate(env)
}

func (s *encryptStage) regenerate(env *stageEnv) {
	s.items = env.gen.LetterFood(s.word[s.progress], env.dc.FoodCount, env.snake)
}

func (s *encryptStage) eat(env *stageEnv, f Food) Outcome {
	if f.Value == int(s.word[s.progress]) {
		s.progress++
		if s.progress == len(s.word) {
			return Outcome{
				Kind: OutcomeMessageEncrypted,
				Message: EncryptionRound{
					Plaintext: s.word,
					Cipher:    numtheory.EncryptText(s.word, s.keys.E, s.keys.N),
				},
			}
		}
	}
	s.regenerate(env)
	return proceed()
}

func (s *encryptStage) food() []Food { return s.items }

func (s *encryptStage) info() []string {
	masked := s.word[:s.progress] + strings.Repeat("_", len(s.word)-s.progress)
	next := ""
	if s.progress < len(s.word) {
		next = fmt.Sprintf("Next letter: %c", s.word[s.progress])
	}
	return []string{
		fmt.Sprintf("Stage 3: Collect letters to form %s", s.word),
		fmt.Sprintf("Progress: %s", masked),
		next,
		fmt.Sprintf("Public key (e, n) = (%d, %d)", s.keys.E, s.keys.N),
	}
}
