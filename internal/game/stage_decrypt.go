package game

import (
	"fmt"

	"github.com/vovakirdan/rsa-snake/internal/numtheory"
)

// decryptStage asks for n and then d. A collision resets the progress but
// keeps the keys and the ciphertext.
type decryptStage struct {
	keys     KeyMaterial
	message  EncryptionRound
	progress int
	items    []Food
}

func newDecryptStage(keys KeyMaterial, message EncryptionRound) *decryptStage {
	return &decryptStage{keys: keys, message: message}
}

func (s *decryptStage) ID() StageID { return StageDecrypt }

func (s *decryptStage) sequence() [2]int {
	return [2]int{s.keys.N, s.keys.D}
}

func (s *decryptStage) begin(env *stageEnv) {
	s.progress = 0
	s.regenerate(env)
}

func (s *decryptStage) regenerate(env *stageEnv) {
	hi := s.keys.N + env.cfg.Decrypt.DecoySlack
	s.items = env.gen.DecryptFood(s.sequence()[s.progress], hi, env.dc.FoodCount, env.snake)
}

func (s *decryptStage) eat(env *stageEnv, f Food) Outcome {
	if f.Value == s.sequence()[s.progress] {
		s.progress++
		if s.progress == len(s.sequence()) {
			decrypted := numtheory.DecryptText(s.message.Cipher, s.keys.D, s.keys.N)
			return Outcome{
				Kind: OutcomeRoundFinished,
				Result: RoundResult{
					Plaintext: s.message.Plaintext,
					Decrypted: decrypted,
					Success:   decrypted == s.message.Plaintext,
					Keys:      s.keys,
				},
			}
		}
	}
	s.regenerate(env)
	return proceed()
}

func (s *decryptStage) food() []Food { return s.items }

func (s *decryptStage) info() []string {
	want := "n"
	if s.progress > 0 {
		want = "d"
	}
	return []string{
		"Stage 4: Decryption challenge",
		fmt.Sprintf("Encrypted: %s", joinInts(s.message.Cipher, " ")),
		fmt.Sprintf("Collect in order: first n then d (next: %s)", want),
		fmt.Sprintf("Hint: n = %d, d = %d", s.keys.N, s.keys.D),
	}
}
