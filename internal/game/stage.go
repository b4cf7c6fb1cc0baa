package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/numtheory"
)

// StageID identifies one of the four puzzle stages.
type StageID int

const (
	StagePrimes   StageID = iota + 1 // Collect p and q
	StageExponent                    // Pick e coprime with phi
	StageEncrypt                     // Spell the plaintext
	StageDecrypt                     // Collect n then d
)

func (s StageID) String() string {
	switch s {
	case StagePrimes:
		return "primes"
	case StageExponent:
		return "exponent"
	case StageEncrypt:
		return "encrypt"
	case StageDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// OutcomeKind tags the result of a session step.
type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomePrimesFound
	OutcomeExponentChosen
	OutcomeMessageEncrypted
	OutcomeRoundFinished
	OutcomeCommandIssued
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomePrimesFound:
		return "primes_found"
	case OutcomeExponentChosen:
		return "exponent_chosen"
	case OutcomeMessageEncrypted:
		return "message_encrypted"
	case OutcomeRoundFinished:
		return "round_finished"
	case OutcomeCommandIssued:
		return "command_issued"
	default:
		return "unknown"
	}
}

// Outcome is what a stage (and the session) hands back each tick. Only the
// field matching Kind is meaningful.
type Outcome struct {
	Kind    OutcomeKind
	Command Command         // OutcomeCommandIssued
	Primes  [2]int          // OutcomePrimesFound
	Keys    KeyMaterial     // OutcomeExponentChosen
	Message EncryptionRound // OutcomeMessageEncrypted
	Result  RoundResult     // OutcomeRoundFinished
}

func proceed() Outcome {
	return Outcome{Kind: OutcomeContinue}
}

// KeyMaterial is the toy RSA key built during stages 1 and 2.
type KeyMaterial struct {
	P, Q   int
	N, Phi int
	E, D   int
}

// NewKeyMaterial derives n and phi from two primes.
func NewKeyMaterial(p, q int) KeyMaterial {
	return KeyMaterial{P: p, Q: q, N: p * q, Phi: (p - 1) * (q - 1)}
}

// WithExponent returns a copy with e set and d = e^-1 mod phi.
func (k KeyMaterial) WithExponent(e int) (KeyMaterial, error) {
	d, err := numtheory.ModInverse(e, k.Phi)
	if err != nil {
		return k, err
	}
	k.E, k.D = e, d
	return k, nil
}

// EncryptionRound is the plaintext of stage 3 and its ciphertext.
type EncryptionRound struct {
	Plaintext string
	Cipher    []int
}

// RoundResult summarizes a finished round.
type RoundResult struct {
	Player     string
	Difficulty config.Difficulty
	Elapsed    time.Duration
	Plaintext  string
	Decrypted  string
	Success    bool // Decrypted matches Plaintext
	Improved   bool // The player's best time was lowered
	Keys       KeyMaterial
}

// stageEnv is what stages share with the session.
type stageEnv struct {
	cfg   config.Config
	dc    config.DifficultyConfig
	field Field
	gen   *Generator
	snake *Snake
	log   *log.Logger
}

// stage is one puzzle. begin sets up a fresh attempt, eat evaluates a food
// the snake grew onto.
type stage interface {
	ID() StageID
	begin(env *stageEnv)
	eat(env *stageEnv, f Food) Outcome
	food() []Food
	info() []string
}

// stageRun drives a stage tick by tick. A collision starts the next attempt
// of the same stage in place.
type stageRun struct {
	stage   stage
	attempt int
}

func startStage(st stage, env *stageEnv) *stageRun {
	env.snake.Stop()
	st.begin(env)
	return &stageRun{stage: st}
}

func (r *stageRun) tick(env *stageEnv) Outcome {
	items := r.stage.food()
	mv := env.snake.Advance(env.field, func(c Cell) bool {
		_, ok := foodAt(items, c)
		return ok
	})

	switch mv.Kind {
	case MoveCollided:
		r.attempt++
		env.snake.Recenter(env.field)
		r.stage.begin(env)
		env.log.Debug("stage retry", "stage", r.stage.ID(), "attempt", r.attempt, "len", env.snake.Len())
	case MoveGrew:
		f, _ := foodAt(items, mv.Head)
		return r.stage.eat(env, f)
	}
	return proceed()
}

func foodAt(items []Food, c Cell) (Food, bool) {
	for _, f := range items {
		if f.Covers(c) {
			return f, true
		}
	}
	return Food{}, false
}
