package game

import (
	"slices"
	"testing"

	"github.com/vovakirdan/rsa-snake/internal/numtheory"
)

func TestPrimeStageCollectsBothTargets(t *testing.T) {
	env := testEnv(1)
	st := &primeStage{}
	st.begin(env)
	st.pool = []int{11, 13, 17, 19, 23}
	st.targets = [2]int{11, 13}

	steps := []struct {
		value int
		kind  OutcomeKind
		count int
	}{
		{17, OutcomeContinue, 0}, // Not a target
		{11, OutcomeContinue, 1},
		{11, OutcomeContinue, 1}, // Already collected
		{13, OutcomePrimesFound, 2},
	}
	for _, step := range steps {
		out := st.eat(env, Food{Value: step.value})
		if out.Kind != step.kind {
			t.Fatalf("eat(%d) = %v, expected %v", step.value, out.Kind, step.kind)
		}
		if len(st.collected) != step.count {
			t.Errorf("after %d collected = %v", step.value, st.collected)
		}
		if out.Kind == OutcomePrimesFound && out.Primes != [2]int{11, 13} {
			t.Errorf("primes = %v, expected [11 13]", out.Primes)
		}
	}
}

func TestPrimeStageHintHiddenOnHard(t *testing.T) {
	env := testEnv(2)
	env.dc.ShowPrimeHint = false
	st := &primeStage{}
	st.begin(env)
	if st.info()[2] != "" {
		t.Errorf("hint shown: %q", st.info()[2])
	}
}

func TestExponentStageScenario(t *testing.T) {
	env := testEnv(3)
	st := newExponentStage(11, 13)
	st.begin(env)

	if st.keys.N != 143 || st.keys.Phi != 120 {
		t.Fatalf("keys = %+v, expected n=143 phi=120", st.keys)
	}
	if len(st.valid) != 3 {
		t.Fatalf("got %d candidates, expected 3", len(st.valid))
	}
	for _, e := range st.valid {
		if e < 3 || e >= 120 || !numtheory.Coprime(e, 120) {
			t.Errorf("invalid candidate %d", e)
		}
	}

	st.valid = []int{7, 49, 101}

	// A decoy only reshuffles the food
	if out := st.eat(env, Food{Value: 4}); out.Kind != OutcomeContinue {
		t.Fatalf("eating a decoy gave %v", out.Kind)
	}
	valid := 0
	for _, f := range st.food() {
		if slices.Contains(st.valid, f.Value) {
			valid++
		}
	}
	if valid != 1 || len(st.food()) != env.dc.FoodCount {
		t.Errorf("regenerated food has %d valid of %d items", valid, len(st.food()))
	}

	out := st.eat(env, Food{Value: 7})
	if out.Kind != OutcomeExponentChosen {
		t.Fatalf("eating 7 gave %v", out.Kind)
	}
	if out.Keys.E != 7 || out.Keys.D != 103 {
		t.Errorf("keys = %+v, expected e=7 d=103", out.Keys)
	}
}

func TestEncryptStageSpellsWord(t *testing.T) {
	env := testEnv(4)
	keys, _ := NewKeyMaterial(11, 13).WithExponent(7)
	st := newEncryptStage(keys)
	st.begin(env)
	st.word = "HELLO"

	if out := st.eat(env, Food{Value: 'X'}); out.Kind != OutcomeContinue || st.progress != 0 {
		t.Fatal("wrong letter advanced progress")
	}

	var out Outcome
	for _, l := range "HELLO" {
		out = st.eat(env, Food{Value: int(l)})
	}
	if out.Kind != OutcomeMessageEncrypted {
		t.Fatalf("outcome = %v, expected MessageEncrypted", out.Kind)
	}
	if out.Message.Plaintext != "HELLO" {
		t.Errorf("plaintext = %q", out.Message.Plaintext)
	}
	if got := numtheory.DecryptText(out.Message.Cipher, keys.D, keys.N); got != "HELLO" {
		t.Errorf("ciphertext decrypts to %q", got)
	}
}

func TestEncryptStageFoodOffersNextLetter(t *testing.T) {
	env := testEnv(5)
	keys, _ := NewKeyMaterial(11, 13).WithExponent(7)
	st := newEncryptStage(keys)
	st.begin(env)

	for st.progress < len(st.word)-1 {
		next := int(st.word[st.progress])
		found := false
		for _, f := range st.food() {
			if f.Value == next {
				found = true
			}
		}
		if !found {
			t.Fatalf("letter %c not offered", st.word[st.progress])
		}
		st.eat(env, Food{Value: next})
	}
}

func TestDecryptStageOrder(t *testing.T) {
	env := testEnv(6)
	keys, _ := NewKeyMaterial(11, 13).WithExponent(7)
	msg := EncryptionRound{Plaintext: "LEMON", Cipher: numtheory.EncryptText("LEMON", keys.E, keys.N)}
	st := newDecryptStage(keys, msg)
	st.begin(env)

	// d before n does not count
	if out := st.eat(env, Food{Value: keys.D}); out.Kind != OutcomeContinue || st.progress != 0 {
		t.Fatal("d accepted before n")
	}
	if out := st.eat(env, Food{Value: keys.N}); out.Kind != OutcomeContinue || st.progress != 1 {
		t.Fatal("n not accepted")
	}

	offered := false
	for _, f := range st.food() {
		if f.Value == keys.D {
			offered = true
		}
	}
	if !offered {
		t.Error("d not offered after n")
	}

	out := st.eat(env, Food{Value: keys.D})
	if out.Kind != OutcomeRoundFinished {
		t.Fatalf("outcome = %v, expected RoundFinished", out.Kind)
	}
	if !out.Result.Success || out.Result.Decrypted != "LEMON" {
		t.Errorf("result = %+v", out.Result)
	}
}

func TestDecryptStageReportsMismatch(t *testing.T) {
	env := testEnv(7)
	keys, _ := NewKeyMaterial(11, 13).WithExponent(7)
	keys.D = 7 // Deliberately wrong
	msg := EncryptionRound{Plaintext: "LEMON", Cipher: numtheory.EncryptText("LEMON", 7, keys.N)}
	st := newDecryptStage(keys, msg)
	st.begin(env)

	st.eat(env, Food{Value: keys.N})
	out := st.eat(env, Food{Value: keys.D})
	if out.Kind != OutcomeRoundFinished {
		t.Fatalf("outcome = %v, expected RoundFinished", out.Kind)
	}
	if out.Result.Success {
		t.Error("mismatch reported as success")
	}
}
