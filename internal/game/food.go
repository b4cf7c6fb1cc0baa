package game

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/numtheory"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// placementAttempts bounds the random search before falling back to a scan.
const placementAttempts = 500

// Food is a label starting at Cell and covering Span cells of its row.
// Value is the number, or the letter's code point.
type Food struct {
	Cell  Cell
	Value int
	Label string
	Span  int
}

// Covers reports whether c is under the label. A zero Span covers Cell only.
func (f Food) Covers(c Cell) bool {
	return c.Row == f.Cell.Row && c.Col >= f.Cell.Col && c.Col < f.Cell.Col+max(1, f.Span)
}

// Generator produces puzzle numbers and food layouts from a seeded RNG.
type Generator struct {
	rng       *rand.Rand
	field     Field
	cellWidth int
}

// NewGenerator creates a generator for the given field. cellWidth is the
// number of terminal columns per cell, used to keep labels from overlapping.
func NewGenerator(rng *rand.Rand, field Field, cellWidth int) *Generator {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return &Generator{rng: rng, field: field, cellWidth: cellWidth}
}

// PuzzleNumbers draws dc.PoolSize unique numbers from [dc.Min, dc.Max] and
// returns them with the first two primes drawn. Pools with fewer than two
// primes are discarded and drawn again.
func (g *Generator) PuzzleNumbers(dc config.DifficultyConfig) (pool []int, targets [2]int) {
	span := dc.Max - dc.Min + 1
	for {
		seen := make(map[int]bool, dc.PoolSize)
		pool = pool[:0]
		var primes []int
		for len(pool) < dc.PoolSize && len(pool) < span {
			n := dc.Min + g.rng.Intn(span)
			if seen[n] {
				continue
			}
			seen[n] = true
			pool = append(pool, n)
			if numtheory.IsPrime(n) {
				primes = append(primes, n)
			}
		}
		if len(primes) >= 2 {
			return pool, [2]int{primes[0], primes[1]}
		}
	}
}

// ExponentCandidates returns up to poolSize exponents coprime with phi.
// They are searched in [3, min(phi, searchCap)), then in [3, phi) if the
// truncated range holds none.
func (g *Generator) ExponentCandidates(phi, searchCap, poolSize int) []int {
	upper := phi
	if searchCap > 0 && searchCap < upper {
		upper = searchCap
	}
	options := coprimeRange(3, upper, phi)
	if len(options) == 0 {
		options = coprimeRange(3, phi, phi)
	}
	if len(options) <= poolSize {
		return options
	}
	return g.sample(options, poolSize)
}

func coprimeRange(lo, hi, phi int) []int {
	var out []int
	for e := lo; e < hi; e++ {
		if numtheory.Coprime(e, phi) {
			out = append(out, e)
		}
	}
	return out
}

// ExponentDecoys returns count distinct values that share a factor with phi
// and are not valid exponents. They come from [phi-below, phi+above]; the
// window doubles until it holds enough values.
func (g *Generator) ExponentDecoys(phi int, valid []int, count, below, above int) []int {
	skip := make(map[int]bool, len(valid))
	for _, v := range valid {
		skip[v] = true
	}

	if below < 1 {
		below = 1
	}
	if above < 1 {
		above = 1
	}
	for {
		lo := max(2, phi-below)
		var options []int
		for n := lo; n <= phi+above; n++ {
			if !skip[n] && !numtheory.Coprime(n, phi) {
				options = append(options, n)
			}
		}
		if len(options) >= count {
			return g.sample(options, count)
		}
		below *= 2
		above *= 2
	}
}

// Word picks a plaintext from the vocabulary. Words shorter than five
// letters are skipped.
func (g *Generator) Word(vocabulary []string) string {
	var words []string
	for _, w := range vocabulary {
		if len(w) >= 5 {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return "HELLO"
	}
	return words[g.rng.Intn(len(words))]
}

// PrimeFood samples count values from the stage 1 pool.
func (g *Generator) PrimeFood(pool []int, count int, snake *Snake) []Food {
	return g.place(numberLabels(g.sample(pool, count)), snake)
}

// ExponentFood places one valid exponent among decoys.
func (g *Generator) ExponentFood(valid, decoys []int, snake *Snake) []Food {
	values := make([]int, 0, len(decoys)+1)
	if len(valid) > 0 {
		values = append(values, valid[g.rng.Intn(len(valid))])
	}
	others := append([]int(nil), decoys...)
	shuffle(g.rng, others)
	values = append(values, others...)
	return g.place(numberLabels(values), snake)
}

// LetterFood places the expected letter among count-1 other letters.
func (g *Generator) LetterFood(correct byte, count int, snake *Snake) []Food {
	letters := []byte{correct}
	for _, i := range g.rng.Perm(len(alphabet)) {
		if len(letters) >= count {
			break
		}
		if alphabet[i] != correct {
			letters = append(letters, alphabet[i])
		}
	}

	items := make([]Food, len(letters))
	for i, l := range letters {
		items[i] = Food{Value: int(l), Label: string(rune(l))}
	}
	return g.place(items, snake)
}

// DecryptFood places the expected value among distinct decoys drawn from
// [1, hi].
func (g *Generator) DecryptFood(correct, hi, count int, snake *Snake) []Food {
	if hi < count {
		hi = count
	}
	values := []int{correct}
	seen := map[int]bool{correct: true}
	for len(values) < count {
		v := 1 + g.rng.Intn(hi)
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return g.place(numberLabels(values), snake)
}

func numberLabels(values []int) []Food {
	items := make([]Food, len(values))
	for i, v := range values {
		items[i] = Food{Value: v, Label: strconv.Itoa(v)}
	}
	return items
}

// span returns how many cells a label covers when drawn.
func (g *Generator) span(label string) int {
	return max(1, (len(label)+g.cellWidth-1)/g.cellWidth)
}

// place assigns distinct cells to items in order. Cells under the snake are
// avoided, and labels on the same row keep a one-cell gap so they stay
// readable. Items that find no room on a crowded field are dropped, so the
// correct value goes first.
func (g *Generator) place(items []Food, snake *Snake) []Food {
	taken := make(map[Cell]bool)
	var placed []Food

	free := func(c Cell, span int, gap bool) bool {
		if c.Col+span > g.field.Cols {
			return false
		}
		for i := range span {
			cell := Cell{Col: c.Col + i, Row: c.Row}
			if taken[cell] || (snake != nil && snake.Occupies(cell)) {
				return false
			}
		}
		if !gap {
			return true
		}
		for _, p := range placed {
			if p.Cell.Row != c.Row {
				continue
			}
			ps := p.Span
			if c.Col < p.Cell.Col+ps+1 && p.Cell.Col < c.Col+span+1 {
				return false
			}
		}
		return true
	}

	mark := func(f Food) {
		for i := range f.Span {
			taken[Cell{Col: f.Cell.Col + i, Row: f.Cell.Row}] = true
		}
		placed = append(placed, f)
	}

	for _, item := range items {
		span := g.span(item.Label)
		item.Span = span
		ok := false
		for range placementAttempts {
			c := Cell{Col: g.rng.Intn(g.field.Cols), Row: g.rng.Intn(g.field.Rows)}
			if free(c, span, true) {
				item.Cell = c
				ok = true
				break
			}
		}
		if !ok {
			// Crowded field: take the first free cell, gap or not
			for idx := range g.field.Size() {
				c := Cell{Col: idx % g.field.Cols, Row: idx / g.field.Cols}
				if free(c, span, false) {
					item.Cell = c
					ok = true
					break
				}
			}
		}
		if ok {
			mark(item)
		}
	}
	return placed
}

// sample returns k distinct elements of values in random order.
func (g *Generator) sample(values []int, k int) []int {
	if k > len(values) {
		k = len(values)
	}
	out := make([]int, k)
	for i, j := range g.rng.Perm(len(values))[:k] {
		out[i] = values[j]
	}
	return out
}

func shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
