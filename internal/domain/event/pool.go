package event

import (
	_ "embed"
	"math/rand/v2"
	"strings"
	"sync"
)

//go:embed quotes/birthday.txt
var birthdayQuotes string

//go:embed quotes/anniversary.txt
var anniversaryQuotes string

// Pool is a fixed list of message lines read either at random or round-robin.
// The round-robin cursor belongs to the pool instance.
type Pool struct {
	mu     sync.Mutex
	lines  []string
	cursor int
	rnd    *rand.Rand
}

// NewPool drops blank lines. rnd may be nil to use the global source.
func NewPool(lines []string, rnd *rand.Rand) *Pool {
	p := &Pool{rnd: rnd}
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			p.lines = append(p.lines, line)
		}
	}
	return p
}

// BirthdayQuotes is the built-in pool of birthday wishes.
func BirthdayQuotes(rnd *rand.Rand) *Pool {
	return NewPool(strings.Split(birthdayQuotes, "\n"), rnd)
}

// AnniversaryQuotes is the built-in pool of work anniversary wishes.
func AnniversaryQuotes(rnd *rand.Rand) *Pool {
	return NewPool(strings.Split(anniversaryQuotes, "\n"), rnd)
}

// Random picks any line. Empty pools return "".
func (p *Pool) Random() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.lines) == 0 {
		return ""
	}
	if p.rnd != nil {
		return p.lines[p.rnd.IntN(len(p.lines))]
	}
	return p.lines[rand.IntN(len(p.lines))]
}

// Next returns the line under the cursor and advances it, wrapping at the end.
func (p *Pool) Next() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.lines) == 0 {
		return ""
	}

	line := p.lines[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.lines)
	return line
}
