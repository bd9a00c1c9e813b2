package schedule

import (
	"math/rand/v2"
	"sync"
)

// Picker chooses the salesman for a new sales appointment.
type Picker interface {
	Pick(roster []string) string
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(roster []string) string

func (f PickerFunc) Pick(roster []string) string { return f(roster) }

// RandomPicker picks uniformly. The zero value uses the global source.
type RandomPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededPicker returns a picker whose sequence is reproducible.
func NewSeededPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (p *RandomPicker) Pick(roster []string) string {
	if len(roster) == 0 {
		return ""
	}
	if p.rnd == nil {
		return roster[rand.IntN(len(roster))]
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return roster[p.rnd.IntN(len(roster))]
}
