// Package feedback adapts the tactile feedback port to terminals, which have
// no haptics: the closest one-shot signal is the bell.
package feedback

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/alexisbeaulieu97/learner/internal/ports"
)

const bell = "\a"

// Mode selects the feedback adapter.
type Mode string

const (
	ModeNone Mode = "none"
	ModeBell Mode = "bell"
)

// Bell rings the terminal bell for impacts at or above Threshold.
type Bell struct {
	mu        sync.Mutex
	out       io.Writer
	threshold ports.ImpactStrength
}

// NewBell returns a Bell writing to out.
func NewBell(out io.Writer, threshold ports.ImpactStrength) *Bell {
	return &Bell{out: out, threshold: threshold}
}

// Impact implements ports.Feedback.
func (b *Bell) Impact(_ context.Context, strength ports.ImpactStrength) error {
	if b == nil || b.out == nil || strength < b.threshold {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.out, bell); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// NoOp discards every impact.
type NoOp struct{}

// Impact implements ports.Feedback.
func (NoOp) Impact(context.Context, ports.ImpactStrength) error { return nil }

// ParseStrength converts the config spelling of a strength.
func ParseStrength(s string) (ports.ImpactStrength, error) {
	switch s {
	case "", "light":
		return ports.ImpactLight, nil
	case "medium":
		return ports.ImpactMedium, nil
	default:
		return ports.ImpactLight, fmt.Errorf("unknown feedback strength %q", s)
	}
}

// New builds the adapter for mode. Unknown modes are rejected.
func New(mode Mode, threshold string, out io.Writer) (ports.Feedback, error) {
	switch mode {
	case ModeNone:
		return NoOp{}, nil
	case "", ModeBell:
		strength, err := ParseStrength(threshold)
		if err != nil {
			return nil, err
		}
		return NewBell(out, strength), nil
	default:
		return nil, fmt.Errorf("unknown feedback mode %q", mode)
	}
}

var (
	_ ports.Feedback = (*Bell)(nil)
	_ ports.Feedback = NoOp{}
)
