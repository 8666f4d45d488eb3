package ports

import "context"

// ImpactStrength grades a one-shot feedback signal.
type ImpactStrength int

const (
	// ImpactLight acknowledges a selection change.
	ImpactLight ImpactStrength = iota
	// ImpactMedium acknowledges a primary action.
	ImpactMedium
)

// String returns the config spelling of the strength.
func (s ImpactStrength) String() string {
	switch s {
	case ImpactMedium:
		return "medium"
	default:
		return "light"
	}
}

// Feedback emits tactile (or tactile-substitute) signals. Platforms without a
// haptics engine plug in a no-op.
type Feedback interface {
	Impact(ctx context.Context, strength ImpactStrength) error
}
