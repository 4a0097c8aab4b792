package catchaos

import (
	"github.com/vovakirdan/cat-chaos/internal/core"
)

// Personality modifies a cat's speed and timing constants.
type Personality string

const (
	PersonalityBalanced    Personality = "balanced"
	PersonalityCalm        Personality = "calm"
	PersonalityPlayful     Personality = "playful"
	PersonalityEnergetic   Personality = "energetic"
	PersonalityMischievous Personality = "mischievous"
	PersonalityClingy      Personality = "clingy"
)

// BehaviorState is a cat's current mutually-exclusive activity.
type BehaviorState int

const (
	StateIdle BehaviorState = iota
	StateMoving
	StateEating
	StatePlaying
	StatePurring
	StateScolded
)

// String returns the state's name.
func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateEating:
		return "eating"
	case StatePlaying:
		return "playing"
	case StatePurring:
		return "purring"
	case StateScolded:
		return "scolded"
	default:
		return "unknown"
	}
}

// catTemplate is one roster entry. Cats join the room in roster order.
type catTemplate struct {
	Name        string
	Glyph       rune
	Color       core.Color
	Personality Personality
}

var catRoster = []catTemplate{
	{Name: "Mochi", Glyph: 'm', Color: core.ColorOrange, Personality: PersonalityBalanced},
	{Name: "Luna", Glyph: 'l', Color: core.ColorGray, Personality: PersonalityCalm},
	{Name: "Oliver", Glyph: 'o', Color: core.ColorYellow, Personality: PersonalityPlayful},
	{Name: "Bella", Glyph: 'b', Color: core.ColorMagenta, Personality: PersonalityEnergetic},
	{Name: "Leo", Glyph: 'L', Color: core.ColorBrightYellow, Personality: PersonalityMischievous},
	{Name: "Milo", Glyph: 'M', Color: core.ColorBrightWhite, Personality: PersonalityClingy},
}

// Cat is one autonomous agent.
type Cat struct {
	ID          string
	Name        string
	Glyph       rune
	Color       core.Color
	Personality Personality

	Pos core.Vec2
	Vel core.Vec2

	// Needs rise toward 100 over time; index by NeedKind.
	Needs [needCount]float64

	State  BehaviorState
	Target *core.Vec2 // Destination while walking purposefully; nil otherwise

	// LastActionAt is the session time (ms) of the last state-changing event,
	// used for scold duration and wander cooldown checks.
	LastActionAt int64

	// stateUntil ends a transient eating/playing/purring flourish.
	stateUntil int64
}

// MostUrgentNeed returns the need with the highest value. Ties resolve in
// declaration order (hunger first).
func (c *Cat) MostUrgentNeed() (NeedKind, float64) {
	best := NeedKind(0)
	bestVal := c.Needs[0]
	for k := NeedKind(1); k < needCount; k++ {
		if c.Needs[k] > bestVal {
			best = k
			bestVal = c.Needs[k]
		}
	}
	return best, bestVal
}

// Speed returns the cat's purposeful walk speed in units per tick.
func (c *Cat) Speed(base, mischiefFactor float64) float64 {
	if c.Personality == PersonalityMischievous {
		return base * mischiefFactor
	}
	return base
}

// ReduceNeed lowers one need by the given amount, clamped at 0.
func (c *Cat) ReduceNeed(kind NeedKind, amount float64) {
	c.Needs[kind] = core.ClampF(c.Needs[kind]-amount, 0, 100)
}

// SetTarget points the cat at a destination.
func (c *Cat) SetTarget(p core.Vec2) {
	t := p
	c.Target = &t
}

// ClearTarget stops purposeful movement.
func (c *Cat) ClearTarget() {
	c.Target = nil
}

// Scold freezes the cat in place. It recovers to idle after the configured
// scold duration.
func (c *Cat) Scold(now int64) {
	c.State = StateScolded
	c.LastActionAt = now
	c.Vel = core.Vec2{}
}

// flourish puts the cat in a short display state (eating/playing/purring).
func (c *Cat) flourish(state BehaviorState, now, durationMS int64) {
	c.State = state
	c.LastActionAt = now
	c.stateUntil = now + durationMS
}
