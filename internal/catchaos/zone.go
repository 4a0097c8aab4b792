package catchaos

import (
	"github.com/vovakirdan/cat-chaos/internal/config"
	"github.com/vovakirdan/cat-chaos/internal/core"
)

// ZoneKind classifies a zone's interaction contract.
type ZoneKind int

const (
	ZoneFoodBowl ZoneKind = iota
	ZoneWaterBowl
	ZoneToy
	ZoneCatTree
	ZoneVase
	ZoneLamp
	ZoneMug
	ZonePlant
	ZoneWindow
	ZoneSofa
	ZoneRug
	ZoneShelf
	ZoneTable
	ZoneDecorative
)

// zoneKindNames maps config strings to kinds; unknown strings fall back to
// decorative so a hand-edited room cannot crash the game.
var zoneKindNames = map[string]ZoneKind{
	"food_bowl":  ZoneFoodBowl,
	"water_bowl": ZoneWaterBowl,
	"toy":        ZoneToy,
	"cat_tree":   ZoneCatTree,
	"vase":       ZoneVase,
	"lamp":       ZoneLamp,
	"mug":        ZoneMug,
	"plant":      ZonePlant,
	"window":     ZoneWindow,
	"sofa":       ZoneSofa,
	"rug":        ZoneRug,
	"shelf":      ZoneShelf,
	"table":      ZoneTable,
}

// ParseZoneKind converts a config kind string to a ZoneKind.
func ParseZoneKind(s string) ZoneKind {
	if k, ok := zoneKindNames[s]; ok {
		return k
	}
	return ZoneDecorative
}

// String returns the kind's config name.
func (k ZoneKind) String() string {
	for name, kind := range zoneKindNames {
		if kind == k {
			return name
		}
	}
	return "decorative"
}

// IsBowl reports whether fill level and emptiness apply to this kind.
func (k ZoneKind) IsBowl() bool {
	return k == ZoneFoodBowl || k == ZoneWaterBowl
}

// IsBreakable reports whether the wobble/fall lifecycle applies to this kind.
func (k ZoneKind) IsBreakable() bool {
	switch k {
	case ZoneVase, ZoneLamp, ZoneMug, ZonePlant:
		return true
	}
	return false
}

// IsPlaySpot reports whether cats satisfy their play need here.
func (k ZoneKind) IsPlaySpot() bool {
	return k == ZoneToy || k == ZoneCatTree
}

// breakPenalty is the score cost when a breakable of this kind is destroyed.
func (k ZoneKind) breakPenalty() int {
	switch k {
	case ZoneVase:
		return 15
	case ZoneLamp:
		return 12
	case ZoneMug:
		return 10
	case ZonePlant:
		return 8
	default:
		return 0
	}
}

// Zone is one fixed interactive or decorative point in the room. Identity and
// geometry are immutable for the session; fill and wobble state are runtime.
type Zone struct {
	ID    string
	Kind  ZoneKind
	Label string
	Pos   core.Vec2 // Top-left corner in room units
	W, H  float64

	// Bowl state (bowl kinds only)
	FillLevel float64
	IsEmpty   bool

	// Breakable lifecycle: stable -> wobbling -> fallen -> (auto-repair) stable.
	// Never both at once.
	IsWobbling bool
	IsFallen   bool
	fellAt     int64 // Session time (ms) of the fall, for auto-repair
}

// newZone builds a runtime zone from its configuration row.
func newZone(zc config.ZoneConfig) *Zone {
	kind := ParseZoneKind(zc.Kind)
	z := &Zone{
		ID:    zc.ID,
		Kind:  kind,
		Label: zc.Label,
		Pos:   core.Vec2{X: zc.X, Y: zc.Y},
		W:     zc.W,
		H:     zc.H,
	}
	if kind.IsBowl() {
		z.FillLevel = core.ClampF(zc.FillLevel, 0, 100)
		z.IsEmpty = z.FillLevel <= 0
	}
	return z
}

// Center returns the middle of the zone's footprint.
func (z *Zone) Center() core.Vec2 {
	return core.Vec2{X: z.Pos.X + z.W/2, Y: z.Pos.Y + z.H/2}
}

// ContainsPoint reports whether p is inside the zone's footprint.
func (z *Zone) ContainsPoint(p core.Vec2) bool {
	return p.X >= z.Pos.X && p.X <= z.Pos.X+z.W &&
		p.Y >= z.Pos.Y && p.Y <= z.Pos.Y+z.H
}

// StartWobble moves a stable breakable into the wobbling state.
func (z *Zone) StartWobble() {
	if !z.Kind.IsBreakable() || z.IsWobbling || z.IsFallen {
		return
	}
	z.IsWobbling = true
}

// StopWobble returns a wobbling breakable to stable (object saved).
func (z *Zone) StopWobble() {
	z.IsWobbling = false
}

// Fall knocks the breakable over. Wobbling is cleared first so the two flags
// are never set together.
func (z *Zone) Fall(now int64) {
	if !z.Kind.IsBreakable() || z.IsFallen {
		return
	}
	z.IsWobbling = false
	z.IsFallen = true
	z.fellAt = now
}

// Repair returns a fallen breakable to stable.
func (z *Zone) Repair() {
	z.IsFallen = false
	z.fellAt = 0
}

// Drain consumes fill from a bowl, flipping it to empty at or below zero.
func (z *Zone) Drain(step float64) {
	if !z.Kind.IsBowl() {
		return
	}
	z.FillLevel -= step
	if z.FillLevel <= 0 {
		z.FillLevel = 0
		z.IsEmpty = true
	}
}

// Empty drains the bowl completely (window start: visible refill follows).
func (z *Zone) Empty() {
	if !z.Kind.IsBowl() {
		return
	}
	z.FillLevel = 0
	z.IsEmpty = true
}

// AddFill raises the bowl's fill level, capped at 100.
func (z *Zone) AddFill(amount float64) {
	if !z.Kind.IsBowl() {
		return
	}
	z.FillLevel = core.ClampF(z.FillLevel+amount, 0, 100)
	z.IsEmpty = z.FillLevel <= 0
}

// SetFull fills the bowl to the brim.
func (z *Zone) SetFull() {
	if !z.Kind.IsBowl() {
		return
	}
	z.FillLevel = 100
	z.IsEmpty = false
}
