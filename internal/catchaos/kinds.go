package catchaos

// NeedKind identifies one bounded urgency counter on a cat. Declaration order
// doubles as the tie-break priority when two needs are equally urgent.
type NeedKind int

const (
	NeedHunger NeedKind = iota
	NeedWater
	NeedPlay
	NeedAttention
	needCount
)

// String returns the need's name.
func (n NeedKind) String() string {
	switch n {
	case NeedHunger:
		return "hunger"
	case NeedWater:
		return "water"
	case NeedPlay:
		return "play"
	case NeedAttention:
		return "attention"
	default:
		return "unknown"
	}
}

// ObjectiveKind is the kind of one required round action: either fulfilling a
// need or averting a scripted disaster.
type ObjectiveKind int

const (
	ObjectiveHunger ObjectiveKind = iota
	ObjectiveWater
	ObjectivePlay
	ObjectiveAttention
	ObjectiveDisaster
)

// String returns the objective's name.
func (o ObjectiveKind) String() string {
	switch o {
	case ObjectiveHunger:
		return "hunger"
	case ObjectiveWater:
		return "water"
	case ObjectivePlay:
		return "play"
	case ObjectiveAttention:
		return "attention"
	case ObjectiveDisaster:
		return "disaster"
	default:
		return "unknown"
	}
}

// Need returns the need an objective fulfills, and false for disaster.
func (o ObjectiveKind) Need() (NeedKind, bool) {
	switch o {
	case ObjectiveHunger:
		return NeedHunger, true
	case ObjectiveWater:
		return NeedWater, true
	case ObjectivePlay:
		return NeedPlay, true
	case ObjectiveAttention:
		return NeedAttention, true
	}
	return 0, false
}

// objectiveForNeed maps a need back to its round-objective kind.
func objectiveForNeed(n NeedKind) ObjectiveKind {
	switch n {
	case NeedHunger:
		return ObjectiveHunger
	case NeedWater:
		return ObjectiveWater
	case NeedPlay:
		return ObjectivePlay
	default:
		return ObjectiveAttention
	}
}

// expiryPenalty is the score cost of leaving an objective unfinished when the
// round countdown runs out.
func (o ObjectiveKind) expiryPenalty() int {
	switch o {
	case ObjectiveHunger:
		return 6
	case ObjectiveWater:
		return 4
	case ObjectivePlay:
		return 4
	case ObjectiveAttention:
		return 3
	case ObjectiveDisaster:
		return 15
	default:
		return 0
	}
}

// WindowKind identifies a rapid-press challenge variety.
type WindowKind int

const (
	WindowFood WindowKind = iota
	WindowWater
	WindowPlay
	WindowPet
	WindowNoNo
)

// String returns the window kind's name.
func (w WindowKind) String() string {
	switch w {
	case WindowFood:
		return "food"
	case WindowWater:
		return "water"
	case WindowPlay:
		return "play"
	case WindowPet:
		return "pet"
	case WindowNoNo:
		return "no_no"
	default:
		return "unknown"
	}
}

// objective returns the round objective a window of this kind completes.
func (w WindowKind) objective() ObjectiveKind {
	switch w {
	case WindowFood:
		return ObjectiveHunger
	case WindowWater:
		return ObjectiveWater
	case WindowPlay:
		return ObjectivePlay
	case WindowPet:
		return ObjectiveAttention
	default:
		return ObjectiveDisaster
	}
}

// windowSpec is the per-kind tuning record: one row per challenge variety so
// the table is the single source of truth instead of scattered switches.
type windowSpec struct {
	presses   int     // Required press count; 0 means rerolled per window (no-no)
	reward    int     // Score on success
	penalty   int     // Score on timeout failure
	needDrop  float64 // How much the fulfilled need decreases
	need      NeedKind
	fillsBowl bool // Drains the bowl at start and refills it press by press
}

var windowSpecs = map[WindowKind]windowSpec{
	WindowFood:  {presses: 5, reward: 10, penalty: 6, needDrop: 50, need: NeedHunger, fillsBowl: true},
	WindowWater: {presses: 4, reward: 7, penalty: 4, needDrop: 50, need: NeedWater, fillsBowl: true},
	WindowPlay:  {presses: 4, reward: 12, penalty: 4, needDrop: 50, need: NeedPlay},
	WindowPet:   {presses: 1, reward: 6, penalty: 3, needDrop: 50, need: NeedAttention},
	WindowNoNo:  {presses: 0, reward: 2},
}

// noNoPressMin/Max bound the rerolled press count for no-no windows so the
// player cannot memorize a fixed rhythm.
const (
	noNoPressMin = 3
	noNoPressMax = 5
)
