package catchaos

// Snapshot is a complete, read-only view of the session, taken between ticks.
// The presentation layer renders from it; the determinism tests hash it.
type Snapshot struct {
	Tick    uint64
	ClockMS int64

	Score    int
	Round    int
	GameOver bool
	Paused   bool

	Phase            int
	RoundRemainMS    int64 // Countdown remaining; 0 outside the active phase
	RoundBudgetMS    int64
	DisasterFlash    bool
	Notice           Notice
	PlayerX, PlayerY float64

	Cats    []CatView
	Zones   []ZoneView
	Actions []RoundActionView
	Window  *WindowView
}

// CatView is one cat's visible state.
type CatView struct {
	ID          string
	Name        string
	Glyph       rune
	Color       int
	Personality Personality
	X, Y        float64
	State       BehaviorState
	Needs       [needCount]float64
	UrgentNeed  NeedKind
	UrgentVal   float64
}

// ZoneView is one room object's visible state.
type ZoneView struct {
	ID         string
	Kind       ZoneKind
	Label      string
	X, Y       float64
	W, H       float64
	FillLevel  float64
	IsEmpty    bool
	IsWobbling bool
	IsFallen   bool
}

// RoundActionView is one round objective's visible state.
type RoundActionView struct {
	Kind         ObjectiveKind
	Completed    bool
	Failed       bool
	TargetZoneID string
	CatID        string
}

// WindowView is the open press window's visible state, if any.
type WindowView struct {
	Kind     WindowKind
	CatID    string
	ZoneID   string
	Required int
	Presses  int
	RemainMS int64
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	now := g.now()

	snap := Snapshot{
		Tick:          g.tick,
		ClockMS:       now,
		Score:         g.score,
		Round:         g.roundNum,
		GameOver:      g.gameOver,
		Paused:        g.paused,
		Phase:         int(g.phase),
		RoundBudgetMS: g.roundBudget,
		DisasterFlash: now < g.flashUntil,
		Notice:        g.notice,
		PlayerX:       g.player.X,
		PlayerY:       g.player.Y,
	}
	if g.phase == phaseActive {
		if remain := g.roundDeadline - now; remain > 0 {
			snap.RoundRemainMS = remain
		}
	}

	snap.Cats = make([]CatView, len(g.cats))
	for i, c := range g.cats {
		kind, val := c.MostUrgentNeed()
		snap.Cats[i] = CatView{
			ID:          c.ID,
			Name:        c.Name,
			Glyph:       c.Glyph,
			Color:       int(c.Color),
			Personality: c.Personality,
			X:           c.Pos.X,
			Y:           c.Pos.Y,
			State:       c.State,
			Needs:       c.Needs,
			UrgentNeed:  kind,
			UrgentVal:   val,
		}
	}

	snap.Zones = make([]ZoneView, len(g.zones))
	for i, z := range g.zones {
		snap.Zones[i] = ZoneView{
			ID:         z.ID,
			Kind:       z.Kind,
			Label:      z.Label,
			X:          z.Pos.X,
			Y:          z.Pos.Y,
			W:          z.W,
			H:          z.H,
			FillLevel:  z.FillLevel,
			IsEmpty:    z.IsEmpty,
			IsWobbling: z.IsWobbling,
			IsFallen:   z.IsFallen,
		}
	}

	snap.Actions = make([]RoundActionView, len(g.actions))
	for i, a := range g.actions {
		snap.Actions[i] = RoundActionView{
			Kind:         a.Kind,
			Completed:    a.Completed,
			Failed:       a.Failed,
			TargetZoneID: a.TargetZoneID,
			CatID:        a.CatID,
		}
	}

	if w := g.window; w != nil {
		remain := w.ExpiresAt - now
		if remain < 0 {
			remain = 0
		}
		snap.Window = &WindowView{
			Kind:     w.Kind,
			CatID:    w.CatID,
			ZoneID:   w.ZoneID,
			Required: w.Required,
			Presses:  w.Presses,
			RemainMS: remain,
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Float positions and needs are quantized to a thousandth.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ClockMS)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)         //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Phase)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundRemainMS) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.DisasterFlash)
	h = h*31 + uint64(snap.Notice) //#nosec G115 -- hash computation
	h = h*31 + quantize(snap.PlayerX)
	h = h*31 + quantize(snap.PlayerY)

	for i := range snap.Cats {
		c := &snap.Cats[i]
		h = h*31 + quantize(c.X)
		h = h*31 + quantize(c.Y)
		h = h*31 + uint64(c.State) //#nosec G115 -- hash computation
		for _, n := range c.Needs {
			h = h*31 + quantize(n)
		}
	}

	for i := range snap.Zones {
		z := &snap.Zones[i]
		h = h*31 + quantize(z.FillLevel)
		h = h*31 + boolBit(z.IsEmpty)
		h = h*31 + boolBit(z.IsWobbling)
		h = h*31 + boolBit(z.IsFallen)
	}

	for i := range snap.Actions {
		a := &snap.Actions[i]
		h = h*31 + uint64(a.Kind) //#nosec G115 -- hash computation
		h = h*31 + boolBit(a.Completed)
		h = h*31 + boolBit(a.Failed)
	}

	if w := snap.Window; w != nil {
		h = h*31 + uint64(w.Kind)     //#nosec G115 -- hash computation
		h = h*31 + uint64(w.Required) //#nosec G115 -- hash computation
		h = h*31 + uint64(w.Presses)  //#nosec G115 -- hash computation
		h = h*31 + uint64(w.RemainMS) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func quantize(f float64) uint64 {
	return uint64(int64(f * 1000)) //#nosec G115 -- hash computation
}
