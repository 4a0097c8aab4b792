package catchaos

import "github.com/vovakirdan/cat-chaos/internal/core"

// ActionWindow is the single, globally-exclusive rapid-press challenge. At
// most one exists at a time across the whole session; a second start attempt
// is silently dropped while one is open.
type ActionWindow struct {
	Kind      WindowKind
	CatID     string
	ZoneID    string // Empty for pet windows
	Required  int
	Presses   int
	ExpiresAt int64

	action *RoundAction // The round objective this window completes
}

// pressCare handles one care key press: it feeds the open window if the kind
// matches, or tries to open a new one.
func (g *Game) pressCare(kind WindowKind, now int64) {
	if g.window != nil {
		if g.window.Kind == kind {
			g.registerPress(now)
		} else {
			g.setNotice(NoticeWrongAction, now)
		}
		return
	}
	g.tryStartWindow(kind, now)
}

// tryStartWindow opens a press window for the given kind if the current round
// has a matching outstanding objective and the caretaker is close enough to
// the relevant zone or cat. Rejections never mutate game state.
func (g *Game) tryStartWindow(kind WindowKind, now int64) {
	action := g.outstandingAction(kind.objective())
	if action == nil {
		g.setNotice(NoticeWrongAction, now)
		return
	}

	zone, focus, ok := g.windowFocus(kind, action)
	if !ok {
		g.setNotice(NoticeWrongAction, now)
		return
	}
	if core.Dist(g.player, focus) > g.cfg.Sim.InteractRange {
		g.setNotice(NoticeMoveCloser, now)
		return
	}

	spec := windowSpecs[kind]
	required := spec.presses
	if kind == WindowNoNo {
		// Rerolled per window so the count can't be memorized.
		required = noNoPressMin + g.rng.Intn(noNoPressMax-noNoPressMin+1)
	}

	w := &ActionWindow{
		Kind:      kind,
		CatID:     action.CatID,
		Required:  required,
		ExpiresAt: now + g.cfg.Windows.DurationMS,
		action:    action,
	}
	if zone != nil {
		w.ZoneID = zone.ID
		if spec.fillsBowl {
			// Drain the bowl so the presses visibly refill it.
			zone.Empty()
		}
	}
	g.window = w

	// The opening press is press one.
	g.registerPress(now)
}

// outstandingAction returns the first incomplete round objective of the given
// kind, or nil.
func (g *Game) outstandingAction(kind ObjectiveKind) *RoundAction {
	if g.phase != phaseActive {
		return nil
	}
	for _, a := range g.actions {
		if !a.Completed && a.Kind == kind {
			return a
		}
	}
	return nil
}

// windowFocus resolves the zone and the proximity anchor for a window kind.
func (g *Game) windowFocus(kind WindowKind, action *RoundAction) (*Zone, core.Vec2, bool) {
	switch kind {
	case WindowFood:
		if z := g.firstZoneOfKind(ZoneFoodBowl); z != nil {
			return z, z.Center(), true
		}
	case WindowWater:
		if z := g.firstZoneOfKind(ZoneWaterBowl); z != nil {
			return z, z.Center(), true
		}
	case WindowPlay:
		if z := g.nearestPlaySpot(g.player); z != nil {
			return z, z.Center(), true
		}
	case WindowPet:
		if c := g.catByID(action.CatID); c != nil {
			return nil, c.Pos, true
		}
	case WindowNoNo:
		if z := g.zoneByID[action.TargetZoneID]; z != nil {
			return z, z.Center(), true
		}
	}
	return nil, core.Vec2{}, false
}

// registerPress counts one qualifying press and resolves the window on the
// final one. Food/water presses refill the bowl in lockstep.
func (g *Game) registerPress(now int64) {
	w := g.window
	w.Presses++

	if windowSpecs[w.Kind].fillsBowl {
		if z := g.zoneByID[w.ZoneID]; z != nil {
			z.AddFill(100 / float64(w.Required))
		}
	}

	if w.Presses >= w.Required {
		g.resolveWindowSuccess(now)
	}
}

// resolveWindowSuccess applies the success effects for the open window's kind
// and closes it.
func (g *Game) resolveWindowSuccess(now int64) {
	w := g.window
	g.window = nil
	spec := windowSpecs[w.Kind]

	if w.Kind == WindowNoNo {
		if z := g.zoneByID[w.ZoneID]; z != nil {
			z.StopWobble()
		}
		g.award(spec.reward)
		if c := g.catByID(w.CatID); c != nil {
			c.ClearTarget()
			c.Scold(now)
		}
		g.completeAction(w.action, now)
		return
	}

	if c := g.catByID(w.CatID); c != nil {
		c.ReduceNeed(spec.need, spec.needDrop)
		c.flourish(flourishFor(w.Kind), now, g.cfg.Sim.FlourishMS)
	}
	if spec.fillsBowl {
		if z := g.zoneByID[w.ZoneID]; z != nil {
			z.SetFull()
		}
	}
	g.award(spec.reward)
	g.completeAction(w.action, now)
}

// flourishFor maps a fulfilled window to the cat's display state.
func flourishFor(kind WindowKind) BehaviorState {
	switch kind {
	case WindowFood, WindowWater:
		return StateEating
	case WindowPlay:
		return StatePlaying
	default:
		return StatePurring
	}
}

// completeAction marks a round objective done and runs the completion check.
func (g *Game) completeAction(a *RoundAction, now int64) {
	if a == nil || a.Completed {
		return
	}
	a.Completed = true
	g.onActionCompleted(now)
}

// checkWindowExpiry resolves a timed-out window as a failure. No-no windows
// are exempt: the disaster collision decides their fate.
func (g *Game) checkWindowExpiry(now int64) {
	w := g.window
	if w == nil || w.Kind == WindowNoNo || now <= w.ExpiresAt {
		return
	}
	g.window = nil
	g.penalize(windowSpecs[w.Kind].penalty)
}
