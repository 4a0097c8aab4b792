package catchaos

import (
	"math"

	"github.com/vovakirdan/cat-chaos/internal/core"
)

// RoundAction is one required objective within the current round.
type RoundAction struct {
	Kind         ObjectiveKind
	Completed    bool
	Failed       bool   // Completed as a failure (timeout or breakage)
	TargetZoneID string // Disaster actions: the breakable under threat
	CatID        string // The cat this objective concerns
}

// startRound generates the current round's objectives, stages the involved
// cats' needs, arms the scripted disaster if due, and shows the banner. The
// countdown is armed when the banner ends.
func (g *Game) startRound() {
	now := g.now()
	g.actions = g.generateRoundActions(g.roundNum)
	g.roundBudget = g.roundTimerBudget(g.roundNum, len(g.actions))

	stageIdx := 0
	for _, a := range g.actions {
		if a.Kind == ObjectiveDisaster {
			g.armDisaster(a)
			continue
		}

		c := g.cats[g.rng.Intn(len(g.cats))]
		a.CatID = c.ID
		if need, ok := a.Kind.Need(); ok {
			// Just above the disaster threshold, staggered lower for each
			// subsequent objective so the first is the most urgent.
			staged := g.cfg.Sim.DisasterThreshold + 10 - float64(5*stageIdx)
			c.Needs[need] = core.ClampF(staged, 0, 100)
		}
		stageIdx++
	}

	g.phase = phaseBanner
	g.bannerUntil = now + g.cfg.Rounds.BannerMS
}

// generateRoundActions builds the ordered objective list for a round.
func (g *Game) generateRoundActions(round int) []*RoundAction {
	rc := &g.cfg.Rounds

	if g.isDisasterRound(round) {
		return []*RoundAction{{Kind: ObjectiveDisaster}}
	}

	needKinds := []NeedKind{NeedHunger, NeedWater, NeedPlay, NeedAttention}

	if round <= rc.IntroRounds {
		kind := needKinds[g.rng.Intn(len(needKinds))]
		return []*RoundAction{{Kind: objectiveForNeed(kind)}}
	}

	count := 1 + (round-rc.IntroRounds)/5
	if count > rc.MaxActions {
		count = rc.MaxActions
	}

	// Distinct need kinds, drawn uniformly without repeats.
	actions := make([]*RoundAction, 0, count)
	remaining := needKinds
	for i := 0; i < count && len(remaining) > 0; i++ {
		idx := g.rng.Intn(len(remaining))
		actions = append(actions, &RoundAction{Kind: objectiveForNeed(remaining[idx])})
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return actions
}

// isDisasterRound reports whether the scripted mischief schedule hits this
// round: the first disaster round, then every few rounds after.
func (g *Game) isDisasterRound(round int) bool {
	rc := &g.cfg.Rounds
	if round < rc.DisasterStart || rc.DisasterEvery <= 0 {
		return false
	}
	return (round-rc.DisasterStart)%rc.DisasterEvery == 0
}

// roundTimerBudget computes the countdown for a round: a random base from the
// configured band, a bonus per extra objective, then the difficulty tier
// multiplier, clamped back into the band.
func (g *Game) roundTimerBudget(round, actionCount int) int64 {
	rc := &g.cfg.Rounds

	budget := rc.TimerMinMS + g.rng.Int63n(rc.TimerMaxMS-rc.TimerMinMS+1)
	if actionCount > 1 {
		budget += rc.ExtraActionMS * int64(actionCount-1)
	}
	if rc.ScalingEnabled {
		budget = int64(float64(budget) * difficultyMultiplier(round))
	}

	if budget < rc.TimerMinMS {
		budget = rc.TimerMinMS
	}
	if budget > rc.TimerMaxMS {
		budget = rc.TimerMaxMS
	}
	return budget
}

// difficultyMultiplier shrinks the time budget in discrete steps as rounds
// progress. Lower multiplier, less time, harder.
func difficultyMultiplier(round int) float64 {
	switch {
	case round <= 3:
		return 1.0
	case round <= 8:
		return 0.95
	case round <= 16:
		return 0.90
	case round <= 26:
		return 0.85
	default:
		return 0.80
	}
}

// armDisaster picks the breakable under threat and the mischief cat, and
// sends the cat walking.
func (g *Game) armDisaster(a *RoundAction) {
	z := g.pickBreakable()
	if z == nil {
		return
	}
	a.TargetZoneID = z.ID
	z.Repair()
	z.StartWobble()

	c := g.pickMischiefCat()
	a.CatID = c.ID
	c.SetTarget(z.Center())
	c.State = StateMoving
	c.Vel = core.Vec2{}
}

// pickBreakable chooses the disaster target uniformly among standing
// breakables, falling back to any breakable if all are down.
func (g *Game) pickBreakable() *Zone {
	var standing []*Zone
	var all []*Zone
	for _, z := range g.zones {
		if !z.Kind.IsBreakable() {
			continue
		}
		all = append(all, z)
		if !z.IsFallen {
			standing = append(standing, z)
		}
	}
	if len(standing) > 0 {
		return standing[g.rng.Intn(len(standing))]
	}
	if len(all) > 0 {
		return all[g.rng.Intn(len(all))]
	}
	return nil
}

// pickMischiefCat prefers a mischievous cat for the disaster walk.
func (g *Game) pickMischiefCat() *Cat {
	var rascals []*Cat
	for _, c := range g.cats {
		if c.Personality == PersonalityMischievous && c.State != StateScolded {
			rascals = append(rascals, c)
		}
	}
	if len(rascals) > 0 {
		return rascals[g.rng.Intn(len(rascals))]
	}
	return g.cats[g.rng.Intn(len(g.cats))]
}

// activeDisaster returns the outstanding disaster objective, if any.
func (g *Game) activeDisaster() *RoundAction {
	for _, a := range g.actions {
		if a.Kind == ObjectiveDisaster && !a.Completed {
			return a
		}
	}
	return nil
}

// checkDisasterCollision judges the outstanding disaster automatically failed
// when the mischief cat reaches the breakable before a completed no-no
// window: the object breaks and the round proceeds through its normal
// completion path.
func (g *Game) checkDisasterCollision(now int64) {
	a := g.activeDisaster()
	if a == nil {
		return
	}
	c := g.catByID(a.CatID)
	z := g.zoneByID[a.TargetZoneID]
	if c == nil || z == nil {
		return
	}

	if core.Dist(c.Pos, z.Center()) >= g.cfg.Sim.CollisionDistance {
		return
	}

	// Too late: the cat got there.
	z.Fall(now)
	g.flash(now)
	g.penalize(z.Kind.breakPenalty())

	a.Completed = true
	a.Failed = true
	c.ClearTarget()
	c.State = StateIdle

	// A half-finished no-no window for this disaster dies with it.
	if g.window != nil && g.window.Kind == WindowNoNo && g.window.ZoneID == z.ID {
		g.window = nil
	}

	if !g.gameOver {
		g.onActionCompleted(now)
	}
}

// onActionCompleted runs the round completion check after any objective is
// marked complete. Success grants a tiered time bonus.
func (g *Game) onActionCompleted(now int64) {
	anyFailed := false
	for _, a := range g.actions {
		if !a.Completed {
			return
		}
		anyFailed = anyFailed || a.Failed
	}

	// A round finished through a breakage gets no time bonus.
	if anyFailed {
		g.advanceRound(now)
		return
	}

	remaining := g.roundDeadline - now
	if remaining < 0 {
		remaining = 0
	}
	frac := 0.0
	if g.roundBudget > 0 {
		frac = float64(remaining) / float64(g.roundBudget)
		if frac > 1 {
			frac = 1
		}
	}

	var bonus int
	switch {
	case frac > 0.5:
		bonus = int(math.Round(15 * frac))
	case frac > 0.25:
		bonus = int(math.Round(8 * frac))
	case frac > 0:
		bonus = int(math.Round(3 * frac))
	}
	g.award(bonus)

	g.advanceRound(now)
}

// expireRound handles the countdown reaching zero with objectives still
// outstanding: per-kind penalties, everything marked failed, then the round
// advances exactly as on success but with no bonus.
func (g *Game) expireRound(now int64) {
	total := 0
	for _, a := range g.actions {
		if a.Completed {
			continue
		}
		total += a.Kind.expiryPenalty()
		a.Completed = true
		a.Failed = true

		if a.Kind == ObjectiveDisaster {
			if z := g.zoneByID[a.TargetZoneID]; z != nil {
				z.Fall(now)
				g.flash(now)
			}
			if c := g.catByID(a.CatID); c != nil {
				c.ClearTarget()
				c.State = StateIdle
			}
		}
	}

	// An open window tied to this round dies with it.
	g.window = nil

	g.penalize(total)
	if g.gameOver {
		return
	}
	g.advanceRound(now)
}

// advanceRound increments the round counter, stops the countdown and
// schedules the next banner.
func (g *Game) advanceRound(now int64) {
	g.roundNum++
	g.phase = phaseInterlude
	g.interlude = now + g.cfg.Rounds.InterludeMS
}
