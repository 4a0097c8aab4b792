package catchaos

import (
	"math"

	"github.com/vovakirdan/cat-chaos/internal/core"
)

// stepSimulation advances the need/movement simulation by one tick: need
// growth, wander, urgent-need pursuit, movement, arrival interactions and the
// passive wobble hazard. Runs only while a round is active (the banner pauses
// the world).
func (g *Game) stepSimulation(now int64) {
	for _, c := range g.cats {
		g.stepCat(c, now)
	}
	g.stepWobbles(now)
}

// stepCat runs the per-cat simulation rules in their fixed order.
func (g *Game) stepCat(c *Cat, now int64) {
	sim := &g.cfg.Sim

	// Scolded cats are frozen until the scold wears off.
	if c.State == StateScolded {
		if now-c.LastActionAt > sim.ScoldDurationMS {
			c.State = StateIdle
			c.ClearTarget()
		}
		return
	}

	// Eating/playing/purring are short display states; the cat stands still
	// until the flourish ends.
	if c.State == StateEating || c.State == StatePlaying || c.State == StatePurring {
		if now < c.stateUntil {
			return
		}
		c.State = StateIdle
	}

	// Needs rise toward 100.
	for k := NeedKind(0); k < needCount; k++ {
		c.Needs[k] = core.ClampF(c.Needs[k]+sim.NeedGrowth, 0, 100)
	}

	urgentKind, urgentVal := c.MostUrgentNeed()

	// Idle wander: occasional drift in a random direction.
	if c.State == StateIdle && now-c.LastActionAt > sim.WanderCooldownMS && g.rng.Float64() < sim.WanderChance {
		angle := g.rng.Float64() * 2 * math.Pi
		c.Vel = core.Vec2{
			X: math.Cos(angle) * sim.WanderSpeed,
			Y: math.Sin(angle) * sim.WanderSpeed,
		}
		c.ClearTarget()
		c.LastActionAt = now
	}

	// Urgent-need pursuit: head for the need's zone, jittered so cats
	// converging on one bowl don't stack exactly.
	if urgentVal > sim.DisasterThreshold && c.State == StateIdle && c.Target == nil {
		if z := g.zoneForNeed(urgentKind, c.Pos); z != nil {
			center := z.Center()
			c.SetTarget(core.Vec2{
				X: center.X + (g.rng.Float64()-0.5)*sim.TargetJitterX,
				Y: center.Y + (g.rng.Float64()-0.5)*sim.TargetJitterY,
			})
			c.State = StateMoving
			c.Vel = core.Vec2{}
		}
	}

	// Movement toward the current target.
	if c.Target != nil {
		delta := c.Target.Sub(c.Pos)
		dist := delta.Len()
		if dist > sim.ArriveDistance {
			speed := c.Speed(sim.CatSpeed, sim.MischiefFactor)
			if g.isDisasterCat(c) {
				speed = sim.DisasterCatSpeed
			}
			c.Pos = g.clampToRoom(c.Pos.Add(delta.Normalized().Scale(speed)))
		} else {
			g.arrive(c, now)
		}
	}

	// Wander velocity: drift, clamp, decay to a stop.
	if c.Vel.X != 0 || c.Vel.Y != 0 {
		c.Pos = g.clampToRoom(c.Pos.Add(c.Vel))
		c.Vel = c.Vel.Scale(g.cfg.Sim.VelocityDamping)
		if c.Vel.Len() < 0.01 {
			c.Vel = core.Vec2{}
		}
	}
}

// arrive applies the effects of reaching the current target, then clears it.
func (g *Game) arrive(c *Cat, now int64) {
	sim := &g.cfg.Sim
	z := g.zoneAtPoint(*c.Target)

	if z != nil {
		switch {
		case z.Kind.IsBreakable():
			// A cat at a breakable starts it wobbling. The scripted disaster
			// path never gets here: the collision check resolves first.
			if !z.IsWobbling && !z.IsFallen {
				z.StartWobble()
			}
		case z.Kind == ZoneFoodBowl:
			if !z.IsEmpty {
				c.ReduceNeed(NeedHunger, sim.EatNeedDrop)
				z.Drain(sim.BowlDrainStep)
				c.flourish(StateEating, now, sim.FlourishMS)
			}
			// Empty bowl: the cat waits there without effect.
		case z.Kind == ZoneWaterBowl:
			if !z.IsEmpty {
				c.ReduceNeed(NeedWater, sim.EatNeedDrop)
				z.Drain(sim.BowlDrainStep)
				c.flourish(StateEating, now, sim.FlourishMS)
			}
		}
	}

	c.ClearTarget()
	c.Vel = core.Vec2{}
	if c.State == StateMoving {
		c.State = StateIdle
	}
	c.LastActionAt = now
}

// stepWobbles rolls the passive hazard: every wobbling object may tip over
// this tick. The active disaster round's target is excluded; its fate is
// decided by the collision/no-no protocol instead.
func (g *Game) stepWobbles(now int64) {
	disasterZoneID := ""
	if a := g.activeDisaster(); a != nil {
		disasterZoneID = a.TargetZoneID
	}

	for _, z := range g.zones {
		if !z.IsWobbling || z.ID == disasterZoneID {
			continue
		}
		if g.rng.Float64() < g.cfg.Sim.WobbleFallChance {
			z.Fall(now)
			g.flash(now)
			g.penalize(g.cfg.Sim.FallPenalty)
			if g.gameOver {
				return
			}
		}
	}
}

// isDisasterCat reports whether c is the cat walking the active scripted
// mischief route.
func (g *Game) isDisasterCat(c *Cat) bool {
	a := g.activeDisaster()
	return a != nil && a.CatID == c.ID
}
