package catchaos

import (
	"testing"

	"github.com/vovakirdan/cat-chaos/internal/config"
	"github.com/vovakirdan/cat-chaos/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
	g.ResetWithConfig(rc, config.DefaultGameConfig())
	return g
}

// stepTicks advances the game n ticks with no input.
func stepTicks(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

// ticksFor converts simulated milliseconds to a tick count with slack.
func ticksFor(g *Game, ms int64) int {
	return int(float64(ms)/g.msPerTick) + 2
}

// skipBanner steps through the round banner so the round is active.
func skipBanner(g *Game) {
	stepTicks(g, ticksFor(g, g.cfg.Rounds.BannerMS))
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	if g.score != g.cfg.Scoring.StartScore {
		t.Errorf("score should start at %d, got %d", g.cfg.Scoring.StartScore, g.score)
	}
	if g.roundNum != 1 {
		t.Errorf("round should start at 1, got %d", g.roundNum)
	}
	if g.phase != phaseBanner {
		t.Errorf("game should start in the banner phase, got %d", g.phase)
	}
	if len(g.cats) != 1 {
		t.Errorf("one cat should be present at start, got %d", len(g.cats))
	}
	if len(g.zones) == 0 {
		t.Error("room should have zones")
	}
	if g.window != nil {
		t.Error("no press window should be open at start")
	}
	if g.gameOver {
		t.Error("game should not start over")
	}

	// Resetting mid-session restores the initial state.
	stepTicks(g, 300)
	g.ResetWithConfig(g.runtime, g.cfg)
	if g.tick != 0 || g.roundNum != 1 || g.score != g.cfg.Scoring.StartScore {
		t.Errorf("reset should restore initial state, got tick=%d round=%d score=%d",
			g.tick, g.roundNum, g.score)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 == 0:
			inputs[i].Set(core.ActionLeft)
		case i%5 == 0:
			inputs[i].Set(core.ActionUp)
		case i%11 == 0:
			inputs[i].Set(core.ActionFeed)
		case i%13 == 0:
			inputs[i].Set(core.ActionPet)
		}
	}

	run := func() Snapshot {
		g := New()
		g.ResetWithConfig(cfg, config.DefaultGameConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ, run1=%d run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ, run1=%d run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Round != snap2.Round {
		t.Errorf("determinism failed: rounds differ, run1=%d run2=%d", snap1.Round, snap2.Round)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(7)
	g.gameOver = true
	g.score = 0
	g.roundNum = 9

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.gameOver {
		t.Error("restart should clear game over")
	}
	if g.score != g.cfg.Scoring.StartScore {
		t.Errorf("restart should restore the starting score, got %d", g.score)
	}
	if g.roundNum != 1 {
		t.Errorf("restart should return to round 1, got %d", g.roundNum)
	}
}

func TestRestartIgnoredMidGame(t *testing.T) {
	g := newTestGame(7)
	stepTicks(g, 50)
	tick := g.tick

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.tick != tick+1 {
		t.Error("restart should have no effect while the game is running")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(7)
	skipBanner(g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("game should be paused")
	}

	tick := g.tick
	clock := g.clockMS
	stepTicks(g, 30)
	if g.tick != tick || g.clockMS != clock {
		t.Error("tick and clock should not advance while paused")
	}

	g.Step(pause)
	if g.paused {
		t.Error("game should be unpaused")
	}
	stepTicks(g, 1)
	if g.tick <= tick {
		t.Error("tick should advance after unpausing")
	}
}

func TestScoreFloorsAtZeroAndEndsGame(t *testing.T) {
	g := newTestGame(7)

	g.penalize(g.score - 1)
	if g.gameOver {
		t.Error("score above zero should not end the game")
	}

	g.penalize(10)
	if g.score != 0 {
		t.Errorf("displayed score should floor at 0, got %d", g.score)
	}
	if !g.gameOver {
		t.Error("score reaching zero should end the game")
	}

	// Further awards after game over must not resurrect the session.
	stepTicks(g, 5)
	if !g.gameOver {
		t.Error("game over is terminal until restart")
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newTestGame(7)

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 500; i++ {
		g.Step(left)
	}

	if g.player.X != g.cfg.Room.Margin {
		t.Errorf("player should clamp at the left margin %v, got %v", g.cfg.Room.Margin, g.player.X)
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	for i := 0; i < 500; i++ {
		g.Step(down)
	}
	if g.player.Y != g.cfg.Room.Height-g.cfg.Room.Margin {
		t.Errorf("player should clamp at the bottom margin, got %v", g.player.Y)
	}
}

func TestCatsSpawnOnCadence(t *testing.T) {
	g := newTestGame(7)

	if len(g.cats) != 1 {
		t.Fatalf("expected 1 cat at start, got %d", len(g.cats))
	}

	stepTicks(g, ticksFor(g, g.cfg.Sim.SpawnIntervalMS))
	if len(g.cats) < 2 {
		t.Errorf("a second cat should join after the spawn interval, got %d", len(g.cats))
	}

	// The roster cap holds no matter how long the session runs.
	g.lastSpawn = -g.cfg.Sim.SpawnIntervalMS * 100
	for i := 0; i < g.cfg.Sim.MaxCats+3; i++ {
		g.maybeSpawnCat(g.now())
		g.lastSpawn = -g.cfg.Sim.SpawnIntervalMS
	}
	if len(g.cats) > g.cfg.Sim.MaxCats {
		t.Errorf("cat count should cap at %d, got %d", g.cfg.Sim.MaxCats, len(g.cats))
	}
}

func TestFallenZoneAutoRepairs(t *testing.T) {
	g := newTestGame(7)
	z := g.firstBreakable(t)

	z.StartWobble()
	z.Fall(g.now())
	if !z.IsFallen {
		t.Fatal("zone should be fallen")
	}

	g.repairFallen(g.now() + g.cfg.Sim.RepairDelayMS)
	if z.IsFallen {
		t.Error("fallen zone should auto-repair after the delay")
	}
}

func (g *Game) firstBreakable(t *testing.T) *Zone {
	t.Helper()
	for _, z := range g.zones {
		if z.Kind.IsBreakable() {
			return z
		}
	}
	t.Fatal("room has no breakable zone")
	return nil
}

func TestGameRender(t *testing.T) {
	g := newTestGame(7)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("render should draw something to the screen")
	}

	// HUD carries the score.
	if screen.Row(0) == "" {
		t.Error("HUD row should not be empty")
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	g := newTestGame(7)
	skipBanner(g)
	stepTicks(g, 60)

	snap := g.Snapshot()
	if snap.Tick != g.tick {
		t.Errorf("snapshot tick %d should match game tick %d", snap.Tick, g.tick)
	}
	if snap.Score != g.score {
		t.Errorf("snapshot score %d should match game score %d", snap.Score, g.score)
	}
	if len(snap.Cats) != len(g.cats) {
		t.Errorf("snapshot should carry %d cats, got %d", len(g.cats), len(snap.Cats))
	}
	if len(snap.Zones) != len(g.zones) {
		t.Errorf("snapshot should carry %d zones, got %d", len(g.zones), len(snap.Zones))
	}
	if snap.Hash() == 0 {
		t.Error("snapshot hash should not be zero for a running game")
	}
}
