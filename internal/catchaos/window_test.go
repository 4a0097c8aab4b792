package catchaos

import (
	"testing"

	"github.com/vovakirdan/cat-chaos/internal/core"
)

// setRoundObjective replaces the current round with a single hand-built
// objective and arms an already-expired deadline so completion bonuses stay
// out of the score assertions.
func setRoundObjective(g *Game, kind ObjectiveKind, catID string) *RoundAction {
	a := &RoundAction{Kind: kind, CatID: catID}
	g.actions = []*RoundAction{a}
	g.phase = phaseActive
	g.roundBudget = 10000
	g.roundDeadline = g.now()
	return a
}

func TestWindowNeedsMatchingObjective(t *testing.T) {
	g := newTestGame(5)
	setRoundObjective(g, ObjectivePlay, g.cats[0].ID)

	g.pressCare(WindowFood, g.now())

	if g.window != nil {
		t.Error("no food objective, no food window")
	}
	if g.notice != NoticeWrongAction {
		t.Errorf("mismatched key should raise the wrong-action notice, got %d", g.notice)
	}
}

func TestWindowNeedsProximity(t *testing.T) {
	g := newTestGame(5)
	c := g.cats[0]
	setRoundObjective(g, ObjectiveHunger, c.ID)

	bowl := g.firstZoneOfKind(ZoneFoodBowl)
	g.player = bowl.Center().Add(core.Vec2{X: g.cfg.Sim.InteractRange * 3})

	g.pressCare(WindowFood, g.now())

	if g.window != nil {
		t.Error("window should not open out of range")
	}
	if g.notice != NoticeMoveCloser {
		t.Errorf("out of range should raise the move-closer notice, got %d", g.notice)
	}
}

func TestFoodWindowLifecycle(t *testing.T) {
	g := newTestGame(5)
	c := g.cats[0]
	c.Needs[NeedHunger] = 80
	a := setRoundObjective(g, ObjectiveHunger, c.ID)

	bowl := g.firstZoneOfKind(ZoneFoodBowl)
	g.player = bowl.Center()
	score := g.score
	spec := windowSpecs[WindowFood]

	g.pressCare(WindowFood, g.now())
	w := g.window
	if w == nil {
		t.Fatal("food window should open")
	}
	if w.Kind != WindowFood || w.Required != spec.presses {
		t.Fatalf("unexpected window: kind=%s required=%d", w.Kind, w.Required)
	}
	if w.Presses != 1 {
		t.Errorf("the opening press should count, got %d", w.Presses)
	}
	if !bowl.IsEmpty && bowl.FillLevel >= 100 {
		t.Error("opening the window should drain the bowl for the visible refill")
	}

	for i := 1; i < spec.presses; i++ {
		g.pressCare(WindowFood, g.now())
	}

	if g.window != nil {
		t.Error("completed window should close")
	}
	if !a.Completed || a.Failed {
		t.Error("success should mark the objective completed, not failed")
	}
	if g.score != score+spec.reward {
		t.Errorf("success should award %d, score went %d -> %d", spec.reward, score, g.score)
	}
	if c.Needs[NeedHunger] != 80-spec.needDrop {
		t.Errorf("hunger should drop by %v, got %v", spec.needDrop, c.Needs[NeedHunger])
	}
	if bowl.FillLevel != 100 || bowl.IsEmpty {
		t.Errorf("success should refill the bowl, got %v", bowl.FillLevel)
	}
	if c.State != StateEating {
		t.Errorf("fed cat should flash eating, got %s", c.State)
	}
	if g.phase != phaseInterlude {
		t.Error("last objective done should advance the round")
	}
}

func TestPetWindowResolvesInOnePress(t *testing.T) {
	g := newTestGame(5)
	c := g.cats[0]
	c.Needs[NeedAttention] = 90
	a := setRoundObjective(g, ObjectiveAttention, c.ID)

	g.player = c.Pos
	score := g.score
	spec := windowSpecs[WindowPet]

	g.pressCare(WindowPet, g.now())

	if g.window != nil {
		t.Error("a one-press window should resolve immediately")
	}
	if !a.Completed {
		t.Error("petting should complete the attention objective")
	}
	if g.score != score+spec.reward {
		t.Errorf("petting should award %d, score went %d -> %d", spec.reward, score, g.score)
	}
	if c.Needs[NeedAttention] != 90-spec.needDrop {
		t.Errorf("attention should drop by %v, got %v", spec.needDrop, c.Needs[NeedAttention])
	}
	if c.State != StatePurring {
		t.Errorf("petted cat should purr, got %s", c.State)
	}
}

func TestWrongKeyDuringOpenWindow(t *testing.T) {
	g := newTestGame(5)
	c := g.cats[0]
	g.actions = []*RoundAction{
		{Kind: ObjectiveHunger, CatID: c.ID},
		{Kind: ObjectiveWater, CatID: c.ID},
	}
	g.phase = phaseActive
	g.roundBudget = 10000
	g.roundDeadline = g.now()

	g.player = g.firstZoneOfKind(ZoneFoodBowl).Center()
	g.pressCare(WindowFood, g.now())
	if g.window == nil {
		t.Fatal("food window should open")
	}
	presses := g.window.Presses

	// A different care key must not open a second window or count as a press.
	g.pressCare(WindowWater, g.now())

	if g.window == nil || g.window.Kind != WindowFood {
		t.Error("the open food window must survive a mismatched key")
	}
	if g.window.Presses != presses {
		t.Error("mismatched key should not count as a press")
	}
	if g.notice != NoticeWrongAction {
		t.Errorf("mismatched key should raise the wrong-action notice, got %d", g.notice)
	}
}

func TestWindowExpiryPenalizesWithoutNeedChange(t *testing.T) {
	g := newTestGame(5)
	c := g.cats[0]
	c.Needs[NeedHunger] = 80
	setRoundObjective(g, ObjectiveHunger, c.ID)

	g.player = g.firstZoneOfKind(ZoneFoodBowl).Center()
	g.pressCare(WindowFood, g.now())
	if g.window == nil {
		t.Fatal("food window should open")
	}

	score := g.score
	deadline := g.window.ExpiresAt
	g.checkWindowExpiry(deadline + 1)

	if g.window != nil {
		t.Error("expired window should close")
	}
	if g.score != score-windowSpecs[WindowFood].penalty {
		t.Errorf("expiry should cost %d, score went %d -> %d", windowSpecs[WindowFood].penalty, score, g.score)
	}
	if c.Needs[NeedHunger] != 80 {
		t.Errorf("expiry must not change the need, got %v", c.Needs[NeedHunger])
	}
}

func TestNoNoWindowAvertsDisaster(t *testing.T) {
	g := newTestGame(5)
	g.phase = phaseActive
	g.roundBudget = 10000
	g.roundDeadline = g.now()

	a := &RoundAction{Kind: ObjectiveDisaster}
	g.actions = []*RoundAction{a}
	g.armDisaster(a)

	z := g.zoneByID[a.TargetZoneID]
	c := g.catByID(a.CatID)
	g.player = z.Center()
	score := g.score

	g.pressCare(WindowNoNo, g.now())
	w := g.window
	if w == nil {
		t.Fatal("no-no window should open")
	}
	if w.Required < noNoPressMin || w.Required > noNoPressMax {
		t.Fatalf("no-no press count %d outside [%d, %d]", w.Required, noNoPressMin, noNoPressMax)
	}

	for g.window != nil {
		g.pressCare(WindowNoNo, g.now())
	}

	if z.IsWobbling || z.IsFallen {
		t.Error("averted disaster should leave the object standing and stable")
	}
	if c.State != StateScolded {
		t.Errorf("the mischief cat should be scolded, got %s", c.State)
	}
	if c.Target != nil {
		t.Error("the scolded cat should abandon its route")
	}
	if g.score != score+windowSpecs[WindowNoNo].reward {
		t.Errorf("averting should award %d, score went %d -> %d", windowSpecs[WindowNoNo].reward, score, g.score)
	}
	if !a.Completed || a.Failed {
		t.Error("averted disaster is a successful objective")
	}
}

func TestNoNoWindowIgnoresGenericExpiry(t *testing.T) {
	g := newTestGame(5)
	g.phase = phaseActive
	g.roundBudget = 10000
	g.roundDeadline = g.now()

	a := &RoundAction{Kind: ObjectiveDisaster}
	g.actions = []*RoundAction{a}
	g.armDisaster(a)
	g.player = g.zoneByID[a.TargetZoneID].Center()

	g.pressCare(WindowNoNo, g.now())
	if g.window == nil {
		t.Fatal("no-no window should open")
	}

	g.checkWindowExpiry(g.window.ExpiresAt + 1)
	if g.window == nil {
		t.Error("no-no windows resolve through the collision, not the timer")
	}
}

func TestCollisionKillsOpenNoNoWindow(t *testing.T) {
	g := newTestGame(5)
	skipBanner(g)

	a := &RoundAction{Kind: ObjectiveDisaster}
	g.actions = []*RoundAction{a}
	g.armDisaster(a)

	z := g.zoneByID[a.TargetZoneID]
	c := g.catByID(a.CatID)
	g.player = z.Center()

	g.pressCare(WindowNoNo, g.now())
	if g.window == nil {
		t.Fatal("no-no window should open")
	}

	c.Pos = z.Center()
	g.checkDisasterCollision(g.now())

	if g.window != nil {
		t.Error("the breakage should kill the half-finished no-no window")
	}
	if !z.IsFallen {
		t.Error("the object should be broken")
	}
}

func TestWindowIsGloballyExclusive(t *testing.T) {
	g := newTestGame(5)
	c := g.cats[0]
	g.actions = []*RoundAction{
		{Kind: ObjectiveHunger, CatID: c.ID},
		{Kind: ObjectiveAttention, CatID: c.ID},
	}
	g.phase = phaseActive
	g.roundBudget = 10000
	g.roundDeadline = g.now()

	g.player = g.firstZoneOfKind(ZoneFoodBowl).Center()
	c.Pos = g.player

	g.pressCare(WindowFood, g.now())
	if g.window == nil || g.window.Kind != WindowFood {
		t.Fatal("food window should open first")
	}

	g.pressCare(WindowPet, g.now())
	if g.window == nil || g.window.Kind != WindowFood {
		t.Error("a second window must not open while one is active")
	}
}
