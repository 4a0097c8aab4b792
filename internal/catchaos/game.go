// Package catchaos implements the cat-chaos game: autonomous cats with
// decaying needs roam a furnished room while the player, a caretaker moved
// with the arrow keys, answers timed round objectives with rapid key presses
// before hungry cats knock the valuables off the shelves.
package catchaos

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cat-chaos/internal/config"
	"github.com/vovakirdan/cat-chaos/internal/core"
)

// roundPhase is the round engine's coarse state.
type roundPhase int

const (
	phaseBanner    roundPhase = iota // Round banner shown, sim and timer paused
	phaseActive                      // Countdown running, objectives outstanding
	phaseInterlude                   // Round resolved, waiting for the next banner
)

// Notice is a transient, non-mutating feedback signal for the player.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeWrongAction
	NoticeMoveCloser
)

// noticeMS is how long a feedback notice stays visible.
const noticeMS = 1200

// disasterFlashMS is the duration of the screen shake/flash after a breakage.
const disasterFlashMS = 400

// Package-level variables set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game is the single-owner session context: all cats, zones, round, window
// and score state lives here, mutated only through Step.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	rng     rngSource

	tick      uint64
	msPerTick float64
	clockMS   float64

	cats       []*Cat
	zones      []*Zone
	zoneByID   map[string]*Zone
	nextCatIdx int
	lastSpawn  int64

	player core.Vec2

	score    int
	gameOver bool
	paused   bool

	roundNum      int
	phase         roundPhase
	actions       []*RoundAction
	roundDeadline int64
	roundBudget   int64
	bannerUntil   int64
	interlude     int64

	window *ActionWindow

	flashUntil  int64
	notice      Notice
	noticeUntil int64
}

// rngSource is the subset of math/rand used by the simulation. Injecting it
// keeps every random draw reproducible under a fixed seed.
type rngSource interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
	Int63n(n int64) int64
}

// New creates a new game. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "catchaos"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cat Chaos"
}

// Reset initializes or restarts the session. All timers, the action window,
// every cat and every zone are rebuilt in one call, so the presentation layer
// never observes torn state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	if difficultyPreset != "" && config.IsValidPreset(difficultyPreset) {
		config.ApplyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.ResetWithConfig(rc, cfg)
}

// ResetWithConfig is Reset with an explicit game configuration, bypassing the
// file loader. Used by tests and by callers that pre-load config themselves.
func (g *Game) ResetWithConfig(rc core.RuntimeConfig, cfg config.GameConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.cfg = cfg
	g.runtime = rc
	g.rng = newSeededRand(rc.Seed)
	g.tick = 0
	g.msPerTick = 1000 / float64(rc.TickRate)
	g.clockMS = 0

	g.zones = make([]*Zone, 0, len(cfg.Room.Zones))
	g.zoneByID = make(map[string]*Zone, len(cfg.Room.Zones))
	for _, zc := range cfg.Room.Zones {
		z := newZone(zc)
		g.zones = append(g.zones, z)
		g.zoneByID[z.ID] = z
	}

	g.cats = nil
	g.nextCatIdx = 0
	g.lastSpawn = 0
	g.spawnCat(0)

	g.player = core.Vec2{X: cfg.Room.Width / 2, Y: cfg.Room.Height - cfg.Room.Margin*2}

	g.score = cfg.Scoring.StartScore
	g.gameOver = false
	g.paused = false

	g.window = nil
	g.flashUntil = 0
	g.notice = NoticeNone
	g.noticeUntil = 0

	g.roundNum = 1
	g.startRound()
}

// now returns the session clock in simulated milliseconds.
func (g *Game) now() int64 {
	return int64(g.clockMS)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.runtime.Seed = g.rng.Int63()
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// No further simulation after game over or while paused.
	if g.gameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clockMS += g.msPerTick
	now := g.now()

	g.movePlayer(in)

	switch g.phase {
	case phaseBanner:
		if now >= g.bannerUntil {
			g.phase = phaseActive
			g.roundDeadline = now + g.roundBudget
		}
	case phaseInterlude:
		if now >= g.interlude {
			g.startRound()
		}
	case phaseActive:
		g.handleCareKeys(in, now)
		if g.gameOver {
			break
		}
		g.stepSimulation(now)
		g.checkDisasterCollision(now)
		g.checkWindowExpiry(now)
		if !g.gameOver && g.phase == phaseActive && now >= g.roundDeadline {
			g.expireRound(now)
		}
	}

	g.repairFallen(now)
	g.maybeSpawnCat(now)

	if g.notice != NoticeNone && now >= g.noticeUntil {
		g.notice = NoticeNone
	}

	return core.StepResult{State: g.State()}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Round:    g.roundNum,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// movePlayer applies held direction keys to the caretaker, clamped to the
// room interior.
func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Sim.PlayerSpeed
	if in.Has(core.ActionUp) {
		g.player.Y -= speed
	}
	if in.Has(core.ActionDown) {
		g.player.Y += speed
	}
	if in.Has(core.ActionLeft) {
		g.player.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.player.X += speed
	}
	g.player = g.clampToRoom(g.player)
}

// clampToRoom keeps a position inside the room's interior margins.
func (g *Game) clampToRoom(p core.Vec2) core.Vec2 {
	m := g.cfg.Room.Margin
	return core.Vec2{
		X: core.ClampF(p.X, m, g.cfg.Room.Width-m),
		Y: core.ClampF(p.Y, m, g.cfg.Room.Height-m),
	}
}

// handleCareKeys routes this frame's care presses into the window protocol.
func (g *Game) handleCareKeys(in core.InputFrame, now int64) {
	for _, pair := range careKeyOrder {
		if in.Has(pair.action) {
			g.pressCare(pair.kind, now)
		}
	}
}

// careKeyOrder fixes the processing order when several care keys land in the
// same frame, keeping the simulation deterministic.
var careKeyOrder = []struct {
	action core.Action
	kind   WindowKind
}{
	{core.ActionFeed, WindowFood},
	{core.ActionWater, WindowWater},
	{core.ActionPlay, WindowPlay},
	{core.ActionPet, WindowPet},
	{core.ActionNoNo, WindowNoNo},
}

// award adds points to the running score. There is no upper bound.
func (g *Game) award(points int) {
	g.score += points
}

// penalize subtracts points. The displayed score floors at zero; the pre-floor
// value decides game over.
func (g *Game) penalize(points int) {
	g.score -= points
	if g.score <= 0 {
		g.score = 0
		g.gameOver = true
	}
}

// setNotice surfaces a transient feedback signal. Never mutates game state.
func (g *Game) setNotice(n Notice, now int64) {
	g.notice = n
	g.noticeUntil = now + noticeMS
}

// flash triggers the brief disaster shake/flash effect.
func (g *Game) flash(now int64) {
	g.flashUntil = now + disasterFlashMS
}

// spawnCat adds the next roster cat at a random spawn area.
func (g *Game) spawnCat(now int64) {
	if len(g.cats) >= g.cfg.Sim.MaxCats {
		return
	}
	tmpl := catRoster[g.nextCatIdx%len(catRoster)]

	area := spawnAreas[g.rng.Intn(len(spawnAreas))]
	pos := core.Vec2{
		X: area.X + (g.rng.Float64()-0.5)*100,
		Y: area.Y + (g.rng.Float64()-0.5)*60,
	}

	// The first cat starts a little less needy than latecomers.
	startNeed := 20.0
	if g.nextCatIdx == 0 {
		startNeed = 15.0
	}

	c := &Cat{
		ID:           fmt.Sprintf("cat-%d", g.nextCatIdx),
		Name:         tmpl.Name,
		Glyph:        tmpl.Glyph,
		Color:        tmpl.Color,
		Personality:  tmpl.Personality,
		Pos:          g.clampToRoom(pos),
		State:        StateIdle,
		LastActionAt: now,
	}
	for k := NeedKind(0); k < needCount; k++ {
		c.Needs[k] = startNeed
	}

	g.cats = append(g.cats, c)
	g.nextCatIdx++
	g.lastSpawn = now
}

// spawnAreas are the fixed room spots new cats appear around.
var spawnAreas = []core.Vec2{
	{X: 250, Y: 300}, // Center rug
	{X: 400, Y: 350}, // Near toys
	{X: 150, Y: 300}, // Near food
	{X: 500, Y: 300}, // Near sofa
	{X: 350, Y: 200}, // Center room
}

// maybeSpawnCat lets a new cat join on the configured cadence.
func (g *Game) maybeSpawnCat(now int64) {
	if len(g.cats) >= g.cfg.Sim.MaxCats {
		return
	}
	if now-g.lastSpawn >= g.cfg.Sim.SpawnIntervalMS {
		g.spawnCat(now)
	}
}

// repairFallen returns fallen breakables to stable after the repair delay.
func (g *Game) repairFallen(now int64) {
	for _, z := range g.zones {
		if z.IsFallen && now-z.fellAt >= g.cfg.Sim.RepairDelayMS {
			z.Repair()
		}
	}
}

// catByID returns the cat with the given id, or nil.
func (g *Game) catByID(id string) *Cat {
	for _, c := range g.cats {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// zoneForNeed returns the zone a cat visits to satisfy the given need.
// Attention has no zone: only the player provides it.
func (g *Game) zoneForNeed(kind NeedKind, from core.Vec2) *Zone {
	switch kind {
	case NeedHunger:
		return g.firstZoneOfKind(ZoneFoodBowl)
	case NeedWater:
		return g.firstZoneOfKind(ZoneWaterBowl)
	case NeedPlay:
		return g.nearestPlaySpot(from)
	}
	return nil
}

func (g *Game) firstZoneOfKind(kind ZoneKind) *Zone {
	for _, z := range g.zones {
		if z.Kind == kind {
			return z
		}
	}
	return nil
}

func (g *Game) nearestPlaySpot(from core.Vec2) *Zone {
	var best *Zone
	bestDist := math.MaxFloat64
	for _, z := range g.zones {
		if !z.Kind.IsPlaySpot() {
			continue
		}
		if d := core.Dist(from, z.Center()); d < bestDist {
			best = z
			bestDist = d
		}
	}
	return best
}

// zoneAtPoint returns the nearest zone whose footprint contains the point.
func (g *Game) zoneAtPoint(p core.Vec2) *Zone {
	var best *Zone
	bestDist := math.MaxFloat64
	for _, z := range g.zones {
		if !z.ContainsPoint(p) {
			continue
		}
		if d := core.Dist(p, z.Center()); d < bestDist {
			best = z
			bestDist = d
		}
	}
	return best
}
