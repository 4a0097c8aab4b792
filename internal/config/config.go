// Package config provides YAML-based game configuration loading and
// difficulty management for cat-chaos.
package config

// GameConfig contains all tunable configuration for the game: the room
// layout plus the simulation, round and press-window parameters.
type GameConfig struct {
	Room       RoomConfig       `yaml:"room"`
	Sim        SimConfig        `yaml:"sim"`
	Rounds     RoundsConfig     `yaml:"rounds"`
	Windows    WindowsConfig    `yaml:"windows"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RoomConfig describes the room: its interior bounds and the fixed catalogue
// of zones (bowls, toys, breakables, furniture). Everything here is immutable
// for a session; runtime zone state (fill, wobble) lives in the game.
type RoomConfig struct {
	Width  float64      `yaml:"width"`  // Room width in room units
	Height float64      `yaml:"height"` // Room height in room units
	Margin float64      `yaml:"margin"` // Interior inset cats and player are clamped to
	Zones  []ZoneConfig `yaml:"zones"`
}

// ZoneConfig is one fixed point of interest in the room.
type ZoneConfig struct {
	ID        string  `yaml:"id"`
	Kind      string  `yaml:"kind"` // food_bowl, water_bowl, toy, cat_tree, vase, lamp, mug, plant, ...
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	W         float64 `yaml:"w"`
	H         float64 `yaml:"h"`
	Label     string  `yaml:"label"`
	FillLevel float64 `yaml:"fill_level"` // Initial fill for bowl kinds (0-100)
}

// SimConfig defines the per-tick need/movement simulation parameters.
type SimConfig struct {
	NeedGrowth        float64 `yaml:"need_growth"`         // Need increase per tick, toward 100
	DisasterThreshold float64 `yaml:"disaster_threshold"`  // Need level above which a cat seeks fulfillment
	CatSpeed          float64 `yaml:"cat_speed"`           // Purposeful walk speed, units per tick
	MischiefFactor    float64 `yaml:"mischief_factor"`     // Speed multiplier for mischievous cats
	WanderSpeed       float64 `yaml:"wander_speed"`        // Idle wander velocity magnitude
	WanderChance      float64 `yaml:"wander_chance"`       // Per-tick probability of starting a wander
	WanderCooldownMS  int64   `yaml:"wander_cooldown_ms"`  // Minimum idle time before wandering again
	VelocityDamping   float64 `yaml:"velocity_damping"`    // Per-tick wander velocity decay factor
	ArriveDistance    float64 `yaml:"arrive_distance"`     // Distance at which a target counts as reached
	TargetJitterX     float64 `yaml:"target_jitter_x"`     // Horizontal jitter band around a zone target
	TargetJitterY     float64 `yaml:"target_jitter_y"`     // Vertical jitter band around a zone target
	EatNeedDrop       float64 `yaml:"eat_need_drop"`       // Need reduction when a cat eats/drinks on its own
	BowlDrainStep     float64 `yaml:"bowl_drain_step"`     // Fill consumed per visit
	WobbleFallChance  float64 `yaml:"wobble_fall_chance"`  // Per-tick chance a wobbling object falls
	FallPenalty       int     `yaml:"fall_penalty"`        // Score penalty for a passive fall
	RepairDelayMS     int64   `yaml:"repair_delay_ms"`     // Fallen objects auto-repair after this long
	ScoldDurationMS   int64   `yaml:"scold_duration_ms"`   // How long a scolded cat stays frozen
	FlourishMS        int64   `yaml:"flourish_ms"`         // eating/playing/purring display duration
	SpawnIntervalMS   int64   `yaml:"spawn_interval_ms"`   // Time between new cats joining
	MaxCats           int     `yaml:"max_cats"`            // Roster cap
	PlayerSpeed       float64 `yaml:"player_speed"`        // Caretaker movement per held direction per tick
	InteractRange     float64 `yaml:"interact_range"`      // Max distance for care keys to take effect
	CollisionDistance float64 `yaml:"collision_distance"`  // Disaster cat distance that breaks the object
	DisasterCatSpeed  float64 `yaml:"disaster_cat_speed"`  // Walk speed of the scripted mischief cat
}

// RoundsConfig defines the round engine parameters.
type RoundsConfig struct {
	IntroRounds     int   `yaml:"intro_rounds"`       // Rounds with exactly one action
	DisasterStart   int   `yaml:"disaster_start"`     // First disaster round
	DisasterEvery   int   `yaml:"disaster_every"`     // Disaster rounds repeat at this interval
	MaxActions      int   `yaml:"max_actions"`        // Cap on actions per round
	TimerMinMS      int64 `yaml:"timer_min_ms"`       // Countdown budget lower bound
	TimerMaxMS      int64 `yaml:"timer_max_ms"`       // Countdown budget upper bound
	ExtraActionMS   int64 `yaml:"extra_action_ms"`    // Bonus per action beyond the first
	BannerMS        int64 `yaml:"banner_ms"`          // Round banner display (paused) duration
	InterludeMS     int64 `yaml:"interlude_ms"`       // Delay between round resolution and next banner
	ScalingEnabled  bool  `yaml:"scaling_enabled"`    // Difficulty multiplier tiers on/off
}

// WindowsConfig defines the rapid-press action window parameters.
type WindowsConfig struct {
	DurationMS int64 `yaml:"duration_ms"` // Time budget per window
}

// ScoringConfig defines score bookkeeping parameters.
type ScoringConfig struct {
	StartScore int `yaml:"start_score"` // Session starting score; reaching 0 is game over
}

// DifficultyConfig records which preset the session runs under.
type DifficultyConfig struct {
	Preset string `yaml:"preset"` // easy, normal, hard, fixed
}
