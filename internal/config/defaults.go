package config

import (
	_ "embed"
)

//go:embed defaults/catchaos.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration, used when no YAML
// file is found and the embedded default fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Room: RoomConfig{
			Width:  700,
			Height: 550,
			Margin: 30,
			Zones:  defaultZones(),
		},
		Sim: SimConfig{
			NeedGrowth:        0.45,
			DisasterThreshold: 65,
			CatSpeed:          1.2,
			MischiefFactor:    1.3,
			WanderSpeed:       0.3,
			WanderChance:      0.02,
			WanderCooldownMS:  3000,
			VelocityDamping:   0.98,
			ArriveDistance:    5,
			TargetJitterX:     70,
			TargetJitterY:     50,
			EatNeedDrop:       40,
			BowlDrainStep:     30,
			WobbleFallChance:  0.015,
			FallPenalty:       15,
			RepairDelayMS:     15000,
			ScoldDurationMS:   2000,
			FlourishMS:        600,
			SpawnIntervalMS:   25000,
			MaxCats:           6,
			PlayerSpeed:       4.0,
			InteractRange:     60,
			CollisionDistance: 10,
			DisasterCatSpeed:  0.9,
		},
		Rounds: RoundsConfig{
			IntroRounds:    3,
			DisasterStart:  4,
			DisasterEvery:  3,
			MaxActions:     2,
			TimerMinMS:     5000,
			TimerMaxMS:     15000,
			ExtraActionMS:  4000,
			BannerMS:       2000,
			InterludeMS:    1500,
			ScalingEnabled: true,
		},
		Windows: WindowsConfig{
			DurationMS: 8000,
		},
		Scoring: ScoringConfig{
			StartScore: 100,
		},
		Difficulty: DifficultyConfig{
			Preset: "normal",
		},
	}
}

// defaultZones returns the built-in room layout: window wall with plants,
// cat tree, sofa, rug, feeding corner, shelf with vases, lamp, toys, and a
// table with a mug.
func defaultZones() []ZoneConfig {
	return []ZoneConfig{
		{ID: "window", Kind: "window", X: 100, Y: 60, W: 80, H: 50, Label: "Window"},
		{ID: "plant1", Kind: "plant", X: 70, Y: 100, W: 40, H: 40, Label: "Fern"},
		{ID: "plant2", Kind: "plant", X: 160, Y: 100, W: 40, H: 40, Label: "Cactus"},
		{ID: "cattree", Kind: "cat_tree", X: 350, Y: 80, W: 60, H: 60, Label: "Cat Tree"},
		{ID: "sofa", Kind: "sofa", X: 550, Y: 50, W: 120, H: 50, Label: "Sofa"},
		{ID: "rug", Kind: "rug", X: 300, Y: 250, W: 150, H: 80, Label: "Rug"},
		{ID: "food_bowl", Kind: "food_bowl", X: 80, Y: 380, W: 50, H: 40, Label: "Food Bowl", FillLevel: 0},
		{ID: "water_bowl", Kind: "water_bowl", X: 150, Y: 380, W: 50, H: 40, Label: "Water Bowl", FillLevel: 100},
		{ID: "shelf", Kind: "shelf", X: 600, Y: 180, W: 70, H: 40, Label: "Bookshelf"},
		{ID: "vase1", Kind: "vase", X: 610, Y: 130, W: 40, H: 40, Label: "Vase"},
		{ID: "vase2", Kind: "vase", X: 620, Y: 140, W: 40, H: 40, Label: "Urn"},
		{ID: "lamp", Kind: "lamp", X: 500, Y: 200, W: 40, H: 40, Label: "Lamp"},
		{ID: "toy1", Kind: "toy", X: 350, Y: 350, W: 35, H: 35, Label: "Ball"},
		{ID: "toy2", Kind: "toy", X: 450, Y: 400, W: 35, H: 35, Label: "Yarn"},
		{ID: "table", Kind: "table", X: 250, Y: 150, W: 50, H: 40, Label: "Table"},
		{ID: "mug", Kind: "mug", X: 255, Y: 120, W: 30, H: 30, Label: "Mug"},
	}
}
