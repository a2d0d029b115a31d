package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/caterpillar.yaml
var defaultCaterpillarYAML []byte

//go:embed defaults/explodo.yaml
var defaultExplodoYAML []byte

// DefaultSnakeConfig returns the default classic Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  0, // fit screen
			Height: 0,
		},
		Speed: SpeedConfig{
			MoveEveryTicks: 6,
		},
		Rules: SnakeRules{
			LeafReward: 10,
			LeafGrowth: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedUp: 3,
			},
		},
	}
}

// DefaultCaterpillarConfig returns the default Caterpillar configuration.
func DefaultCaterpillarConfig() CaterpillarConfig {
	return CaterpillarConfig{
		Grid: GridConfig{
			Width:  0,
			Height: 0,
		},
		Speed: SpeedConfig{
			MoveEveryTicks: 8,
		},
		Rules: SnakeRules{
			LeafReward: 10,
			LeafGrowth: 1,
		},
		Burst: BurstConfig{
			Particles: 14,
			Life:      0.45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedUp: 4,
			},
		},
	}
}

// DefaultExplodoConfig returns the default Explodo configuration.
func DefaultExplodoConfig() ExplodoConfig {
	return ExplodoConfig{
		Grid: GridConfig{
			Width:  0,
			Height: 0,
		},
		Speed: SpeedConfig{
			MoveEveryTicks: 6,
		},
		Rules: ExplodoRules{
			InitialLength: 5,
			LeafReward:    10,
			LeafGrowth:    1,
			NitroChance:   0.40,
			NitroReward:   25,
			NitroGrowth:   2,
			FuseMin:       6.0,
			FuseMax:       10.0,
			BlastRadius:   2.4,
			DebrisMin:     6,
			DebrisMax:     12,
			InitialRocks:  12,
		},
		Shake: ShakeConfig{
			Power: 10.0,
			Decay: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 800,
			},
			Scaling: ScalingConfig{
				SpeedUp:    2,
				NitroBoost: 0.25,
				FuseCut:    3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "caterpillar":
		return defaultCaterpillarYAML
	case "explodo":
		return defaultExplodoYAML
	default:
		return nil
	}
}
