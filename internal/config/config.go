// Package config provides YAML-based game configuration loading and
// difficulty management for the wyrm arcade.
package config

// GridConfig sizes the playfield. Zero values mean "fit the screen":
// the game derives the grid from the terminal size at reset.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig controls movement cadence: the snake advances one cell
// every MoveEveryTicks engine ticks (60 ticks per second).
type SpeedConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// SnakeConfig contains all configuration for the classic Snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Rules      SnakeRules       `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeRules defines scoring for classic Snake.
type SnakeRules struct {
	LeafReward int `yaml:"leaf_reward"`
	LeafGrowth int `yaml:"leaf_growth"`
}

// CaterpillarConfig contains all configuration for the Caterpillar game.
type CaterpillarConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Rules      SnakeRules       `yaml:"rules"`
	Burst      BurstConfig      `yaml:"burst"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BurstConfig tunes the apple-bite particle burst.
type BurstConfig struct {
	Particles int     `yaml:"particles"` // particles per bite
	Life      float64 `yaml:"life"`      // particle lifetime in seconds
}

// ExplodoConfig contains all configuration for the Explodo game.
type ExplodoConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Speed      SpeedConfig      `yaml:"speed"`
	Rules      ExplodoRules     `yaml:"rules"`
	Shake      ShakeConfig      `yaml:"shake"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ExplodoRules defines scoring, explosive-food odds and blast shape.
type ExplodoRules struct {
	InitialLength int     `yaml:"initial_length"`
	LeafReward    int     `yaml:"leaf_reward"`
	LeafGrowth    int     `yaml:"leaf_growth"`
	NitroChance   float64 `yaml:"nitro_chance"`
	NitroReward   int     `yaml:"nitro_reward"`
	NitroGrowth   int     `yaml:"nitro_growth"`
	FuseMin       float64 `yaml:"fuse_min"`
	FuseMax       float64 `yaml:"fuse_max"`
	BlastRadius   float64 `yaml:"blast_radius"`
	DebrisMin     int     `yaml:"debris_min"`
	DebrisMax     int     `yaml:"debris_max"`
	InitialRocks  int     `yaml:"initial_rocks"`
}

// ShakeConfig tunes the screen shake on explosions.
type ShakeConfig struct {
	Power float64 `yaml:"power"` // initial shake amplitude in cells
	Decay float64 `yaml:"decay"` // per-tick amplitude multiplier
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedUp    int     `yaml:"speed_up"`    // Ticks shaved off the move interval at max difficulty
	NitroBoost float64 `yaml:"nitro_boost"` // Added explosive-food probability at max difficulty
	FuseCut    float64 `yaml:"fuse_cut"`    // Seconds removed from fuse bounds at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
