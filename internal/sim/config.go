package sim

// Config is the per-instance tuning for a simulation. Multiple worlds
// with independent configs can coexist; nothing in the package is
// global.
type Config struct {
	Width  int // grid width in cells
	Height int // grid height in cells

	InitialLength int // snake length at spawn and after restart

	LeafReward int // score per plain food
	LeafGrowth int // grow-counter increase per plain food

	NitroEnabled bool    // whether explosive food can spawn at all
	NitroChance  float64 // probability a spawned food is explosive
	NitroReward  int     // score per explosive food
	NitroGrowth  int     // grow-counter increase per explosive food
	FuseMin      float64 // seconds, lower bound of the fuse draw
	FuseMax      float64 // seconds, upper bound of the fuse draw

	BlastRadius float64 // Euclidean lethal radius in grid units
	DebrisMin   int     // minimum rocks an explosion scatters
	DebrisMax   int     // maximum rocks an explosion scatters

	InitialRocks int // rocks placed at game start

	// AutoRespawn controls whether a replacement food spawns immediately
	// when one is consumed. The caterpillar variant turns this off and
	// calls SpawnFood itself once its bite animation finishes.
	AutoRespawn bool
}

// ClassicConfig returns the plain snake rules: single-cell start, leaf
// food only, empty field.
func ClassicConfig(width, height int) Config {
	return Config{
		Width:         width,
		Height:        height,
		InitialLength: 1,
		LeafReward:    10,
		LeafGrowth:    1,
		AutoRespawn:   true,
	}
}

// ExplodoConfig returns the embellished rules: longer start, starting
// rocks, and fused explosive food.
func ExplodoConfig(width, height int) Config {
	return Config{
		Width:         width,
		Height:        height,
		InitialLength: 5,
		LeafReward:    10,
		LeafGrowth:    1,
		NitroEnabled:  true,
		NitroChance:   0.40,
		NitroReward:   25,
		NitroGrowth:   2,
		FuseMin:       6.0,
		FuseMax:       10.0,
		BlastRadius:   2.4,
		DebrisMin:     6,
		DebrisMax:     12,
		InitialRocks:  12,
		AutoRespawn:   true,
	}
}

// reward returns the score value for a food kind.
func (c Config) reward(k FoodKind) int {
	if k == FoodNitro {
		return c.NitroReward
	}
	return c.LeafReward
}

// growth returns the grow-counter increase for a food kind.
func (c Config) growth(k FoodKind) int {
	if k == FoodNitro {
		return c.NitroGrowth
	}
	return c.LeafGrowth
}
