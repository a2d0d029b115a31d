package sim

// FoodKind distinguishes plain food from timed-explosive food.
type FoodKind int

const (
	FoodLeaf FoodKind = iota
	FoodNitro
)

func (k FoodKind) String() string {
	if k == FoodNitro {
		return "nitro"
	}
	return "leaf"
}

// Food is the single active food item. Fuse fields are meaningful only
// for FoodNitro; FuseTotal is kept so the renderer can draw a ratio bar.
type Food struct {
	Cell      Cell
	Kind      FoodKind
	Fuse      float64 // seconds remaining
	FuseTotal float64 // seconds at spawn
}

// FuseRatio returns remaining/total in [0, 1], 0 for non-nitro food.
func (f Food) FuseRatio() float64 {
	if f.Kind != FoodNitro || f.FuseTotal <= 0 {
		return 0
	}
	r := f.Fuse / f.FuseTotal
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// SpawnFood places a new food item on a uniformly random unoccupied cell
// (not body, not rock, not the existing food). It is a no-op if a food is
// already live or if no free cell exists — an intentionally silent
// outcome, not an error. With forceLeaf the new food is always plain;
// otherwise it is explosive with the configured probability, its fuse
// drawn uniformly from [FuseMin, FuseMax].
func (w *World) SpawnFood(forceLeaf bool) {
	if w.food != nil {
		return
	}

	free := w.emptyCells()
	if len(free) == 0 {
		return
	}
	pos := free[w.rng.Intn(len(free))]

	if !forceLeaf && w.cfg.NitroEnabled && w.rng.Float64() < w.cfg.NitroChance {
		fuse := w.cfg.FuseMin + w.rng.Float64()*(w.cfg.FuseMax-w.cfg.FuseMin)
		w.food = &Food{Cell: pos, Kind: FoodNitro, Fuse: fuse, FuseTotal: fuse}
		return
	}
	w.food = &Food{Cell: pos, Kind: FoodLeaf}
}

// emptyCells collects every cell not covered by the body, a rock, or the
// live food, scanning in row-major order so the choice is deterministic
// for a fixed RNG.
func (w *World) emptyCells() []Cell {
	free := make([]Cell, 0, w.cfg.Width*w.cfg.Height)
	for y := 0; y < w.cfg.Height; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			c := Cell{X: x, Y: y}
			if w.body.Contains(c) {
				continue
			}
			if _, rock := w.rocks[c]; rock {
				continue
			}
			if w.food != nil && w.food.Cell == c {
				continue
			}
			free = append(free, c)
		}
	}
	return free
}
