package sim

import "math/rand"

// Phase is the lifecycle state of a world.
type Phase int

const (
	Running Phase = iota
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EatEvent records a food consumption for renderer decoration (bite
// particles and the like). Wrappers drain these once per frame.
type EatEvent struct {
	Cell Cell
	Kind FoodKind
}

// World is one simulation instance. It is single-writer: Advance and
// UpdateTimers run on two cadences (discrete movement tick, continuous
// frame dt) but must be invoked sequentially from one goroutine.
type World struct {
	cfg Config
	rng *rand.Rand

	body    *Body
	dir     Direction
	pending Direction
	grow    int

	rocks map[Cell]struct{}
	food  *Food

	score int
	best  int
	phase Phase

	explosions []Explosion
	blasts     int
	eats       []EatEvent
}

// NewWorld creates a running world from the config, drawing all initial
// placement from the supplied RNG. The RNG is the world's sole source of
// randomness so a fixed seed replays the exact same game.
func NewWorld(cfg Config, rng *rand.Rand) *World {
	w := &World{cfg: cfg, rng: rng}
	w.start()
	return w
}

// start builds the initial state: centered snake heading right, starting
// rocks, first food.
func (w *World) start() {
	w.body = NewBody(w.cfg.Width * w.cfg.Height / 4)
	cx := w.cfg.Width / 3
	cy := w.cfg.Height / 2
	for i := 0; i < w.cfg.InitialLength; i++ {
		// head at (cx, cy), tail trailing left
		w.body.PushFront(Cell{X: cx - w.cfg.InitialLength + 1 + i, Y: cy})
	}
	w.dir = DirRight
	w.pending = DirRight
	w.grow = 0
	w.score = 0
	w.phase = Running
	w.rocks = make(map[Cell]struct{})
	w.food = nil
	w.explosions = nil
	w.blasts = 0
	w.eats = nil

	for i := 0; i < w.cfg.InitialRocks; i++ {
		free := w.emptyCells()
		if len(free) == 0 {
			break
		}
		w.rocks[free[w.rng.Intn(len(free))]] = struct{}{}
	}
	w.SpawnFood(false)
}

// Restart rebuilds the world from initial conditions. Only the best
// score survives the reset; the RNG keeps its sequence.
func (w *World) Restart() {
	if w.score > w.best {
		w.best = w.score
	}
	w.start()
}

// SetDirection buffers a direction change for the next Advance.
// A request that exactly reverses the current heading is ignored, and
// multiple requests within one tick resolve last-write-wins.
func (w *World) SetDirection(d Direction) {
	if w.phase != Running {
		return
	}
	if d == w.dir.Opposite() {
		return
	}
	w.pending = d
}

// TogglePause flips Running <-> Paused. No-op after game over.
func (w *World) TogglePause() {
	switch w.phase {
	case Running:
		w.phase = Paused
	case Paused:
		w.phase = Running
	}
}

// Advance executes one movement tick: apply the buffered direction, move
// the head, resolve collisions, then food and tail. Outside Running it
// leaves the world untouched.
func (w *World) Advance() {
	if w.phase != Running || w.body.Len() == 0 {
		return
	}

	w.dir = w.pending
	next := w.body.Head().Shift(w.dir)

	if !w.inBounds(next) {
		w.die()
		return
	}
	if w.hitsSelf(next) {
		w.die()
		return
	}
	if _, rock := w.rocks[next]; rock {
		w.die()
		return
	}

	w.body.PushFront(next)

	if w.food != nil && w.food.Cell == next {
		eaten := *w.food
		w.food = nil
		w.score += w.cfg.reward(eaten.Kind)
		w.grow += w.cfg.growth(eaten.Kind)
		w.eats = append(w.eats, EatEvent{Cell: eaten.Cell, Kind: eaten.Kind})
		if eaten.Kind == FoodNitro {
			w.triggerExplosion(eaten.Cell)
		}
		if w.cfg.AutoRespawn {
			w.SpawnFood(false)
		}
	}

	// Tail resolves after the food check so growth from this very bite
	// lengthens the body on the same tick.
	if w.grow > 0 {
		w.grow--
	} else {
		w.body.PopBack()
	}
}

// hitsSelf tests the prospective head against the body, excluding the
// tail cell when it is about to be vacated (not growing this tick), so a
// snake may follow its own tail on a non-growing move.
func (w *World) hitsSelf(next Cell) bool {
	if !w.body.Contains(next) {
		return false
	}
	if w.grow == 0 && next == w.body.Tail() {
		return false
	}
	return true
}

// UpdateTimers advances the continuous clocks by dt seconds: explosion
// event aging always (so rings finish fading even after death), the food
// fuse only while Running. A fuse reaching zero detonates the food where
// it stands and spawns a plain replacement as a reprieve.
func (w *World) UpdateTimers(dt float64) {
	if w.phase == Paused {
		return
	}

	live := w.explosions[:0]
	for _, e := range w.explosions {
		e.Elapsed += dt
		if !e.Expired() {
			live = append(live, e)
		}
	}
	w.explosions = live

	if w.phase != Running {
		return
	}
	if w.food == nil || w.food.Kind != FoodNitro {
		return
	}
	w.food.Fuse -= dt
	if w.food.Fuse > 0 {
		return
	}
	center := w.food.Cell
	w.food = nil
	w.triggerExplosion(center)
	w.SpawnFood(true)
}

// die moves the world to GameOver and folds the score into best.
func (w *World) die() {
	w.phase = GameOver
	if w.score > w.best {
		w.best = w.score
	}
}

func (w *World) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < w.cfg.Width && c.Y >= 0 && c.Y < w.cfg.Height
}

// --- Accessors (read-only views for wrappers, renderers and tests) ---

// Config returns the world's tuning.
func (w *World) Config() Config {
	return w.cfg
}

// Phase returns the lifecycle state.
func (w *World) Phase() Phase {
	return w.phase
}

// Alive reports whether the snake has not yet died.
func (w *World) Alive() bool {
	return w.phase != GameOver
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Best returns the best score seen across restarts of this world.
func (w *World) Best() int {
	return w.best
}

// Direction returns the heading applied on the last Advance.
func (w *World) Direction() Direction {
	return w.dir
}

// GrowPending returns the grow-counter (segments still to be added).
func (w *World) GrowPending() int {
	return w.grow
}

// Body returns the segments head first.
func (w *World) Body() []Cell {
	return w.body.Cells()
}

// Head returns the head cell.
func (w *World) Head() Cell {
	return w.body.Head()
}

// Len returns the body length.
func (w *World) Len() int {
	return w.body.Len()
}

// Occupies reports whether the body covers the cell.
func (w *World) Occupies(c Cell) bool {
	return w.body.Contains(c)
}

// Food returns the live food, if any.
func (w *World) Food() (Food, bool) {
	if w.food == nil {
		return Food{}, false
	}
	return *w.food, true
}

// RockAt reports whether a rock occupies the cell.
func (w *World) RockAt(c Cell) bool {
	_, ok := w.rocks[c]
	return ok
}

// Rocks returns the obstacle cells, unordered.
func (w *World) Rocks() []Cell {
	out := make([]Cell, 0, len(w.rocks))
	for c := range w.rocks {
		out = append(out, c)
	}
	return out
}

// Tune adjusts the explosive-food pressure mid-game. The difficulty
// layer raises these as the score climbs; the values apply to
// subsequent spawns only.
func (w *World) Tune(nitroChance, fuseMin, fuseMax float64) {
	w.cfg.NitroChance = nitroChance
	w.cfg.FuseMin = fuseMin
	w.cfg.FuseMax = fuseMax
}

// Blasts returns the cumulative explosion count since the last restart.
// Renderers compare it across frames to kick off shake effects.
func (w *World) Blasts() int {
	return w.blasts
}

// Explosions returns the currently animating explosion events.
func (w *World) Explosions() []Explosion {
	out := make([]Explosion, len(w.explosions))
	copy(out, w.explosions)
	return out
}

// DrainEats returns and clears the food-consumption events accumulated
// since the last call.
func (w *World) DrainEats() []EatEvent {
	out := w.eats
	w.eats = nil
	return out
}
