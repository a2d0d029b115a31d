package caterpillar

import "github.com/wyrm-arcade/wyrm/internal/sim"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateBursting    GameStateType = "bursting"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Best      int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       sim.Direction
	FoodX     int
	FoodY     int
	Particles int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.tooSmall || g.world == nil {
		return Snapshot{Tick: g.tick, State: StatePausedSmall}
	}

	state := StatePlaying
	switch {
	case g.world.Phase() == sim.GameOver:
		state = StateGameOver
	case g.world.Phase() == sim.Paused:
		state = StatePaused
	case len(g.particles) > 0:
		state = StateBursting
	}

	head := g.world.Head()
	foodX, foodY := -1, -1
	if food, ok := g.world.Food(); ok {
		foodX, foodY = food.Cell.X, food.Cell.Y
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.world.Score(),
		Best:      g.world.Best(),
		SnakeLen:  g.world.Len(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.world.Direction(),
		FoodX:     foodX,
		FoodY:     foodY,
		Particles: len(g.particles),
		State:     state,
	}
}
