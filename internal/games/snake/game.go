// Package snake implements the classic grid snake game: one plain food
// on the board, eat to grow, die on walls and on yourself.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/wyrm-arcade/wyrm/internal/config"
	"github.com/wyrm-arcade/wyrm/internal/core"
	"github.com/wyrm-arcade/wyrm/internal/registry"
	"github.com/wyrm-arcade/wyrm/internal/sim"
)

// Game implements the classic Snake game on top of the shared grid
// simulation.
type Game struct {
	cfg  config.SnakeConfig
	diff *config.DifficultyManager

	rng   *rand.Rand
	world *sim.World
	tick  uint64
	dt    float64

	moveEveryTicks int
	moveTicker     int

	// Playfield placement
	gridW, gridH int
	offsetX      int
	offsetY      int
	hudHeight    int

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
}

// Package-level variables for config/difficulty, set by the CLI layer
// before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		loaded = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded
	g.diff = config.NewDifficultyManager(loaded.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.dt = cfg.Dt()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.moveEveryTicks = g.cfg.Speed.MoveEveryTicks
	if g.moveEveryTicks <= 0 {
		g.moveEveryTicks = 6
	}
	g.moveTicker = 0

	g.layoutGrid()
	if g.tooSmall {
		return
	}

	rules := sim.ClassicConfig(g.gridW, g.gridH)
	rules.LeafReward = g.cfg.Rules.LeafReward
	rules.LeafGrowth = g.cfg.Rules.LeafGrowth
	g.world = sim.NewWorld(rules, g.rng)
}

// layoutGrid derives the playfield from the screen and centers it.
func (g *Game) layoutGrid() {
	// Border takes one cell on each side, HUD the top rows.
	availW := g.screenW - 2
	availH := g.screenH - g.hudHeight - 2

	g.gridW = availW
	g.gridH = availH
	if g.cfg.Grid.Width > 0 && g.cfg.Grid.Width < g.gridW {
		g.gridW = g.cfg.Grid.Width
	}
	if g.cfg.Grid.Height > 0 && g.cfg.Grid.Height < g.gridH {
		g.gridH = g.cfg.Grid.Height
	}

	if g.gridW < 10 || g.gridH < 6 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (g.screenW - g.gridW) / 2
	g.offsetY = g.hudHeight + 1
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.world.Phase() == sim.GameOver {
		g.world.Restart()
		g.moveTicker = 0
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	g.processInput(input)

	interval := g.diff.MoveInterval(g.moveEveryTicks, g.world.Score(), int(g.tick))
	g.moveTicker++
	if g.moveTicker >= interval {
		g.moveTicker = 0
		g.world.Advance()
	}
	g.world.UpdateTimers(g.dt)

	return core.StepResult{State: g.State()}
}

// processInput buffers direction changes for the next move.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.world.SetDirection(sim.DirUp)
	case input.Has(core.ActionDown):
		g.world.SetDirection(sim.DirDown)
	case input.Has(core.ActionLeft):
		g.world.SetDirection(sim.DirLeft)
	case input.Has(core.ActionRight):
		g.world.SetDirection(sim.DirRight)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.gridW+2, g.gridH+2))
	g.renderWorld(dst)

	switch {
	case g.world.Phase() == sim.GameOver:
		renderOverlay(dst, "Game Over", "Press R to restart")
	case g.world.Phase() == sim.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score, best := 0, 0
	if g.world != nil {
		score, best = g.world.Score(), g.world.Best()
	}
	hud := fmt.Sprintf(" Snake — Score: %d  Best: %d", score, best)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWorld draws the snake and the food.
func (g *Game) renderWorld(dst *core.Screen) {
	for i, seg := range g.world.Body() {
		ch := 'o'
		if i == 0 {
			ch = 'O'
		}
		dst.SetColored(g.offsetX+seg.X, g.offsetY+seg.Y, ch, core.ColorGreen)
	}
	if food, ok := g.world.Food(); ok {
		dst.SetColored(g.offsetX+food.Cell.X, g.offsetY+food.Cell.Y, '*', core.ColorRed)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Phase() == sim.GameOver,
		Paused:   g.world.Phase() == sim.Paused,
	}
}

// renderOverlay draws a centered two-line message in a box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
