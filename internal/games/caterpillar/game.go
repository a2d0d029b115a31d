// Package caterpillar implements the caterpillar game: classic snake
// movement with a juicy particle burst on every apple bite. The crawl
// holds still while the burst plays out, and the next apple appears only
// once the last particle has faded.
package caterpillar

import (
	"fmt"
	"math/rand"

	"github.com/wyrm-arcade/wyrm/internal/config"
	"github.com/wyrm-arcade/wyrm/internal/core"
	"github.com/wyrm-arcade/wyrm/internal/registry"
	"github.com/wyrm-arcade/wyrm/internal/sim"
)

// Game implements the Caterpillar game.
type Game struct {
	cfg  config.CaterpillarConfig
	diff *config.DifficultyManager

	rng   *rand.Rand
	world *sim.World
	tick  uint64
	dt    float64

	moveEveryTicks int
	moveTicker     int

	particles    []particle
	awaitRespawn bool

	gridW, gridH int
	offsetX      int
	offsetY      int
	hudHeight    int

	screenW int
	screenH int

	tooSmall bool
}

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

// New creates a new Caterpillar game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("caterpillar", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "caterpillar"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Caterpillar"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadCaterpillar(configPath)
	if err != nil {
		loaded = config.DefaultCaterpillarConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCaterpillarPreset(&loaded, config.DifficultyPreset(difficultyPreset))
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
		g.moveEveryTicks = 8
	}
	g.moveTicker = 0
	g.particles = nil
	g.awaitRespawn = false

	g.layoutGrid()
	if g.tooSmall {
		return
	}

	rules := sim.ClassicConfig(g.gridW, g.gridH)
	rules.LeafReward = g.cfg.Rules.LeafReward
	rules.LeafGrowth = g.cfg.Rules.LeafGrowth
	// The wrapper respawns food itself, after the bite burst finishes.
	rules.AutoRespawn = false
	g.world = sim.NewWorld(rules, g.rng)
}

func (g *Game) layoutGrid() {
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
		g.particles = nil
		g.awaitRespawn = false
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.world.TogglePause()
	}
	if g.world.Phase() == sim.Paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	// The crawl freezes while a bite burst is on screen.
	if len(g.particles) == 0 {
		interval := g.diff.MoveInterval(g.moveEveryTicks, g.world.Score(), int(g.tick))
		g.moveTicker++
		if g.moveTicker >= interval {
			g.moveTicker = 0
			g.world.Advance()
		}
	}
	g.world.UpdateTimers(g.dt)

	for _, eat := range g.world.DrainEats() {
		g.spawnBurst(eat.Cell)
		g.awaitRespawn = true
	}

	g.updateParticles()
	if g.awaitRespawn && len(g.particles) == 0 {
		g.awaitRespawn = false
		g.world.SpawnFood(false)
	}

	return core.StepResult{State: g.State()}
}

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
	g.renderParticles(dst)

	switch {
	case g.world.Phase() == sim.GameOver:
		renderOverlay(dst, "Game Over", "Press R to restart")
	case g.world.Phase() == sim.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	score, best, length := 0, 0, 0
	if g.world != nil {
		score, best, length = g.world.Score(), g.world.Best(), g.world.Len()
	}
	hud := fmt.Sprintf(" Caterpillar — Score: %d  Best: %d  Length: %d", score, best, length)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWorld draws the caterpillar with striped segments and the apple.
func (g *Game) renderWorld(dst *core.Screen) {
	for i, seg := range g.world.Body() {
		x, y := g.offsetX+seg.X, g.offsetY+seg.Y
		if i == 0 {
			dst.SetColored(x, y, 'O', core.ColorBrightGreen)
			continue
		}
		color := core.ColorGreen
		if i%2 == 0 {
			color = core.ColorYellow
		}
		dst.SetColored(x, y, 'o', color)
	}
	if food, ok := g.world.Food(); ok {
		dst.SetColored(g.offsetX+food.Cell.X, g.offsetY+food.Cell.Y, '@', core.ColorRed)
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
