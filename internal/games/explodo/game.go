// Package explodo implements the Explodo game: snake rules where part
// of the food is explosive. Explosive food detonates when eaten or when
// its fuse runs out, killing anything close and littering the field
// with debris.
package explodo

import (
	"fmt"
	"math/rand"

	"github.com/wyrm-arcade/wyrm/internal/config"
	"github.com/wyrm-arcade/wyrm/internal/core"
	"github.com/wyrm-arcade/wyrm/internal/registry"
	"github.com/wyrm-arcade/wyrm/internal/sim"
)

// Game implements the Explodo game.
type Game struct {
	cfg  config.ExplodoConfig
	diff *config.DifficultyManager

	rng   *rand.Rand
	world *sim.World
	tick  uint64
	dt    float64

	moveEveryTicks int
	moveTicker     int

	// Screen shake, driven by blast events.
	shake      float64
	shakeX     int
	shakeY     int
	seenBlasts int

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

// New creates a new Explodo game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("explodo", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "explodo"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Explodo"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadExplodo(configPath)
	if err != nil {
		loaded = config.DefaultExplodoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyExplodoPreset(&loaded, config.DifficultyPreset(difficultyPreset))
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
	g.shake = 0
	g.shakeX, g.shakeY = 0, 0
	g.seenBlasts = 0

	g.layoutGrid()
	if g.tooSmall {
		return
	}

	g.world = sim.NewWorld(g.simConfig(), g.rng)
}

// simConfig maps the YAML rules onto the simulation tuning.
func (g *Game) simConfig() sim.Config {
	r := g.cfg.Rules
	return sim.Config{
		Width:         g.gridW,
		Height:        g.gridH,
		InitialLength: core.Max(1, r.InitialLength),
		LeafReward:    r.LeafReward,
		LeafGrowth:    r.LeafGrowth,
		NitroEnabled:  true,
		NitroChance:   r.NitroChance,
		NitroReward:   r.NitroReward,
		NitroGrowth:   r.NitroGrowth,
		FuseMin:       r.FuseMin,
		FuseMax:       r.FuseMax,
		BlastRadius:   r.BlastRadius,
		DebrisMin:     r.DebrisMin,
		DebrisMax:     r.DebrisMax,
		InitialRocks:  r.InitialRocks,
		AutoRespawn:   true,
	}
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

	// The blast ring needs room to draw, so the floor is higher than in
	// the plain games.
	if g.gridW < 16 || g.gridH < 8 {
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
		g.shake = 0
		g.shakeX, g.shakeY = 0, 0
		g.seenBlasts = 0
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	g.processInput(input)

	// Difficulty turns the screws as the score climbs: more explosive
	// food, shorter fuses, faster crawl.
	score, ticks := g.world.Score(), int(g.tick)
	fuseMin, fuseMax := g.diff.FuseBounds(g.cfg.Rules.FuseMin, g.cfg.Rules.FuseMax, score, ticks)
	g.world.Tune(g.diff.NitroChance(g.cfg.Rules.NitroChance, score, ticks), fuseMin, fuseMax)

	interval := g.diff.MoveInterval(g.moveEveryTicks, score, ticks)
	g.moveTicker++
	if g.moveTicker >= interval {
		g.moveTicker = 0
		g.world.Advance()
	}
	g.world.UpdateTimers(g.dt)
	g.world.DrainEats()

	g.updateShake()

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

	// Shake displaces the whole playfield, border included.
	ox := g.offsetX + g.shakeX
	oy := g.offsetY + g.shakeY

	dst.DrawBox(core.NewRect(ox-1, oy-1, g.gridW+2, g.gridH+2))
	g.renderWorld(dst, ox, oy)
	g.renderExplosions(dst, ox, oy)

	switch {
	case g.world.Phase() == sim.GameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Best: %d — R to restart", g.world.Score(), g.world.Best()))
	case g.world.Phase() == sim.Paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the score line and, when explosive food is live, its
// fuse bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score, best := 0, 0
	if g.world != nil {
		score, best = g.world.Score(), g.world.Best()
	}
	hud := fmt.Sprintf(" Explodo — Score: %d  Best: %d", score, best)
	dst.DrawText(0, 0, hud)

	if g.world != nil {
		if food, ok := g.world.Food(); ok && food.Kind == sim.FoodNitro {
			g.renderFuseBar(dst, len(hud)+2, food)
		}
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderFuseBar draws a ten-segment countdown bar for the live charge.
func (g *Game) renderFuseBar(dst *core.Screen, x int, food sim.Food) {
	const segments = 10
	ratio := food.FuseRatio()
	filled := int(ratio * segments)

	color := core.ColorGreen
	switch {
	case ratio < 0.25:
		color = core.ColorBrightRed
	case ratio < 0.5:
		color = core.ColorYellow
	}

	dst.DrawText(x, 0, "Fuse [")
	for i := 0; i < segments; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		dst.SetColored(x+6+i, 0, ch, color)
	}
	dst.Set(x+6+segments, 0, ']')
}

// renderWorld draws rocks, snake and food.
func (g *Game) renderWorld(dst *core.Screen, ox, oy int) {
	for _, rock := range g.world.Rocks() {
		dst.SetColored(ox+rock.X, oy+rock.Y, '▒', core.ColorGray)
	}

	for i, seg := range g.world.Body() {
		ch := 'o'
		if i == 0 {
			ch = 'O'
		}
		dst.SetColored(ox+seg.X, oy+seg.Y, ch, core.ColorGreen)
	}

	if food, ok := g.world.Food(); ok {
		x, y := ox+food.Cell.X, oy+food.Cell.Y
		if food.Kind == sim.FoodNitro {
			// The charge blinks faster as the fuse burns down.
			ch := '@'
			if food.FuseRatio() < 0.25 && (g.tick/6)%2 == 0 {
				ch = '!'
			}
			dst.SetColored(x, y, ch, core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, '*', core.ColorBrightGreen)
		}
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
