package explodo

import (
	"math"

	"github.com/wyrm-arcade/wyrm/internal/core"
	"github.com/wyrm-arcade/wyrm/internal/sim"
)

// updateShake decays the shake amplitude and rolls this tick's jitter.
// New blasts re-arm the shake at full power. Jitter is drawn from the
// game RNG during Step, never in Render, so repaints stay pure.
func (g *Game) updateShake() {
	if blasts := g.world.Blasts(); blasts > g.seenBlasts {
		g.seenBlasts = blasts
		g.shake = g.cfg.Shake.Power
	}

	g.shake *= g.cfg.Shake.Decay
	if g.shake < 0.3 {
		g.shake = 0
		g.shakeX, g.shakeY = 0, 0
		return
	}

	amp := 1
	if g.shake > 4 {
		amp = 2
	}
	g.shakeX = g.rng.Intn(2*amp+1) - amp
	g.shakeY = g.rng.Intn(2*amp+1) - amp
}

// renderExplosions draws an expanding, fading ring for each live blast.
func (g *Game) renderExplosions(dst *core.Screen, ox, oy int) {
	for _, e := range g.world.Explosions() {
		progress := core.ClampF(e.Elapsed/sim.ExplosionDuration, 0, 1)
		ringR := progress * (e.Radius + 2.0)

		ch := '#'
		color := core.ColorBrightYellow
		switch {
		case progress > 0.66:
			ch = '.'
			color = core.ColorGray
		case progress > 0.33:
			ch = '*'
			color = core.ColorOrange
		}

		reach := int(math.Ceil(ringR)) + 1
		for dy := -reach; dy <= reach; dy++ {
			for dx := -reach; dx <= reach; dx++ {
				x, y := e.Center.X+dx, e.Center.Y+dy
				if x < 0 || x >= g.gridW || y < 0 || y >= g.gridH {
					continue
				}
				d := math.Hypot(float64(dx), float64(dy))
				if math.Abs(d-ringR) <= 0.6 {
					dst.SetColored(ox+x, oy+y, ch, color)
				}
			}
		}
	}
}
