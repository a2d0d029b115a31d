package caterpillar

import (
	"math"

	"github.com/wyrm-arcade/wyrm/internal/core"
	"github.com/wyrm-arcade/wyrm/internal/sim"
)

// particle is one fleck of apple flying out of a bite. Positions are
// continuous grid coordinates; the renderer rounds them to cells.
type particle struct {
	x, y   float64
	vx, vy float64 // cells per second
	life   float64 // seconds remaining
	ch     rune
	color  core.Color
}

var (
	burstRunes  = []rune{'*', '+', '.', 'o'}
	burstColors = []core.Color{core.ColorRed, core.ColorBrightRed, core.ColorYellow, core.ColorOrange}
)

const burstGravity = 14.0 // cells per second squared

// spawnBurst scatters particles radially from the bitten apple cell.
func (g *Game) spawnBurst(at sim.Cell) {
	n := g.cfg.Burst.Particles
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := 5.0 + g.rng.Float64()*9.0
		g.particles = append(g.particles, particle{
			x:     float64(at.X) + 0.5,
			y:     float64(at.Y) + 0.5,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			life:  g.cfg.Burst.Life * (0.5 + 0.5*g.rng.Float64()),
			ch:    burstRunes[g.rng.Intn(len(burstRunes))],
			color: burstColors[g.rng.Intn(len(burstColors))],
		})
	}
}

// updateParticles integrates motion and drops the dead ones. Particles
// leaving the playfield die immediately so the burst never spills over
// the border.
func (g *Game) updateParticles() {
	live := g.particles[:0]
	for _, p := range g.particles {
		p.life -= g.dt
		if p.life <= 0 {
			continue
		}
		p.vy += burstGravity * g.dt
		p.x += p.vx * g.dt
		p.y += p.vy * g.dt
		if p.x < 0 || p.x >= float64(g.gridW) || p.y < 0 || p.y >= float64(g.gridH) {
			continue
		}
		live = append(live, p)
	}
	g.particles = live
}

// renderParticles draws the live flecks over the playfield.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles {
		x := g.offsetX + int(p.x)
		y := g.offsetY + int(p.y)
		dst.SetColored(x, y, p.ch, p.color)
	}
}
