package sim

import "math"

// ExplosionDuration is how long an explosion event stays visible, in
// seconds. The renderer animates an expanding ring over this window;
// the debris and lethality are applied instantaneously at trigger time.
const ExplosionDuration = 0.45

// Explosion is a renderer-facing event: an explosion happened at Center
// with nominal Radius, Elapsed seconds ago. The world ages and prunes
// these in UpdateTimers; they never affect the grid after trigger.
type Explosion struct {
	Center  Cell
	Radius  float64
	Elapsed float64
}

// Expired reports whether the event's animation window has passed.
func (e Explosion) Expired() bool {
	return e.Elapsed >= ExplosionDuration
}

// triggerExplosion applies a blast centered on the given cell: it records
// the event, scatters debris rocks on a ring around the center, and kills
// the snake if its head is within the lethal radius — whether the blast
// came from eating the food or from its fuse running out.
func (w *World) triggerExplosion(center Cell) {
	w.explosions = append(w.explosions, Explosion{Center: center, Radius: w.cfg.BlastRadius})
	w.blasts++

	span := w.cfg.DebrisMax - w.cfg.DebrisMin
	n := w.cfg.DebrisMin
	if span > 0 {
		n += w.rng.Intn(span + 1)
	}

	ring := w.ringCells(center, w.cfg.BlastRadius)
	w.rng.Shuffle(len(ring), func(i, j int) {
		ring[i], ring[j] = ring[j], ring[i]
	})
	if n > len(ring) {
		n = len(ring)
	}
	for _, c := range ring[:n] {
		if w.body.Contains(c) {
			continue
		}
		if _, taken := w.rocks[c]; taken {
			continue
		}
		w.rocks[c] = struct{}{}
	}

	if w.body.Len() > 0 && center.Dist(w.body.Head()) <= w.cfg.BlastRadius {
		w.die()
	}
}

// ringCells returns the in-bounds cells whose squared distance from the
// center falls in the debris annulus [0.6·r², 1.3·r²].
func (w *World) ringCells(center Cell, radius float64) []Cell {
	reach := int(math.Ceil(radius)) + 1
	r2 := radius * radius
	lo, hi := 0.6*r2, 1.3*r2

	var cells []Cell
	for y := center.Y - reach; y <= center.Y+reach; y++ {
		for x := center.X - reach; x <= center.X+reach; x++ {
			c := Cell{X: x, Y: y}
			if !w.inBounds(c) {
				continue
			}
			d2 := float64(c.Dist2(center))
			if d2 >= lo && d2 <= hi {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
