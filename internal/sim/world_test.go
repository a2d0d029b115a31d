package sim

import (
	"math/rand"
	"testing"
)

func testWorld(cfg Config) *World {
	return NewWorld(cfg, rand.New(rand.NewSource(1)))
}

// placeBody overwrites the snake with the given cells, head first.
func placeBody(w *World, cells ...Cell) {
	w.body = NewBody(len(cells))
	for i := len(cells) - 1; i >= 0; i-- {
		w.body.PushFront(cells[i])
	}
}

func TestAdvanceMovesHead(t *testing.T) {
	w := testWorld(ClassicConfig(10, 10))
	placeBody(w, Cell{X: 5, Y: 5})
	w.food = nil

	w.Advance()
	if got := w.Head(); got != (Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, want (6,5)", got)
	}
	if w.Len() != 1 {
		t.Errorf("len = %d, want 1 (no food eaten)", w.Len())
	}
}

func TestEatGrowsSameTick(t *testing.T) {
	w := testWorld(ClassicConfig(10, 10))
	placeBody(w, Cell{X: 5, Y: 5})
	w.score = 0
	w.food = &Food{Cell: Cell{X: 6, Y: 5}, Kind: FoodLeaf}

	w.Advance()

	got := w.Body()
	want := []Cell{{X: 6, Y: 5}, {X: 5, Y: 5}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("body = %v, want %v", got, want)
	}
	if w.Score() != 10 {
		t.Errorf("score = %d, want 10", w.Score())
	}
	if w.GrowPending() != 0 {
		t.Errorf("grow = %d, want 0 (spent on this tick's tail)", w.GrowPending())
	}
	if w.Phase() != Running {
		t.Errorf("phase = %v, want running", w.Phase())
	}
}

func TestWallCollision(t *testing.T) {
	w := testWorld(ClassicConfig(8, 8))
	placeBody(w, Cell{X: 7, Y: 4})
	w.food = nil
	w.score = 30

	w.Advance()
	if w.Phase() != GameOver {
		t.Fatalf("phase = %v, want game over", w.Phase())
	}
	// The snake never leaves the grid: the move that would cross the
	// boundary kills without displacing the body.
	if got := w.Head(); got != (Cell{X: 7, Y: 4}) {
		t.Errorf("head = %v, want (7,4) unchanged", got)
	}
	if w.Best() != 30 {
		t.Errorf("best = %d, want 30", w.Best())
	}
}

func TestSelfCollision(t *testing.T) {
	w := testWorld(ClassicConfig(10, 10))
	// Head at (4,4) moving right into (5,4), which the body occupies and
	// which is not the tail.
	placeBody(w,
		Cell{X: 4, Y: 4},
		Cell{X: 4, Y: 5},
		Cell{X: 5, Y: 5},
		Cell{X: 5, Y: 4},
		Cell{X: 6, Y: 4},
	)
	w.food = nil

	w.Advance()
	if w.Phase() != GameOver {
		t.Errorf("phase = %v, want game over", w.Phase())
	}
}

func TestTailFollowAllowed(t *testing.T) {
	// A 2x2 loop: the head moves into the tail cell, which vacates on
	// the same tick, so the move is legal.
	w := testWorld(ClassicConfig(10, 10))
	placeBody(w,
		Cell{X: 4, Y: 4},
		Cell{X: 4, Y: 5},
		Cell{X: 5, Y: 5},
		Cell{X: 5, Y: 4},
	)
	w.food = nil
	w.dir = DirRight
	w.pending = DirRight

	w.Advance()
	if w.Phase() != Running {
		t.Fatalf("phase = %v, want running (tail cell vacates)", w.Phase())
	}
	if got := w.Head(); got != (Cell{X: 5, Y: 4}) {
		t.Errorf("head = %v, want (5,4)", got)
	}
}

func TestTailCellLethalWhenGrowing(t *testing.T) {
	// Same loop, but a pending growth means the tail does not vacate.
	w := testWorld(ClassicConfig(10, 10))
	placeBody(w,
		Cell{X: 4, Y: 4},
		Cell{X: 4, Y: 5},
		Cell{X: 5, Y: 5},
		Cell{X: 5, Y: 4},
	)
	w.food = nil
	w.grow = 1
	w.dir = DirRight
	w.pending = DirRight

	w.Advance()
	if w.Phase() != GameOver {
		t.Errorf("phase = %v, want game over (tail stays put while growing)", w.Phase())
	}
}

func TestRockCollision(t *testing.T) {
	w := testWorld(ClassicConfig(10, 10))
	placeBody(w, Cell{X: 5, Y: 5})
	w.food = nil
	w.rocks[Cell{X: 6, Y: 5}] = struct{}{}

	w.Advance()
	if w.Phase() != GameOver {
		t.Errorf("phase = %v, want game over", w.Phase())
	}
}

func TestReversalRejected(t *testing.T) {
	cases := []struct {
		heading Direction
		request Direction
	}{
		{DirRight, DirLeft},
		{DirLeft, DirRight},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}
	for _, tc := range cases {
		w := testWorld(ClassicConfig(20, 20))
		placeBody(w, Cell{X: 10, Y: 10})
		w.food = nil
		w.dir = tc.heading
		w.pending = tc.heading

		w.SetDirection(tc.request)
		if w.pending != tc.heading {
			t.Errorf("heading %v: reversal %v accepted", tc.heading, tc.request)
		}
	}
}

func TestDirectionLastWriteWins(t *testing.T) {
	w := testWorld(ClassicConfig(20, 20))
	placeBody(w, Cell{X: 10, Y: 10})
	w.food = nil

	// Heading right: up then down within one tick. Down is not a reversal
	// of the current heading, so it overwrites up.
	w.SetDirection(DirUp)
	w.SetDirection(DirDown)
	w.Advance()
	if got := w.Head(); got != (Cell{X: 10, Y: 11}) {
		t.Errorf("head = %v, want (10,11)", got)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	w := testWorld(ClassicConfig(8, 8))
	placeBody(w, Cell{X: 7, Y: 4})
	w.food = nil
	w.Advance()
	if w.Phase() != GameOver {
		t.Fatal("setup: expected game over")
	}

	body := w.Body()
	score := w.Score()
	w.SetDirection(DirDown)
	for i := 0; i < 5; i++ {
		w.Advance()
	}
	if w.Score() != score {
		t.Errorf("score changed after game over: %d -> %d", score, w.Score())
	}
	after := w.Body()
	if len(after) != len(body) || after[0] != body[0] {
		t.Errorf("body changed after game over: %v -> %v", body, after)
	}
}

func TestGrowthInvariant(t *testing.T) {
	cfg := ClassicConfig(20, 20)
	cfg.LeafGrowth = 3
	cfg.AutoRespawn = false
	w := testWorld(cfg)
	placeBody(w, Cell{X: 2, Y: 10})
	w.food = nil
	w.score = 0

	const meals = 4
	for i := 0; i < meals; i++ {
		w.food = &Food{Cell: w.Head().Shift(DirRight), Kind: FoodLeaf}
		w.Advance()
		// burn off the remaining growth with plain moves
		for w.GrowPending() > 0 {
			w.Advance()
		}
	}
	if w.Phase() != Running {
		t.Fatalf("phase = %v, want running", w.Phase())
	}
	want := 1 + meals*cfg.LeafGrowth
	if w.Len() != want {
		t.Errorf("len = %d, want %d after %d meals of growth %d", w.Len(), want, meals, cfg.LeafGrowth)
	}
	if w.Score() != meals*cfg.LeafReward {
		t.Errorf("score = %d, want %d", w.Score(), meals*cfg.LeafReward)
	}
}

func TestPauseBlocksAdvanceAndFuse(t *testing.T) {
	w := testWorld(ExplodoConfig(20, 20))
	placeBody(w, Cell{X: 10, Y: 10})
	w.food = &Food{Cell: Cell{X: 2, Y: 2}, Kind: FoodNitro, Fuse: 1.0, FuseTotal: 1.0}

	w.TogglePause()
	if w.Phase() != Paused {
		t.Fatalf("phase = %v, want paused", w.Phase())
	}
	head := w.Head()
	w.Advance()
	w.UpdateTimers(0.5)
	if w.Head() != head {
		t.Error("snake moved while paused")
	}
	if w.food.Fuse != 1.0 {
		t.Errorf("fuse ticked while paused: %v", w.food.Fuse)
	}

	w.TogglePause()
	if w.Phase() != Running {
		t.Fatalf("phase = %v, want running after unpause", w.Phase())
	}
}

func TestRestartKeepsBest(t *testing.T) {
	w := testWorld(ClassicConfig(10, 10))
	w.score = 70
	w.Restart()
	if w.Score() != 0 {
		t.Errorf("score = %d, want 0 after restart", w.Score())
	}
	if w.Best() != 70 {
		t.Errorf("best = %d, want 70", w.Best())
	}
	if w.Phase() != Running {
		t.Errorf("phase = %v, want running", w.Phase())
	}
	if w.Len() != w.cfg.InitialLength {
		t.Errorf("len = %d, want %d", w.Len(), w.cfg.InitialLength)
	}

	// A worse run must not lower the recorded best.
	w.score = 20
	w.Restart()
	if w.Best() != 70 {
		t.Errorf("best = %d, want 70 preserved", w.Best())
	}
}

func TestFuseExpiryDetonatesAndRespawnsLeaf(t *testing.T) {
	cfg := ExplodoConfig(24, 24)
	cfg.InitialRocks = 0
	w := testWorld(cfg)
	placeBody(w, Cell{X: 2, Y: 2})
	w.rocks = make(map[Cell]struct{})
	w.food = &Food{Cell: Cell{X: 20, Y: 20}, Kind: FoodNitro, Fuse: 0.1, FuseTotal: 8}

	w.UpdateTimers(0.2)

	if w.Phase() != Running {
		t.Fatalf("phase = %v, want running (blast far from head)", w.Phase())
	}
	if len(w.Explosions()) != 1 {
		t.Fatalf("explosions = %d, want 1", len(w.Explosions()))
	}
	if e := w.Explosions()[0]; e.Center != (Cell{X: 20, Y: 20}) {
		t.Errorf("explosion center = %v, want (20,20)", e.Center)
	}
	if len(w.rocks) == 0 {
		t.Error("no debris scattered by the blast")
	}
	food, ok := w.Food()
	if !ok {
		t.Fatal("no replacement food after detonation")
	}
	if food.Kind != FoodLeaf {
		t.Errorf("replacement kind = %v, want plain", food.Kind)
	}
}

func TestEatingNitroIsLethal(t *testing.T) {
	cfg := ExplodoConfig(20, 20)
	cfg.InitialRocks = 0
	w := testWorld(cfg)
	placeBody(w, Cell{X: 10, Y: 10}, Cell{X: 9, Y: 10})
	w.rocks = make(map[Cell]struct{})
	w.score = 0
	w.food = &Food{Cell: Cell{X: 11, Y: 10}, Kind: FoodNitro, Fuse: 5, FuseTotal: 5}

	w.Advance()

	// The score and growth land first, then the blast at distance zero
	// kills.
	if w.Score() != cfg.NitroReward {
		t.Errorf("score = %d, want %d", w.Score(), cfg.NitroReward)
	}
	if w.Phase() != GameOver {
		t.Errorf("phase = %v, want game over (head inside blast radius)", w.Phase())
	}
}

func TestExplosionTimersRunAfterGameOver(t *testing.T) {
	cfg := ExplodoConfig(20, 20)
	cfg.InitialRocks = 0
	w := testWorld(cfg)
	placeBody(w, Cell{X: 10, Y: 10}, Cell{X: 9, Y: 10})
	w.rocks = make(map[Cell]struct{})
	w.food = &Food{Cell: Cell{X: 11, Y: 10}, Kind: FoodNitro, Fuse: 5, FuseTotal: 5}
	w.Advance()
	if w.Phase() != GameOver || len(w.Explosions()) != 1 {
		t.Fatal("setup: expected a lethal blast with one live event")
	}

	w.UpdateTimers(ExplosionDuration + 0.01)
	if len(w.Explosions()) != 0 {
		t.Error("explosion event not pruned after its window")
	}
}

func TestSpawnFoodNoopWhenFull(t *testing.T) {
	w := &World{cfg: ClassicConfig(2, 2), rng: rand.New(rand.NewSource(1))}
	w.rocks = make(map[Cell]struct{})
	placeBody(w,
		Cell{X: 0, Y: 0},
		Cell{X: 1, Y: 0},
		Cell{X: 1, Y: 1},
		Cell{X: 0, Y: 1},
	)

	w.SpawnFood(false)
	if _, ok := w.Food(); ok {
		t.Error("food spawned on a fully occupied grid")
	}
}

func TestSpawnFoodAvoidsOccupiedCells(t *testing.T) {
	w := testWorld(ExplodoConfig(12, 12))
	for i := 0; i < 200; i++ {
		w.food = nil
		w.SpawnFood(false)
		food, ok := w.Food()
		if !ok {
			t.Fatal("no food spawned on a mostly empty grid")
		}
		if w.Occupies(food.Cell) {
			t.Fatalf("food spawned on the body at %v", food.Cell)
		}
		if w.RockAt(food.Cell) {
			t.Fatalf("food spawned on a rock at %v", food.Cell)
		}
	}
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() (Cell, []Cell) {
		w := NewWorld(ExplodoConfig(16, 16), rand.New(rand.NewSource(42)))
		for i := 0; i < 10 && w.Phase() == Running; i++ {
			w.SetDirection(Direction(i % 2)) // alternate right/down
			w.Advance()
			w.UpdateTimers(0.1)
		}
		food, _ := w.Food()
		return food.Cell, w.Rocks()
	}
	f1, r1 := run()
	f2, r2 := run()
	if f1 != f2 {
		t.Errorf("food diverged: %v vs %v", f1, f2)
	}
	if len(r1) != len(r2) {
		t.Errorf("rock count diverged: %d vs %d", len(r1), len(r2))
	}
}

func TestDrainEats(t *testing.T) {
	w := testWorld(ClassicConfig(10, 10))
	placeBody(w, Cell{X: 5, Y: 5})
	w.food = &Food{Cell: Cell{X: 6, Y: 5}, Kind: FoodLeaf}

	w.Advance()
	events := w.DrainEats()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].Cell != (Cell{X: 6, Y: 5}) || events[0].Kind != FoodLeaf {
		t.Errorf("event = %+v", events[0])
	}
	if len(w.DrainEats()) != 0 {
		t.Error("second drain not empty")
	}
}
