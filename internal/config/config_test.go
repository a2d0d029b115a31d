package config

import "testing"

func TestEmbeddedDefaultsParse(t *testing.T) {
	snake, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if snake.Speed.MoveEveryTicks <= 0 {
		t.Errorf("snake move_every_ticks = %d, want > 0", snake.Speed.MoveEveryTicks)
	}
	if snake.Rules.LeafReward <= 0 {
		t.Errorf("snake leaf_reward = %d, want > 0", snake.Rules.LeafReward)
	}

	cat, err := LoadCaterpillar("")
	if err != nil {
		t.Fatalf("LoadCaterpillar: %v", err)
	}
	if cat.Burst.Particles <= 0 || cat.Burst.Life <= 0 {
		t.Errorf("caterpillar burst = %+v, want positive values", cat.Burst)
	}

	exp, err := LoadExplodo("")
	if err != nil {
		t.Fatalf("LoadExplodo: %v", err)
	}
	if exp.Rules.FuseMin > exp.Rules.FuseMax {
		t.Errorf("explodo fuse bounds inverted: %v > %v", exp.Rules.FuseMin, exp.Rules.FuseMax)
	}
	if exp.Rules.NitroChance <= 0 || exp.Rules.NitroChance >= 1 {
		t.Errorf("explodo nitro_chance = %v, want in (0, 1)", exp.Rules.NitroChance)
	}
	if exp.Rules.DebrisMin > exp.Rules.DebrisMax {
		t.Errorf("explodo debris bounds inverted: %d > %d", exp.Rules.DebrisMin, exp.Rules.DebrisMax)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := LoadExplodo("/nonexistent/explodo.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestPresetLevels(t *testing.T) {
	if lvl := InitialLevelForPreset(DifficultyEasy); lvl != 0.0 {
		t.Errorf("easy = %v, want 0.0", lvl)
	}
	if lvl := InitialLevelForPreset(DifficultyNormal); lvl != 0.3 {
		t.Errorf("normal = %v, want 0.3", lvl)
	}
	if lvl := InitialLevelForPreset(DifficultyHard); lvl != 0.7 {
		t.Errorf("hard = %v, want 0.7", lvl)
	}
}

func TestApplyExplodoPreset(t *testing.T) {
	easy := DefaultExplodoConfig()
	ApplyExplodoPreset(&easy, DifficultyEasy)
	hard := DefaultExplodoConfig()
	ApplyExplodoPreset(&hard, DifficultyHard)

	if easy.Rules.NitroChance >= hard.Rules.NitroChance {
		t.Errorf("easy nitro %v should be below hard %v", easy.Rules.NitroChance, hard.Rules.NitroChance)
	}
	if easy.Rules.InitialRocks >= hard.Rules.InitialRocks {
		t.Errorf("easy rocks %d should be below hard %d", easy.Rules.InitialRocks, hard.Rules.InitialRocks)
	}

	fixed := DefaultExplodoConfig()
	ApplyExplodoPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManagerMoveInterval(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedUp: 4},
	})

	if got := mgr.MoveInterval(6, 0, 0); got != 6 {
		t.Errorf("interval at score 0 = %d, want 6", got)
	}
	if got := mgr.MoveInterval(6, 100, 0); got != 2 {
		t.Errorf("interval at max score = %d, want 2", got)
	}
	// Never below one tick.
	if got := mgr.MoveInterval(2, 100, 0); got != 1 {
		t.Errorf("interval floor = %d, want 1", got)
	}
}

func TestDifficultyManagerNitroChance(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{NitroBoost: 0.25},
	})

	if got := mgr.NitroChance(0.40, 0, 0); got != 0.40 {
		t.Errorf("chance at score 0 = %v, want 0.40", got)
	}
	if got := mgr.NitroChance(0.40, 100, 0); got != 0.65 {
		t.Errorf("chance at max score = %v, want 0.65", got)
	}
	if got := mgr.NitroChance(0.85, 100, 0); got != 0.9 {
		t.Errorf("chance cap = %v, want 0.9", got)
	}
}

func TestDifficultyManagerFuseBounds(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{FuseCut: 3.0},
	})

	lo, hi := mgr.FuseBounds(6, 10, 100, 0)
	if lo != 3 || hi != 7 {
		t.Errorf("bounds at max = (%v, %v), want (3, 7)", lo, hi)
	}
	// Floor at one second, bounds never inverted.
	lo, hi = mgr.FuseBounds(1.5, 2, 100, 0)
	if lo != 1 || hi < lo {
		t.Errorf("floored bounds = (%v, %v)", lo, hi)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedUp: 4},
	})
	if mgr.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := mgr.MoveInterval(6, 1000, 0); got != 6 {
		t.Errorf("interval with disabled progression = %d, want 6", got)
	}
}
