package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tora0091/shoot-game/pkg/config"
)

// TestNewGameState 默认关卡与边界初始化
func TestNewGameState(t *testing.T) {
	gs := NewGameState(config.DefaultGameConfig(), nil, 1)

	assert.Equal(t, WindowSizeLimit{Top: 305, Bottom: -305, Left: -250, Right: 250}, gs.Limits)
	assert.Equal(t, 1.0, gs.Speed.Value)
	assert.Equal(t, "stage-1", gs.Level.ID)
	assert.Equal(t, len(gs.Level.Waves), gs.Schedule.Pending())

	// 开局等待第一次出场
	assert.True(t, gs.Status.RespawnPending)
	assert.Equal(t, config.PlayerFirstSpawnDelay, gs.Status.RespawnTimer.Duration)
}

func TestGameState_AdvanceClock(t *testing.T) {
	gs := NewGameState(config.DefaultGameConfig(), nil, 1)
	gs.AdvanceClock(0.5)
	gs.AdvanceClock(-1)
	gs.AdvanceClock(0.25)
	assert.InDelta(t, 0.75, gs.Elapsed, 1e-9)
	assert.Equal(t, uint64(3), gs.Frame)
}

func TestGameState_RandRange(t *testing.T) {
	gs := NewGameState(config.DefaultGameConfig(), nil, 7)
	for i := 0; i < 100; i++ {
		v := gs.RandRange(1, 3)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.Less(t, v, 3.0)
	}
	assert.Equal(t, 2.0, gs.RandRange(2, 2))
}

// TestGameState_Velocities 速度倍率作用于玩家和子弹
func TestGameState_Velocities(t *testing.T) {
	gs := NewGameState(config.DefaultGameConfig(), nil, 1)
	gs.Speed.Scale(2)
	assert.Equal(t, 6.0, gs.ShootVelocity())
	assert.Equal(t, 6.0, gs.PlayerVelocity())
}

func TestWindowSizeLimit_Clamp(t *testing.T) {
	l := NewWindowSizeLimit(500, 610)
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 0, 0, 0, 0},
		{"top right", 1000, 1000, 230, 285},
		{"bottom left", -1000, -1000, -230, -285},
		{"on edge", 230, -285, 230, -285},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := l.Clamp(tt.x, tt.y, 20)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestWindowSizeLimit_IsOutside(t *testing.T) {
	l := NewWindowSizeLimit(500, 610)
	assert.False(t, l.IsOutside(0, 0, 100))
	assert.False(t, l.IsOutside(350, 0, 100), "exactly on the margin stays")
	assert.True(t, l.IsOutside(350.1, 0, 100))
	assert.True(t, l.IsOutside(0, -405.5, 100))
	assert.True(t, l.IsOutside(0, 406, 100))
	assert.True(t, l.IsOutside(-351, 0, 100))
}

func TestPlayerStatus(t *testing.T) {
	var ps PlayerStatus
	ps.AddScore(1.0)
	ps.AddScore(2.5)
	assert.Equal(t, 3.5, ps.Score)
	assert.Equal(t, 3, ps.DisplayScore())

	ps.BeginRespawn(3.0)
	assert.True(t, ps.RespawnPending)
	assert.False(t, ps.RespawnTimer.Advance(2.9))
	assert.True(t, ps.RespawnTimer.Advance(0.1))
}

func TestGameTimer_Tick(t *testing.T) {
	gt := NewGameTimer(1.0)
	assert.Equal(t, uint64(0), gt.Tick(0.6))
	assert.Equal(t, uint64(1), gt.Tick(0.6))
	assert.Equal(t, uint64(2), gt.Tick(2.0))
	assert.Equal(t, uint64(3), gt.Seconds)
}

func TestEnemySpawnCounter(t *testing.T) {
	c := NewEnemySpawnCounter(2, 1.0)
	assert.True(t, c.Acquire())
	assert.True(t, c.Acquire())
	assert.False(t, c.Acquire(), "no slot above max")
	c.Release()
	assert.True(t, c.Available())
	c.Release()
	c.Release()
	assert.Equal(t, 0, c.Counter, "counter never goes negative")
}

// TestEnemySchedule_FireOnce 每个波次只触发一次，且使用 >= 比较
func TestEnemySchedule_FireOnce(t *testing.T) {
	s := NewEnemySchedule([]config.WaveConfig{
		{ID: "a", Second: 5, Formation: config.FormationOrbit},
		{ID: "b", Second: 10, Formation: config.FormationLineSine},
	})

	fired := map[string]int{}
	for _, sec := range []uint64{0, 1, 2, 3, 4, 5, 6, 5, 5, 12, 20} {
		for _, e := range s.Ready(sec) {
			fired[e.ID]++
		}
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, fired)
	assert.Equal(t, 0, s.Pending())

	// 跳过了触发秒的那一帧，之后仍会触发
	late := NewEnemySchedule([]config.WaveConfig{{ID: "late", Second: 3}})
	assert.Empty(t, late.Ready(2))
	ready := late.Ready(4)
	require.Len(t, ready, 1)
	assert.Equal(t, "late", ready[0].ID)

	e, ok := late.Entry("late")
	require.True(t, ok)
	assert.False(t, e.Armed)
	assert.False(t, IsReady(e, 100))
	assert.False(t, IsReady(nil, 100))
}

func TestWindowSizeLimit_ToScreen(t *testing.T) {
	l := NewWindowSizeLimit(500, 610)

	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"origin is screen center", 0, 0, 250, 305},
		{"top left corner", -250, 305, 0, 0},
		{"bottom right corner", 250, -305, 500, 610},
		{"up is smaller sy", 10, 100, 260, 205},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := l.ToScreen(tt.x, tt.y)
			assert.Equal(t, tt.sx, sx)
			assert.Equal(t, tt.sy, sy)
		})
	}
}
