package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tora0091/shoot-game/pkg/clock"
	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

const singleWaveLevel = `
id: single-wave
waves:
  - id: first
    second: 5
    formation: center_random
`

// 场景D：波次在秒数第一次到达 5 时触发，之后永不再触发
func TestWaveSchedule_FiresOnce(t *testing.T) {
	level, err := config.ParseLevelConfig([]byte(singleWaveLevel))
	require.NoError(t, err)
	em := ecs.NewEntityManager()
	gs := game.NewGameState(config.DefaultGameConfig(), level, 1)

	timer := NewGameTimerSystem(gs, logging.Nop())
	waves := NewWaveScheduleSystem(em, gs, logging.Nop())

	spawnedAt := []uint64{}
	for i := 0; i < 8; i++ {
		before := countWith[*components.EnemyComponent](em)
		timer.Update(1.0)
		waves.Update()
		if countWith[*components.EnemyComponent](em) > before {
			spawnedAt = append(spawnedAt, gs.Timer.Seconds)
		}
	}
	assert.Equal(t, []uint64{5}, spawnedAt)

	// 计数器被重置回 5 也不会再次触发
	gs.Timer.Seconds = 5
	waves.Update()
	assert.Equal(t, 1, countWith[*components.EnemyComponent](em))

	entry, ok := gs.Schedule.Entry("first")
	require.True(t, ok)
	assert.False(t, entry.Armed)
}

func TestWaveSchedule_LateCheckStillFires(t *testing.T) {
	level, err := config.ParseLevelConfig([]byte(singleWaveLevel))
	require.NoError(t, err)
	em := ecs.NewEntityManager()
	gs := game.NewGameState(config.DefaultGameConfig(), level, 1)

	gs.Timer.Seconds = 9
	NewWaveScheduleSystem(em, gs, logging.Nop()).Update()
	assert.Equal(t, 1, countWith[*components.EnemyComponent](em))
}

func TestWaveSchedule_InactiveInRandomMode(t *testing.T) {
	em, gs := newRandomModeWorld(t)
	gs.Timer.Seconds = 1000
	NewWaveScheduleSystem(em, gs, logging.Nop()).Update()
	assert.Equal(t, 0, em.EntityCount())
}

func TestWaveSchedule_DefaultLevelSpawnsEveryFormation(t *testing.T) {
	em, gs := newTestWorld(t)
	timer := NewGameTimerSystem(gs, logging.Nop())
	waves := NewWaveScheduleSystem(em, gs, logging.Nop())

	for i := 0; i < 45; i++ {
		timer.Update(1.0)
		waves.Update()
	}
	assert.Equal(t, 0, gs.Schedule.Pending())
	assert.Equal(t, 5+1+1+1+5+2+1+2, countWith[*components.EnemyComponent](em))
}

func TestRandomSpawn_CounterGated(t *testing.T) {
	em, gs := newRandomModeWorld(t)
	require.Equal(t, 2, gs.Spawner.Max)
	sys := NewRandomSpawnSystem(em, gs, logging.Nop())

	sys.Update(0.5)
	assert.Equal(t, 0, countWith[*components.EnemyComponent](em))

	sys.Update(0.5)
	assert.Equal(t, 1, countWith[*components.EnemyComponent](em))

	sys.Update(1)
	sys.Update(1)
	assert.Equal(t, 2, countWith[*components.EnemyComponent](em), "名额已满")
	assert.Equal(t, 2, gs.Spawner.Counter)

	// 归还一个名额后下一次计时完成时补充
	ids := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	em.DestroyEntity(ids[0])
	releaseEnemySlot(em, gs, ids[0])
	assert.Equal(t, 1, gs.Spawner.Counter)

	sys.Update(1)
	assert.Equal(t, 2, countWith[*components.EnemyComponent](em))
}

// TestRandomSpawn_TimerPausedWhileFull 名额已满期间生成计时器不前进
func TestRandomSpawn_TimerPausedWhileFull(t *testing.T) {
	em, gs := newRandomModeWorld(t)
	sys := NewRandomSpawnSystem(em, gs, logging.Nop())

	sys.Update(1)
	sys.Update(1)
	require.Equal(t, 2, gs.Spawner.Counter)
	elapsed := gs.Spawner.Timer.Elapsed

	sys.Update(0.7)
	assert.Equal(t, elapsed, gs.Spawner.Timer.Elapsed)

	ids := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	em.DestroyEntity(ids[0])
	releaseEnemySlot(em, gs, ids[0])

	sys.Update(0.5)
	assert.Equal(t, 1, gs.Spawner.Counter, "暂停期间的时间不计入")
	sys.Update(0.5)
	assert.Equal(t, 2, gs.Spawner.Counter)
}

func TestRandomSpawn_InactiveInWaveMode(t *testing.T) {
	em, gs := newTestWorld(t)
	sys := NewRandomSpawnSystem(em, gs, logging.Nop())
	for i := 0; i < 10; i++ {
		sys.Update(1)
	}
	assert.Equal(t, 0, em.EntityCount())
}

func TestReleaseEnemySlot_OnlyOnce(t *testing.T) {
	em, gs := newRandomModeWorld(t)
	gs.Spawner.Counter = 2

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.EnemyComponent{Counted: true})

	releaseEnemySlot(em, gs, id)
	releaseEnemySlot(em, gs, id)
	assert.Equal(t, 1, gs.Spawner.Counter)
}

func TestEnemyShoot(t *testing.T) {
	em, gs := newTestWorld(t)
	sys := NewEnemyShootSystem(em, gs, logging.Nop())

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 12, Y: 34})
	enemy := &components.EnemyComponent{}
	enemy.ShootTimer.Start(1, clock.Repeating)
	ecs.AddComponent(em, id, enemy)

	sys.Update(0.5)
	assert.Equal(t, 0, countWith[*components.ProjectileComponent](em))

	sys.Update(0.5)
	shots := ecs.GetEntitiesWith1[*components.ProjectileComponent](em)
	require.Len(t, shots, 1)
	assert.Equal(t, 12.0, position(t, em, shots[0]).X)
	assert.Equal(t, 34.0, position(t, em, shots[0]).Y)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, shots[0])
	assert.Equal(t, -config.ShootVelocity, vel.VY)

	// 循环计时器持续射击
	sys.Update(1)
	assert.Equal(t, 2, countWith[*components.ProjectileComponent](em))
}

// TestEnemyShoot_LongFrameFiresOnce 一帧跨过多个射击周期时仍只射出一发
func TestEnemyShoot_LongFrameFiresOnce(t *testing.T) {
	em, gs := newTestWorld(t)
	sys := NewEnemyShootSystem(em, gs, logging.Nop())

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})
	enemy := &components.EnemyComponent{}
	enemy.ShootTimer.Start(1, clock.Repeating)
	ecs.AddComponent(em, id, enemy)

	sys.Update(3.5)
	assert.Equal(t, 3, enemy.ShootTimer.TimesFinishedThisTick())
	assert.Equal(t, 1, countWith[*components.ProjectileComponent](em))
}

func TestGameTimerSystem(t *testing.T) {
	_, gs := newTestWorld(t)
	sys := NewGameTimerSystem(gs, logging.Nop())

	for i := 0; i < 90; i++ {
		sys.Update(tick)
	}
	assert.Equal(t, uint64(1), gs.Timer.Seconds)
	assert.Equal(t, uint64(90), gs.Frame)
	assert.InDelta(t, 1.5, gs.Elapsed, 1e-9)
}
