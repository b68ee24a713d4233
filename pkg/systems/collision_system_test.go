package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/logging"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"same position", 0, 0, true},
		{"inside on x", 24.9, 0, true},
		{"touching is not a hit", 25, 0, false},
		{"touching on y", 0, -25, false},
		{"diagonal inside box", 20, 20, true},
		{"far away", 100, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &components.PositionComponent{}
			b := &components.PositionComponent{X: tt.dx, Y: tt.dy}
			assert.Equal(t, tt.want, Overlaps(a, 20, b, 5))
			assert.Equal(t, tt.want, Overlaps(b, 5, a, 20), "对称")
		})
	}
}

// 场景A：敌人子弹 5 帧后追上玩家
func TestCollision_EnemyShotKillsPlayer(t *testing.T) {
	em, gs := newTestWorld(t)
	require.Equal(t, -305.0, gs.Limits.Bottom)
	require.Equal(t, 250.0, gs.Limits.Right)

	gs.Status.RespawnPending = false
	playerID := spawnEnabledPlayer(t, em, gs, 0, -285)
	shotID := entities.NewProjectile(em, gs, components.FromEnemy, 0, -300, 0, 3)

	movement := NewMovementSystem(em)
	for i := 0; i < 5; i++ {
		movement.Update()
	}
	assert.Equal(t, -285.0, position(t, em, shotID).Y)

	NewCollisionSystem(em, gs, logging.Nop()).Update()

	assert.False(t, em.IsAlive(playerID))
	assert.False(t, em.IsAlive(shotID))
	assert.True(t, gs.Status.RespawnPending)
	assert.Equal(t, config.PlayerRespawnDelay, gs.Status.RespawnTimer.Duration)
	assert.Equal(t, 0.0, gs.Status.RespawnTimer.Elapsed)
	assert.Equal(t, 1, countWith[*components.EffectComponent](em), "玩家处一个击中标记")
}

// 场景B：玩家子弹击毁敌人，分数精确为 1.0，重复结算不变
func TestCollision_PlayerShotKillsEnemy_Idempotent(t *testing.T) {
	em, gs := newTestWorld(t)
	sys := NewCollisionSystem(em, gs, logging.Nop())

	enemyID := entities.NewEnemy(em, gs, entities.EnemySpec{X: 0, Y: 100})
	shotID := entities.NewProjectile(em, gs, components.FromPlayer, 0, 90, 0, 3)

	sys.Update()
	assert.Equal(t, 1.0, gs.Status.Score)
	assert.False(t, em.IsAlive(enemyID))
	assert.False(t, em.IsAlive(shotID))
	assert.Equal(t, 1, countWith[*components.EffectComponent](em))

	sys.Update()
	assert.Equal(t, 1.0, gs.Status.Score)
	assert.Equal(t, 1, countWith[*components.EffectComponent](em))

	em.RemoveMarkedEntities()
	sys.Update()
	assert.Equal(t, 1.0, gs.Status.Score)
}

func TestCollision_OneShotKillsOneEnemy(t *testing.T) {
	em, gs := newTestWorld(t)

	e1 := entities.NewEnemy(em, gs, entities.EnemySpec{X: 0, Y: 100})
	e2 := entities.NewEnemy(em, gs, entities.EnemySpec{X: 2, Y: 100})
	entities.NewProjectile(em, gs, components.FromPlayer, 1, 100, 0, 3)

	NewCollisionSystem(em, gs, logging.Nop()).Update()

	assert.Equal(t, 1.0, gs.Status.Score)
	assert.False(t, em.IsAlive(e1))
	assert.True(t, em.IsAlive(e2), "一发子弹只能击毁一个敌人")
}

func TestCollision_TwoShotsOneEnemy(t *testing.T) {
	em, gs := newTestWorld(t)

	enemyID := entities.NewEnemy(em, gs, entities.EnemySpec{X: 0, Y: 100})
	s1 := entities.NewProjectile(em, gs, components.FromPlayer, 0, 95, 0, 3)
	s2 := entities.NewProjectile(em, gs, components.FromPlayer, 0, 105, 0, 3)

	NewCollisionSystem(em, gs, logging.Nop()).Update()

	assert.Equal(t, 1.0, gs.Status.Score, "敌人只计分一次")
	assert.False(t, em.IsAlive(enemyID))
	assert.False(t, em.IsAlive(s1))
	assert.True(t, em.IsAlive(s2), "第二发子弹继续飞行")
}

func TestCollision_EnemyShotsIgnoreEnemies(t *testing.T) {
	em, gs := newTestWorld(t)

	enemyID := entities.NewEnemy(em, gs, entities.EnemySpec{X: 0, Y: 100})
	shotID := entities.NewEnemyShot(em, gs, 0, 100)

	NewCollisionSystem(em, gs, logging.Nop()).Update()
	assert.True(t, em.IsAlive(enemyID))
	assert.True(t, em.IsAlive(shotID))
}

func TestCollision_DisabledPlayerIsInvulnerable(t *testing.T) {
	em, gs := newTestWorld(t)
	gs.Status.RespawnPending = false

	playerID := entities.NewPlayer(em, gs)
	pos := position(t, em, playerID)
	entities.NewEnemyShot(em, gs, pos.X, pos.Y)
	entities.NewEnemy(em, gs, entities.EnemySpec{X: pos.X, Y: pos.Y})

	NewCollisionSystem(em, gs, logging.Nop()).Update()

	assert.True(t, em.IsAlive(playerID))
	assert.False(t, gs.Status.RespawnPending)
}

func TestCollision_PlayerRamsEnemy(t *testing.T) {
	em, gs := newTestWorld(t)
	gs.Status.RespawnPending = false

	playerID := spawnEnabledPlayer(t, em, gs, 0, 0)
	enemyID := entities.NewEnemy(em, gs, entities.EnemySpec{X: 10, Y: 10, Counted: true})
	gs.Spawner.Counter = 1

	NewCollisionSystem(em, gs, logging.Nop()).Update()

	assert.False(t, em.IsAlive(playerID))
	assert.False(t, em.IsAlive(enemyID))
	assert.True(t, gs.Status.RespawnPending)
	assert.Equal(t, 0.0, gs.Status.Score, "撞毁敌人不加分")
	assert.Equal(t, 2, countWith[*components.EffectComponent](em))
	assert.Equal(t, 0, gs.Spawner.Counter, "占用的名额被归还")
}

func TestCollision_ShotAndRamSameFrame(t *testing.T) {
	em, gs := newTestWorld(t)
	gs.Status.RespawnPending = false

	playerID := spawnEnabledPlayer(t, em, gs, 0, 0)
	entities.NewEnemyShot(em, gs, 0, 0)
	enemyID := entities.NewEnemy(em, gs, entities.EnemySpec{X: 5, Y: 5})

	NewCollisionSystem(em, gs, logging.Nop()).Update()

	assert.False(t, em.IsAlive(playerID))
	assert.True(t, em.IsAlive(enemyID), "玩家已被子弹击毁，不再与敌人结算")
	assert.Equal(t, 1, countWith[*components.EffectComponent](em))
}

func TestCollision_KilledCountedEnemyReleasesSlot(t *testing.T) {
	em, gs := newRandomModeWorld(t)

	require.True(t, gs.Spawner.Acquire())
	enemyID := entities.NewEnemy(em, gs, entities.EnemySpec{X: 0, Y: 0, Counted: true})
	entities.NewProjectile(em, gs, components.FromPlayer, 0, 0, 0, 3)

	sys := NewCollisionSystem(em, gs, logging.Nop())
	sys.Update()
	sys.Update()

	assert.False(t, em.IsAlive(enemyID))
	assert.Equal(t, 0, gs.Spawner.Counter)
}

func TestCollision_NoPlayerIsNoop(t *testing.T) {
	em, gs := newTestWorld(t)
	entities.NewEnemyShot(em, gs, 0, 0)

	assert.NotPanics(t, func() { NewCollisionSystem(em, gs, logging.Nop()).Update() })
	assert.Equal(t, 1, em.EntityCount())
}

func TestCollision_EntityWithoutCollisionIgnored(t *testing.T) {
	em, gs := newTestWorld(t)
	enemyID := entities.NewEnemy(em, gs, entities.EnemySpec{})
	ecs.RemoveComponent[*components.CollisionComponent](em, enemyID)
	entities.NewProjectile(em, gs, components.FromPlayer, 0, 0, 0, 3)

	NewCollisionSystem(em, gs, logging.Nop()).Update()
	assert.True(t, em.IsAlive(enemyID))
	assert.Equal(t, 0.0, gs.Status.Score)
}
