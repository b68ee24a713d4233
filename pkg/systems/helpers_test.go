package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/game"
)

const tick = 1.0 / 60

func newTestWorld(t *testing.T) (*ecs.EntityManager, *game.GameState) {
	t.Helper()
	return ecs.NewEntityManager(), game.NewGameState(config.DefaultGameConfig(), nil, 7)
}

func newRandomModeWorld(t *testing.T) (*ecs.EntityManager, *game.GameState) {
	t.Helper()
	level, err := config.ParseLevelConfig([]byte("id: random-test\nspawnMode: random\nrandomSpawn:\n  max: 2\n"))
	require.NoError(t, err)
	return ecs.NewEntityManager(), game.NewGameState(config.DefaultGameConfig(), level, 7)
}

// spawnEnabledPlayer 创建一个已经完成入场动画的玩家
func spawnEnabledPlayer(t *testing.T, em *ecs.EntityManager, gs *game.GameState, x, y float64) ecs.EntityID {
	t.Helper()
	id := entities.NewPlayer(em, gs)
	ecs.RemoveComponent[*components.EntryAnimationComponent](em, id)

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	require.True(t, ok)
	player.Enabled = true

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X, pos.Y = x, y
	return id
}

func position(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok, "entity %d has no position", id)
	return pos
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
