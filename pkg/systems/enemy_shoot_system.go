package systems

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// EnemyShootSystem 敌人按各自的循环计时器向下射击
type EnemyShootSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewEnemyShootSystem 创建敌人射击系统
func NewEnemyShootSystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *EnemyShootSystem {
	return &EnemyShootSystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "EnemyShootSystem"),
	}
}

// Update 推进每个敌人的射击计时器，到期时在敌人位置生成子弹
// 一帧内跨过多个周期也只射出一发，多发会在同一位置重叠
func (s *EnemyShootSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em)

	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if !enemy.ShootTimer.Advance(deltaTime) {
			continue
		}
		shot := entities.NewEnemyShot(s.em, s.gs, pos.X, pos.Y)
		s.log.Trace().
			Uint64("enemy", uint64(id)).
			Uint64("shot", uint64(shot)).
			Msg("enemy fired")
	}
}
