package systems

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// BoundarySystem 边界约束与越界清理
type BoundarySystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewBoundarySystem 创建边界系统
func NewBoundarySystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *BoundarySystem {
	return &BoundarySystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "BoundarySystem"),
	}
}

// FixedUpdate 把玩家约束在 [Left+r, Right-r] × [Bottom+r, Top-r] 内
// 以固定频率执行，与渲染帧率无关
func (s *BoundarySystem) FixedUpdate() {
	ids := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		pos.X, pos.Y = s.gs.Limits.Clamp(pos.X, pos.Y, col.Radius)
	}
}

// Update 销毁越出边界加边距的自动销毁实体，返回本次销毁数量
func (s *BoundarySystem) Update() int {
	ids := ecs.GetEntitiesWith3[
		*components.AutoDespawnComponent,
		*components.CollisionComponent,
		*components.PositionComponent,
	](s.em)

	margin := s.gs.Config.WindowMargin
	removed := 0
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !s.gs.Limits.IsOutside(pos.X, pos.Y, margin) {
			continue
		}
		if !s.em.DestroyEntity(id) {
			continue
		}
		releaseEnemySlot(s.em, s.gs, id)
		removed++
	}

	if removed > 0 {
		s.log.Trace().Int("removed", removed).Msg("out of bounds entities despawned")
	}
	return removed
}
