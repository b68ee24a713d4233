package systems

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// PlayerStatusSystem 玩家重生与入场动画
//
// 重生计时器完成且 RespawnPending 时在底边创建禁用的玩家；
// 入场动画每帧上升一步，到达启用线后启用玩家并移除动画组件。
type PlayerStatusSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewPlayerStatusSystem 创建玩家状态系统
func NewPlayerStatusSystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *PlayerStatusSystem {
	return &PlayerStatusSystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "PlayerStatusSystem"),
	}
}

// Update 执行入场动画并推进重生计时器
// 入场动画先执行：本帧新建的玩家停在起始位置，下一帧才开始上升
func (s *PlayerStatusSystem) Update(deltaTime float64) {
	s.updateEntry()
	s.updateRespawn(deltaTime)
}

func (s *PlayerStatusSystem) updateRespawn(deltaTime float64) {
	status := &s.gs.Status
	if !status.RespawnTimer.Advance(deltaTime) || !status.RespawnPending {
		return
	}
	status.RespawnPending = false

	// 同一时刻最多一个玩家
	if _, exists := entities.FindPlayer(s.em); exists {
		return
	}
	id := entities.NewPlayer(s.em, s.gs)
	s.log.Debug().Uint64("entity", uint64(id)).Msg("player respawned")
}

func (s *PlayerStatusSystem) updateEntry() {
	ids := ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.EntryAnimationComponent,
		*components.PositionComponent,
	](s.em)

	for _, id := range ids {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
		entry, _ := ecs.GetComponent[*components.EntryAnimationComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if pos.Y < entry.TargetY {
			pos.Y += entry.Step
			continue
		}
		player.Enabled = true
		ecs.RemoveComponent[*components.EntryAnimationComponent](s.em, id)
		s.log.Debug().Uint64("entity", uint64(id)).Float64("y", pos.Y).Msg("player enabled")
	}
}
