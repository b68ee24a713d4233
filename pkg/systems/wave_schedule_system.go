package systems

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// WaveScheduleSystem 按游戏秒数触发关卡波次
//
// 必须在 GameTimerSystem 之后执行。每个波次只触发一次；
// 比较使用 >=，即使某一秒没有检查到，之后仍会补发。
type WaveScheduleSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewWaveScheduleSystem 创建波次调度系统
func NewWaveScheduleSystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *WaveScheduleSystem {
	return &WaveScheduleSystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "WaveScheduleSystem"),
	}
}

// Update 生成所有到期波次的编队
func (s *WaveScheduleSystem) Update() {
	if s.gs.Level.SpawnMode != config.SpawnModeWaves || s.gs.Schedule == nil {
		return
	}

	for _, entry := range s.gs.Schedule.Ready(s.gs.Timer.Seconds) {
		ids := entities.SpawnFormation(s.em, s.gs, entry.Formation)
		s.log.Debug().
			Str("wave", entry.ID).
			Str("formation", entry.Formation).
			Uint64("second", s.gs.Timer.Seconds).
			Int("enemies", len(ids)).
			Msg("wave spawned")
	}
}
