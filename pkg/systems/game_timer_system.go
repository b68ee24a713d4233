package systems

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// GameTimerSystem 推进游戏时钟
// 累计时间供运动模式使用，整秒计数供波次计划表使用
type GameTimerSystem struct {
	gs  *game.GameState
	log zerolog.Logger
}

// NewGameTimerSystem 创建游戏计时系统
func NewGameTimerSystem(gs *game.GameState, logger zerolog.Logger) *GameTimerSystem {
	return &GameTimerSystem{
		gs:  gs,
		log: logging.ForSystem(logger, "GameTimerSystem"),
	}
}

// Update 推进累计时间和整秒计时器
func (s *GameTimerSystem) Update(deltaTime float64) {
	s.gs.AdvanceClock(deltaTime)

	if n := s.gs.Timer.Tick(deltaTime); n > 0 {
		s.log.Trace().Uint64("seconds", s.gs.Timer.Seconds).Msg("game second elapsed")
	}
}
