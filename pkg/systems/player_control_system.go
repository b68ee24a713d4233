package systems

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// PlayerControlSystem 把输入快照应用到玩家和全局速度倍率
//
// 速度键不依赖玩家是否存在；移动只在玩家启用后生效；
// 射击在 GateShootingWhileDisabled 为 true 时同样要求玩家已启用。
type PlayerControlSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *PlayerControlSystem {
	return &PlayerControlSystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "PlayerControlSystem"),
	}
}

// Update 处理一帧的输入
func (s *PlayerControlSystem) Update(in InputState) {
	s.updateSpeed(in)

	id, ok := entities.FindPlayer(s.em)
	if !ok {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return
	}

	s.updateShootMode(player, in)

	if player.Enabled {
		v := s.gs.PlayerVelocity()
		if in.Up {
			pos.Y += v
		}
		if in.Down {
			pos.Y -= v
		}
		if in.Right {
			pos.X += v
		}
		if in.Left {
			pos.X -= v
		}
	}

	if in.Fire && (player.Enabled || !s.gs.Config.GateShootingWhileDisabled) {
		shots := entities.NewPlayerShots(s.em, s.gs, pos.X, pos.Y, player.ShootMode)
		s.log.Trace().Stringer("mode", player.ShootMode).Int("shots", len(shots)).Msg("player fired")
	}
}

func (s *PlayerControlSystem) updateSpeed(in InputState) {
	if in.SpeedUp {
		v := s.gs.Speed.Scale(s.gs.Config.SpeedUpFactor)
		s.log.Info().Float64("speed", v).Msg("speed up")
	}
	if in.SpeedDown {
		v := s.gs.Speed.Scale(s.gs.Config.SpeedDownFactor)
		s.log.Info().Float64("speed", v).Msg("speed down")
	}
}

func (s *PlayerControlSystem) updateShootMode(player *components.PlayerComponent, in InputState) {
	mode := player.ShootMode
	switch {
	case in.ModeSingle:
		mode = components.ShootSingle
	case in.ModeDouble:
		mode = components.ShootDouble
	case in.ModeTriple:
		mode = components.ShootTriple
	}
	if mode != player.ShootMode {
		player.ShootMode = mode
		s.log.Debug().Stringer("mode", mode).Msg("shoot mode changed")
	}
}
