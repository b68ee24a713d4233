package systems

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// MotionPatternSystem 根据敌人的运动模式改写速度或位置
//
// 在 MovementSystem 之前执行。时间参数 t 为 GameState.Elapsed。
// 只改写速度的模式（正弦、随机游走、三角波、抛物线、下落反弹）
// 交给 MovementSystem 积分；直接给出位置的模式（环绕、贝塞尔、浮动的 Y）
// 覆盖本帧位置。
type MotionPatternSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewMotionPatternSystem 创建运动模式系统
func NewMotionPatternSystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *MotionPatternSystem {
	return &MotionPatternSystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "MotionPatternSystem"),
	}
}

// Update 对每个带运动模式的实体执行一步
func (s *MotionPatternSystem) Update(deltaTime float64) {
	t := s.gs.Elapsed
	ids := ecs.GetEntitiesWith2[*components.MotionPatternComponent, *components.PositionComponent](s.em)

	for _, id := range ids {
		mp, _ := ecs.GetComponent[*components.MotionPatternComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, hasVel := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		switch p := mp.Pattern.(type) {
		case *components.SineLateral:
			if hasVel {
				vel.VX = p.Amplitude * math.Sin(p.Frequency*t)
			}

		case *components.RandomWalk:
			resample := !p.Started
			if p.Started {
				resample = p.Cadence.Advance(deltaTime)
			}
			p.Started = true
			if resample && hasVel {
				vel.VX = s.gs.RandRange(p.Min, p.Max)
			}

		case *components.TriangleWave:
			if hasVel {
				stepTriangle(p, vel)
			}

		case *components.Parabolic:
			if hasVel {
				vel.VY = p.A*pos.X*pos.X + p.B*pos.X + p.C - pos.Y
			}

		case *components.Orbit:
			pos.X, pos.Y = p.At(t)
			p.AnchorX += p.DriftX
			p.AnchorY += p.DriftY

		case *components.BounceDescend:
			if hasVel {
				s.stepBounce(id, p, pos, vel, deltaTime)
			}

		case *components.BezierPath:
			pt := p.At(components.BezierParam(t))
			pos.X, pos.Y = pt.X, pt.Y

		case *components.Hover:
			pos.Y = p.BaseY + math.Abs(p.Amplitude*math.Sin(t))
		}
	}
}

// stepTriangle 计数器到达周期起点时向右加速，到达半周期时向左加速
func stepTriangle(p *components.TriangleWave, vel *components.VelocityComponent) {
	if p.Period == 0 {
		return
	}
	switch p.Counter % p.Period {
	case 0:
		p.Direction = 1
	case p.Period / 2:
		p.Direction = -1
	default:
		vel.VX += p.Step * p.Direction
	}
	p.Counter++
}

func (s *MotionPatternSystem) stepBounce(id ecs.EntityID, p *components.BounceDescend,
	pos *components.PositionComponent, vel *components.VelocityComponent, deltaTime float64) {

	switch p.Stage {
	case components.BounceFalling:
		if pos.Y <= p.TriggerY {
			vel.VX, vel.VY = 0, 0
			p.Stage = components.BounceWaiting
		}

	case components.BounceWaiting:
		if !p.Wait.Advance(deltaTime) {
			return
		}
		sign := 1.0
		if pos.X < 0 {
			sign = -1.0
		}
		vel.VX = sign * p.ResumeSpeed
		vel.VY = p.ResumeSpeed
		p.Stage = components.BounceResumed
		s.log.Debug().Uint64("entity", uint64(id)).Float64("vx", vel.VX).Msg("bounce resumed")
	}
}
