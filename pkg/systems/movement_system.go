package systems

import (
	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
)

// MovementSystem 速度积分
// 速度单位为“每帧”，每帧精确执行 X += VX, Y += VY，不乘 deltaTime
type MovementSystem struct {
	em *ecs.EntityManager
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{em: em}
}

// Update 按速度更新所有实体的位置
func (s *MovementSystem) Update() {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
	}
}
