package systems

import (
	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
)

// EffectSystem 管理短暂视觉效果的寿命
type EffectSystem struct {
	em *ecs.EntityManager
}

// NewEffectSystem 创建效果系统
func NewEffectSystem(em *ecs.EntityManager) *EffectSystem {
	return &EffectSystem{em: em}
}

// Update 推进每个效果的单次计时器，完成后标记实体待删除
func (s *EffectSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith1[*components.EffectComponent](s.em)

	for _, id := range ids {
		effect, _ := ecs.GetComponent[*components.EffectComponent](s.em, id)
		if effect.Lifetime.Advance(deltaTime) || effect.Lifetime.Finished() {
			s.em.DestroyEntity(id)
		}
	}
}
