package entities

import (
	"github.com/tora0091/shoot-game/pkg/clock"
	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
)

// 击中标记的尺寸：两个 20x50 的矩形交叉
const (
	bangWidth    = 20.0
	bangHeight   = 50.0
	bangRotation = 400.0
)

// NewBangEffect 在 (x, y) 创建击中标记
// 标记没有碰撞组件，寿命到期后由 EffectSystem 销毁
func NewBangEffect(em *ecs.EntityManager, gs *game.GameState, x, y float64) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Z: layerEffect})
	ecs.AddComponent(em, id, &components.EffectComponent{
		Lifetime: clock.NewTimer(gs.Config.BangLifetime, clock.Once),
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:     components.ShapeCross,
		Width:    bangWidth,
		Height:   bangHeight,
		Rotation: bangRotation,
		Color:    colorBang,
	})

	return id
}
