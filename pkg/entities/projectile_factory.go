package entities

import (
	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
)

// NewProjectile 创建直线飞行的子弹实体
func NewProjectile(em *ecs.EntityManager, gs *game.GameState, owner components.ProjectileOwner, x, y, vx, vy float64) ecs.EntityID {
	r := gs.Config.ShootRadius
	c := colorPlayerShot
	if owner == components.FromEnemy {
		c = colorEnemyShot
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y, Z: layerShot})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.ProjectileComponent{Owner: owner})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: r})
	ecs.AddComponent(em, id, &components.AutoDespawnComponent{})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:   components.ShapeCircle,
		Width:  r * 2,
		Height: r * 2,
		Color:  c,
	})

	return id
}

// NewPlayerShots 按射击模式创建玩家子弹
//
// v = ShootVelocity × 速度倍率，r = 玩家半径:
//   - Single: (x, y) 处一发，速度 (0, v)
//   - Double: (x-r, y) 处速度 (-v/2, v)，(x+r, y) 处速度 (v/2, v)
//   - Triple: Single 与 Double 的并集
func NewPlayerShots(em *ecs.EntityManager, gs *game.GameState, x, y float64, mode components.ShootMode) []ecs.EntityID {
	v := gs.ShootVelocity()
	r := gs.Config.PlayerRadius

	ids := make([]ecs.EntityID, 0, 3)
	single := func() {
		ids = append(ids, NewProjectile(em, gs, components.FromPlayer, x, y, 0, v))
	}
	double := func() {
		ids = append(ids,
			NewProjectile(em, gs, components.FromPlayer, x-r, y, -v/2, v),
			NewProjectile(em, gs, components.FromPlayer, x+r, y, v/2, v),
		)
	}

	switch mode {
	case components.ShootDouble:
		double()
	case components.ShootTriple:
		single()
		double()
	default:
		single()
	}
	return ids
}

// NewEnemyShot 在敌人位置创建一发向下飞行的子弹
func NewEnemyShot(em *ecs.EntityManager, gs *game.GameState, x, y float64) ecs.EntityID {
	return NewProjectile(em, gs, components.FromEnemy, x, y, 0, -gs.ShootVelocity())
}
