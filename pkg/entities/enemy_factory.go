package entities

import (
	"github.com/tora0091/shoot-game/pkg/clock"
	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
)

// EnemySpec 创建单个敌人所需的参数
type EnemySpec struct {
	X, Y   float64
	VX, VY float64
	// Static 为 true 时不添加速度组件（位置完全由运动模式决定）
	Static bool

	// ShootInterval 射击间隔（秒），为 0 时按关卡配置随机取值
	ShootInterval float64
	Pattern       components.MotionPattern
	Counted       bool
	Formation     string
}

// NewEnemy 创建敌人实体
//
// 敌人总是带有碰撞组件、自动销毁标记和循环射击计时器。
func NewEnemy(em *ecs.EntityManager, gs *game.GameState, spec EnemySpec) ecs.EntityID {
	r := gs.Config.EnemyRadius

	interval := spec.ShootInterval
	if interval <= 0 {
		interval = gs.RandRange(gs.Level.Enemy.ShootIntervalMin, gs.Level.Enemy.ShootIntervalMax)
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: spec.X, Y: spec.Y, Z: layerEnemy})
	if !spec.Static {
		ecs.AddComponent(em, id, &components.VelocityComponent{VX: spec.VX, VY: spec.VY})
	}
	ecs.AddComponent(em, id, &components.EnemyComponent{
		ShootTimer: clock.NewTimer(interval, clock.Repeating),
		Point:      gs.Level.Enemy.Point,
		Counted:    spec.Counted,
		Formation:  spec.Formation,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: r})
	ecs.AddComponent(em, id, &components.AutoDespawnComponent{})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:   components.ShapeCircle,
		Width:  r * 2,
		Height: r * 2,
		Color:  colorEnemy,
	})
	if spec.Pattern != nil {
		ecs.AddComponent(em, id, &components.MotionPatternComponent{Pattern: spec.Pattern})
	}

	return id
}

// NewRandomEnemy 按随机生成规则创建一个占用名额的敌人
// 位置在上半区随机，射击间隔取关卡 randomSpawn 的区间
func NewRandomEnemy(em *ecs.EntityManager, gs *game.GameState) ecs.EntityID {
	r := gs.Config.EnemyRadius
	l := gs.Limits
	rs := gs.Level.RandomSpawn

	return NewEnemy(em, gs, EnemySpec{
		X:             gs.RandRange(l.Left+r, l.Right-r),
		Y:             gs.RandRange((l.Bottom+r)/2, l.Top-r),
		ShootInterval: gs.RandRange(rs.ShootIntervalMin, rs.ShootIntervalMax),
		Counted:       true,
		Formation:     "random",
	})
}
