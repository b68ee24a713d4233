package components

// ProjectileOwner 子弹来源
type ProjectileOwner int

const (
	// FromPlayer 玩家发射的子弹，只与敌人碰撞
	FromPlayer ProjectileOwner = iota
	// FromEnemy 敌人发射的子弹，只与玩家碰撞
	FromEnemy
)

// ProjectileComponent 子弹组件，直线飞行，速度由 VelocityComponent 给出
type ProjectileComponent struct {
	Owner ProjectileOwner
}
