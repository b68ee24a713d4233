package components

import "github.com/tora0091/shoot-game/pkg/clock"

// EnemyComponent 敌人组件
type EnemyComponent struct {
	// ShootTimer 射击间隔计时器，总是循环模式：敌人存活期间持续射击
	ShootTimer clock.Timer
	// Point 击毁后获得的分数
	Point float64
	// Counted 是否占用了随机生成器的名额（销毁时需要归还）
	Counted bool
	// Formation 生成该敌人的编队名（日志用）
	Formation string
}
