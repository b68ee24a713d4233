package components

// ShootMode 玩家射击模式
type ShootMode int

const (
	// ShootSingle 单发：正前方一发
	ShootSingle ShootMode = iota
	// ShootDouble 双发：左右各一发，向两侧发散
	ShootDouble
	// ShootTriple 三发：单发与双发的并集
	ShootTriple
)

// String 返回射击模式名称
func (m ShootMode) String() string {
	switch m {
	case ShootSingle:
		return "single"
	case ShootDouble:
		return "double"
	case ShootTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// PlayerComponent 玩家组件
// 任意时刻最多只存在一个带有该组件的实体
type PlayerComponent struct {
	Enabled   bool      // 入场动画期间为 false：不能移动、射击，也不会受伤
	ShootMode ShootMode // 当前射击模式
}

// EntryAnimationComponent 玩家入场动画
// 玩家每帧上升 Step，直到 Y >= TargetY 后启用并移除该组件
type EntryAnimationComponent struct {
	TargetY float64
	Step    float64
}
