package components

// CollisionComponent 定义实体的碰撞范围
// 碰撞盒是以实体位置为中心、边长为 2*Radius 的正方形（AABB 近似）
type CollisionComponent struct {
	Radius float64 // 碰撞半径（世界单位），同时也是渲染圆的半径
}

// AutoDespawnComponent 标记实体越出游戏区域（加边距）后自动销毁
// 敌人和子弹总是带有该标记
type AutoDespawnComponent struct{}
