package components

// PositionComponent 实体的世界坐标
// 原点位于游戏区域中心，+Y 向上；Z 仅用于渲染层级，不参与物理
type PositionComponent struct {
	X float64
	Y float64
	Z float64
}

// VelocityComponent 实体的速度
// 单位为“每帧”世界单位，运动系统每帧直接累加，不乘 deltaTime
type VelocityComponent struct {
	VX float64
	VY float64
}
