package components

import "image/color"

// ShapeKind 可见图元类型
type ShapeKind int

const (
	// ShapeCircle 实心圆，半径取 Width/2
	ShapeCircle ShapeKind = iota
	// ShapeCross 两个交叉旋转的矩形（爆炸标记）
	ShapeCross
)

// ShapeComponent 渲染层绘制的图元描述
// 模拟核心只负责附加该组件，具体绘制由 render 包完成
type ShapeComponent struct {
	Kind     ShapeKind
	Width    float64
	Height   float64
	Rotation float64 // 弧度
	Color    color.RGBA
}
