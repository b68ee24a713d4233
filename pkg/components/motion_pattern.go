package components

import (
	"math"

	"github.com/tora0091/shoot-game/pkg/clock"
)

// MotionPattern 敌人运动模式的状态（带标签的联合体）
//
// 每个变体只携带自己需要的辅助状态，MotionPatternSystem 用一个
// type switch 分发。一个实体最多携带一个 MotionPatternComponent。
type MotionPattern interface {
	patternName() string
}

// MotionPatternComponent 敌人运动模式组件
type MotionPatternComponent struct {
	Pattern MotionPattern
}

// PatternName 返回模式名称（日志、测试用）
func PatternName(p MotionPattern) string {
	if p == nil {
		return "none"
	}
	return p.patternName()
}

// SineLateral 横向速度按 A·sin(ωt) 变化，左右缓慢摆动
type SineLateral struct {
	Amplitude float64
	Frequency float64 // 角频率 ω（弧度/秒）
}

// RandomWalk 横向速度按节奏从 [Min, Max) 均匀重新采样
type RandomWalk struct {
	Min     float64
	Max     float64
	Cadence clock.Timer // 循环计时器
	Started bool        // 第一帧立即采样一次
}

// TriangleWave 计数器在一个周期内两次换向，横向速度呈三角波
type TriangleWave struct {
	Period    uint32  // 周期（帧）
	Step      float64 // 每帧速度增量
	Counter   uint32
	Direction float64 // +1 / -1
}

// Parabolic 纵向速度把实体拉向抛物线 y = A·x² + B·x + C
type Parabolic struct {
	A, B, C float64
}

// Orbit 围绕移动锚点做圆周运动
// 位置每帧直接由角度计算，锚点本身按 Drift 漂移
type Orbit struct {
	AnchorX          float64
	AnchorY          float64
	DriftX           float64
	DriftY           float64
	Radius           float64
	DegreesPerSecond float64
}

// OrbitAngle 返回 t 秒时的角度（弧度），角度按 mod 360 度回绕
func (o *Orbit) OrbitAngle(t float64) float64 {
	deg := math.Mod(t*o.DegreesPerSecond, 360)
	return deg * math.Pi / 180
}

// At 返回 t 秒时相对当前锚点的位置
func (o *Orbit) At(t float64) (float64, float64) {
	theta := o.OrbitAngle(t)
	return o.AnchorX + o.Radius*math.Cos(theta), o.AnchorY + o.Radius*math.Sin(theta)
}

// BounceStage 下落-停顿-反弹 的阶段
type BounceStage int

const (
	// BounceFalling 下落中
	BounceFalling BounceStage = iota
	// BounceWaiting 停在触发高度等待
	BounceWaiting
	// BounceResumed 已斜向离开
	BounceResumed
)

// BounceDescend 下落到 TriggerY 后停住，等待 Wait 完成，再斜向飞走
// 横向方向取决于停住时位于中线哪一侧
type BounceDescend struct {
	TriggerY    float64
	Wait        clock.Timer // 单次计时器
	ResumeSpeed float64
	Stage       BounceStage
}

// Point2 二维点
type Point2 struct {
	X, Y float64
}

// BezierPath 沿固定三次贝塞尔曲线来回运动
// 参数 u = (sin t + 1) / 2 在 [0,1] 之间往返
type BezierPath struct {
	P0, P1, P2, P3 Point2
}

// BezierParam 曲线参数 u = (sin t + 1) / 2
func BezierParam(t float64) float64 {
	return (math.Sin(t) + 1) / 2
}

// At 返回参数 u 处的曲线点
func (b *BezierPath) At(u float64) Point2 {
	v := 1 - u
	c0 := v * v * v
	c1 := 3 * v * v * u
	c2 := 3 * v * u * u
	c3 := u * u * u
	return Point2{
		X: c0*b.P0.X + c1*b.P1.X + c2*b.P2.X + c3*b.P3.X,
		Y: c0*b.P0.Y + c1*b.P1.Y + c2*b.P2.Y + c3*b.P3.Y,
	}
}

// Hover 在基准高度上方做 |A·sin t| 的浮动，横向随速度漂移
type Hover struct {
	BaseY     float64
	Amplitude float64
}

func (*SineLateral) patternName() string   { return "sine_lateral" }
func (*RandomWalk) patternName() string    { return "random_walk" }
func (*TriangleWave) patternName() string  { return "triangle_wave" }
func (*Parabolic) patternName() string     { return "parabolic" }
func (*Orbit) patternName() string         { return "orbit" }
func (*BounceDescend) patternName() string { return "bounce_descend" }
func (*BezierPath) patternName() string    { return "bezier_path" }
func (*Hover) patternName() string         { return "hover" }
