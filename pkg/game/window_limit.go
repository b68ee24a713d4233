package game

// WindowSizeLimit 游戏区域的四条边（世界坐标）
// 原点在窗口中心，由窗口尺寸一次性推导
type WindowSizeLimit struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// NewWindowSizeLimit 由窗口像素尺寸计算边界
func NewWindowSizeLimit(width, height float64) WindowSizeLimit {
	halfW := width / 2
	halfH := height / 2
	return WindowSizeLimit{
		Top:    halfH,
		Bottom: -halfH,
		Left:   -halfW,
		Right:  halfW,
	}
}

// Clamp 把中心点约束在内缩 radius 后的区域内
func (l WindowSizeLimit) Clamp(x, y, radius float64) (float64, float64) {
	if top := l.Top - radius; y > top {
		y = top
	}
	if bottom := l.Bottom + radius; y < bottom {
		y = bottom
	}
	if right := l.Right - radius; x > right {
		x = right
	}
	if left := l.Left + radius; x < left {
		x = left
	}
	return x, y
}

// IsOutside 点是否越出边界超过 margin
func (l WindowSizeLimit) IsOutside(x, y, margin float64) bool {
	return x > l.Right+margin ||
		x < l.Left-margin ||
		y > l.Top+margin ||
		y < l.Bottom-margin
}

// ToScreen 世界坐标转换为屏幕像素坐标（屏幕原点在左上角，+Y 向下）
func (l WindowSizeLimit) ToScreen(x, y float64) (float64, float64) {
	return x - l.Left, l.Top - y
}
