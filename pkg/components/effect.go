package components

import "github.com/tora0091/shoot-game/pkg/clock"

// EffectComponent 短暂的视觉效果（击中爆炸标记）
// Lifetime 为单次计时器，完成后由 EffectSystem 销毁实体
type EffectComponent struct {
	Lifetime clock.Timer
}
