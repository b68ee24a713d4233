// Package clock 提供驱动所有定时行为的倒计时/循环计时器
//
// 计时器只是一个累加器：调用方每帧用经过的时间调用 Advance，
// 计时器报告本次调用是否跨过了时长边界。不读取系统时钟。
package clock

import "math"

// Mode 计时器模式
type Mode int

const (
	// Once 单次计时器：完成后保持完成状态，直到 Reset/Start
	Once Mode = iota
	// Repeating 循环计时器：完成后回绕继续计时
	Repeating
)

// String 返回模式名称（日志用）
func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Repeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// Timer 倒计时/循环计时器
//
// 时间单位为秒（float64），与帧 deltaTime 一致。
type Timer struct {
	Duration float64 // 时长（秒）
	Elapsed  float64 // 当前周期内已累积时间（秒）
	Mode     Mode

	finished      bool
	justFinished  bool
	timesFinished int
}

// NewTimer 创建并启动计时器
func NewTimer(duration float64, mode Mode) Timer {
	var t Timer
	t.Start(duration, mode)
	return t
}

// Start 以新的时长和模式（重新）启动计时器
func (t *Timer) Start(duration float64, mode Mode) {
	t.Duration = duration
	t.Mode = mode
	t.Reset()
}

// Reset 清零已累积时间与完成状态，保持时长和模式
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
	t.timesFinished = 0
}

// Advance 累积经过的时间，返回本次调用是否刚刚完成
//
// 循环模式下一次调用可能跨过多个周期，次数见 TimesFinishedThisTick。
// 负的 elapsed 视为 0。
func (t *Timer) Advance(elapsed float64) bool {
	if elapsed < 0 {
		elapsed = 0
	}
	t.justFinished = false
	t.timesFinished = 0

	switch t.Mode {
	case Repeating:
		// 非正时长的循环计时器每次推进都完成一次，避免无限回绕
		if t.Duration <= 0 {
			t.Elapsed = 0
			t.finished = true
			t.justFinished = true
			t.timesFinished = 1
			return true
		}
		t.Elapsed += elapsed
		if t.Elapsed >= t.Duration {
			t.timesFinished = int(t.Elapsed / t.Duration)
			t.Elapsed = math.Mod(t.Elapsed, t.Duration)
			t.finished = true
			t.justFinished = true
		} else {
			t.finished = false
		}

	default:
		if t.finished {
			return false
		}
		t.Elapsed += elapsed
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.justFinished = true
			t.timesFinished = 1
		}
	}

	return t.justFinished
}

// JustFinished 最近一次 Advance 是否跨过了时长边界
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished 单次模式：是否已完成；循环模式：最近一次 Advance 是否完成过
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinishedThisTick 最近一次 Advance 完成的周期数
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesFinished
}

// Remaining 距离下一次完成的剩余时间（秒）
func (t *Timer) Remaining() float64 {
	if t.Mode == Once && t.finished {
		return 0
	}
	return math.Max(t.Duration-t.Elapsed, 0)
}
