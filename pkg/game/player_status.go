package game

import (
	"math"

	"github.com/tora0091/shoot-game/pkg/clock"
)

// PlayerStatus 玩家重生状态与分数
type PlayerStatus struct {
	// RespawnPending 计时器完成后需要创建新的玩家
	RespawnPending bool
	// RespawnTimer 重生延迟，单次计时器
	RespawnTimer clock.Timer
	// Score 累计分数
	Score float64
}

// BeginRespawn 标记等待重生并（重新）启动重生计时器
func (ps *PlayerStatus) BeginRespawn(delay float64) {
	ps.RespawnPending = true
	ps.RespawnTimer.Start(delay, clock.Once)
}

// AddScore 累加分数
func (ps *PlayerStatus) AddScore(point float64) {
	ps.Score += point
}

// DisplayScore 显示用的整数分数
func (ps *PlayerStatus) DisplayScore() int {
	return int(math.Floor(ps.Score))
}

// SpeedControl 全局速度倍率，作用于玩家移动和所有子弹速度
type SpeedControl struct {
	Value float64
}

// Scale 按系数调整倍率，返回新值
func (sc *SpeedControl) Scale(factor float64) float64 {
	sc.Value *= factor
	return sc.Value
}

// GameTimer 整秒计时器，为波次提供与帧率无关的时钟
type GameTimer struct {
	Timer   clock.Timer
	Seconds uint64
}

// NewGameTimer 创建周期为 interval 秒的计时器
func NewGameTimer(interval float64) GameTimer {
	return GameTimer{Timer: clock.NewTimer(interval, clock.Repeating)}
}

// Tick 推进计时器，返回本次增加的秒数
func (gt *GameTimer) Tick(deltaTime float64) uint64 {
	if !gt.Timer.Advance(deltaTime) {
		return 0
	}
	n := uint64(gt.Timer.TimesFinishedThisTick())
	gt.Seconds += n
	return n
}

// EnemySpawnCounter 随机生成器的名额计数
type EnemySpawnCounter struct {
	Counter int
	Max     int
	Timer   clock.Timer
}

// NewEnemySpawnCounter 创建名额计数器，interval 为生成间隔（秒）
func NewEnemySpawnCounter(max int, interval float64) EnemySpawnCounter {
	return EnemySpawnCounter{
		Max:   max,
		Timer: clock.NewTimer(interval, clock.Repeating),
	}
}

// Available 是否还有空余名额
func (c *EnemySpawnCounter) Available() bool {
	return c.Counter < c.Max
}

// Acquire 占用一个名额，没有名额时返回 false
func (c *EnemySpawnCounter) Acquire() bool {
	if !c.Available() {
		return false
	}
	c.Counter++
	return true
}

// Release 归还一个名额，计数不会小于 0
func (c *EnemySpawnCounter) Release() {
	if c.Counter > 0 {
		c.Counter--
	}
}
