package game

import (
	"math/rand"

	"github.com/tora0091/shoot-game/pkg/config"
)

// GameState 一局游戏的全部共享状态
//
// 不是单例：由场景创建后以指针传给每个系统的构造函数。
// 每个资源只由一个系统写入（分数、重生由碰撞/状态系统写，
// 速度倍率由玩家控制系统写，计划表由波次系统写），因此不需要加锁。
type GameState struct {
	Config config.GameConfig
	Level  *config.LevelConfig

	Limits   WindowSizeLimit   // 游戏区域边界，初始化后不再修改
	Status   PlayerStatus      // 重生与分数
	Speed    SpeedControl      // 全局速度倍率
	Timer    GameTimer         // 整秒计时（波次触发时钟）
	Schedule *EnemySchedule    // 波次计划表
	Spawner  EnemySpawnCounter // 随机生成器的名额计数

	// Elapsed 开局以来累计的秒数（运动模式的时间参数）
	Elapsed float64
	// Frame 已执行的帧数
	Frame uint64

	// Rand 本局使用的随机数源，固定种子可复现
	Rand *rand.Rand
}

// NewGameState 创建一局游戏的状态
//
// 参数:
//   - cfg: 游戏参数（窗口尺寸决定边界）
//   - level: 关卡脚本，nil 时使用内嵌默认关卡
//   - seed: 随机种子
func NewGameState(cfg config.GameConfig, level *config.LevelConfig, seed int64) *GameState {
	if level == nil {
		level = config.DefaultLevelConfig()
	}

	gs := &GameState{
		Config:   cfg,
		Level:    level,
		Limits:   NewWindowSizeLimit(cfg.WindowWidth, cfg.WindowHeight),
		Speed:    SpeedControl{Value: 1.0},
		Timer:    NewGameTimer(cfg.GameTimerInterval),
		Schedule: NewEnemySchedule(level.Waves),
		Spawner:  NewEnemySpawnCounter(level.RandomSpawn.Max, level.RandomSpawn.Interval),
		Rand:     rand.New(rand.NewSource(seed)),
	}

	// 开局时玩家同样走一次“重生”流程，带入场动画
	gs.Status.BeginRespawn(cfg.PlayerFirstSpawnDelay)

	return gs
}

// AdvanceClock 推进累计时间和帧计数，每帧由场景调用一次
func (gs *GameState) AdvanceClock(deltaTime float64) {
	if deltaTime > 0 {
		gs.Elapsed += deltaTime
	}
	gs.Frame++
}

// RandRange 返回 [min, max) 内的均匀随机数；max <= min 时返回 min
func (gs *GameState) RandRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + gs.Rand.Float64()*(max-min)
}

// ShootVelocity 当前速度倍率下的子弹速度
func (gs *GameState) ShootVelocity() float64 {
	return gs.Config.ShootVelocity * gs.Speed.Value
}

// PlayerVelocity 当前速度倍率下的玩家移动速度
func (gs *GameState) PlayerVelocity() float64 {
	return gs.Config.PlayerVelocity * gs.Speed.Value
}
