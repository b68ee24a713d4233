package config

// 游戏默认参数
// 世界单位与像素 1:1，原点位于窗口中心
const (
	// DefaultWindowWidth 默认窗口宽度（像素）
	DefaultWindowWidth = 500.0
	// DefaultWindowHeight 默认窗口高度（像素）
	DefaultWindowHeight = 610.0
	// WindowSizeMargin 自动销毁的边距：实体完全离开可见区域后才移除
	WindowSizeMargin = 100.0

	// PlayerRadius 玩家半径
	PlayerRadius = 20.0
	// PlayerVelocity 玩家移动速度（每帧）
	PlayerVelocity = 3.0
	// PlayerEntryStep 入场动画每帧上升距离
	PlayerEntryStep = 5.0
	// PlayerEntryRise 入场动画的启用线距离底边的高度
	PlayerEntryRise = 168.0
	// PlayerRespawnDelay 玩家被击毁后重生的延迟（秒）
	PlayerRespawnDelay = 3.0
	// PlayerFirstSpawnDelay 开局第一次出场的延迟（秒）
	PlayerFirstSpawnDelay = 1.0

	// EnemyRadius 敌人半径
	EnemyRadius = 15.0
	// EnemyPoint 默认击毁得分
	EnemyPoint = 1.0

	// ShootRadius 子弹半径
	ShootRadius = 5.0
	// ShootVelocity 子弹基础速度（每帧），实际速度再乘以速度倍率
	ShootVelocity = 3.0

	// BangLifetime 击中效果的显示时长（秒）
	BangLifetime = 0.5

	// SpeedUpFactor / SpeedDownFactor 速度倍率调整系数
	SpeedUpFactor   = 1.2
	SpeedDownFactor = 0.8

	// GameTimerInterval 游戏秒计时器的周期（秒）
	GameTimerInterval = 1.0

	// FixedTickRate 固定步长更新频率（Hz），用于玩家边界约束
	FixedTickRate = 64.0
)

// GameConfig 运行时游戏参数
// 由默认值、环境变量和命令行参数依次覆盖得到
type GameConfig struct {
	WindowWidth  float64
	WindowHeight float64
	WindowMargin float64

	PlayerRadius          float64
	PlayerVelocity        float64
	PlayerEntryStep       float64
	PlayerEntryRise       float64
	PlayerRespawnDelay    float64
	PlayerFirstSpawnDelay float64

	// GateShootingWhileDisabled 入场动画期间禁止射击
	GateShootingWhileDisabled bool

	EnemyRadius float64

	ShootRadius   float64
	ShootVelocity float64

	BangLifetime float64

	SpeedUpFactor   float64
	SpeedDownFactor float64

	GameTimerInterval float64
	FixedTickRate     float64
}

// DefaultGameConfig 返回默认游戏参数
func DefaultGameConfig() GameConfig {
	return GameConfig{
		WindowWidth:               DefaultWindowWidth,
		WindowHeight:              DefaultWindowHeight,
		WindowMargin:              WindowSizeMargin,
		PlayerRadius:              PlayerRadius,
		PlayerVelocity:            PlayerVelocity,
		PlayerEntryStep:           PlayerEntryStep,
		PlayerEntryRise:           PlayerEntryRise,
		PlayerRespawnDelay:        PlayerRespawnDelay,
		PlayerFirstSpawnDelay:     PlayerFirstSpawnDelay,
		GateShootingWhileDisabled: true,
		EnemyRadius:               EnemyRadius,
		ShootRadius:               ShootRadius,
		ShootVelocity:             ShootVelocity,
		BangLifetime:              BangLifetime,
		SpeedUpFactor:             SpeedUpFactor,
		SpeedDownFactor:           SpeedDownFactor,
		GameTimerInterval:         GameTimerInterval,
		FixedTickRate:             FixedTickRate,
	}
}

// ApplyEnv 用环境变量中的非零值覆盖参数
func (c *GameConfig) ApplyEnv(env EnvConfig) {
	if env.WindowWidth > 0 {
		c.WindowWidth = float64(env.WindowWidth)
	}
	if env.WindowHeight > 0 {
		c.WindowHeight = float64(env.WindowHeight)
	}
}
