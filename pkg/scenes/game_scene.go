package scenes

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
	"github.com/tora0091/shoot-game/pkg/systems"
)

// GameScene 一局游戏的模拟核心
//
// 持有实体管理器、游戏状态和全部系统，并以固定顺序执行：
//
//	计时 → 玩家状态/输入 → 生成 → 敌人射击 → 运动 → 碰撞 → 越界清理 → 效果 → 清除已标记实体
//
// 玩家边界约束以固定频率执行：宿主调用 Step，由场景内的累加器补足 FixedUpdate。
// 场景本身不依赖 Ebitengine，可以在测试中直接驱动。
type GameScene struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger

	fixedStep   float64
	accumulator float64

	gameTimerSystem     *systems.GameTimerSystem
	playerStatusSystem  *systems.PlayerStatusSystem
	playerControlSystem *systems.PlayerControlSystem
	waveScheduleSystem  *systems.WaveScheduleSystem
	randomSpawnSystem   *systems.RandomSpawnSystem
	enemyShootSystem    *systems.EnemyShootSystem
	motionPatternSystem *systems.MotionPatternSystem
	movementSystem      *systems.MovementSystem
	collisionSystem     *systems.CollisionSystem
	boundarySystem      *systems.BoundarySystem
	effectSystem        *systems.EffectSystem
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - cfg: 游戏参数
//   - level: 关卡脚本，nil 时使用内嵌默认关卡
//   - seed: 随机种子
//   - logger: 父日志器，各系统从它派生子日志器
func NewGameScene(cfg config.GameConfig, level *config.LevelConfig, seed int64, logger zerolog.Logger) *GameScene {
	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg, level, seed)

	tickRate := cfg.FixedTickRate
	if tickRate <= 0 {
		tickRate = config.FixedTickRate
	}

	scene := &GameScene{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "GameScene"),

		fixedStep: 1.0 / tickRate,

		gameTimerSystem:     systems.NewGameTimerSystem(gs, logger),
		playerStatusSystem:  systems.NewPlayerStatusSystem(em, gs, logger),
		playerControlSystem: systems.NewPlayerControlSystem(em, gs, logger),
		waveScheduleSystem:  systems.NewWaveScheduleSystem(em, gs, logger),
		randomSpawnSystem:   systems.NewRandomSpawnSystem(em, gs, logger),
		enemyShootSystem:    systems.NewEnemyShootSystem(em, gs, logger),
		motionPatternSystem: systems.NewMotionPatternSystem(em, gs, logger),
		movementSystem:      systems.NewMovementSystem(em),
		collisionSystem:     systems.NewCollisionSystem(em, gs, logger),
		boundarySystem:      systems.NewBoundarySystem(em, gs, logger),
		effectSystem:        systems.NewEffectSystem(em),
	}

	scene.log.Info().
		Str("level", gs.Level.ID).
		Str("spawnMode", gs.Level.SpawnMode).
		Int("waves", gs.Schedule.Len()).
		Int64("seed", seed).
		Msg("game scene created")

	return scene
}

// Update 执行一帧模拟
func (s *GameScene) Update(deltaTime float64, in systems.InputState) {
	s.gameTimerSystem.Update(deltaTime)

	s.playerStatusSystem.Update(deltaTime)
	s.playerControlSystem.Update(in)

	s.waveScheduleSystem.Update()
	s.randomSpawnSystem.Update(deltaTime)
	s.enemyShootSystem.Update(deltaTime)

	s.motionPatternSystem.Update(deltaTime)
	s.movementSystem.Update()

	s.collisionSystem.Update()
	s.boundarySystem.Update()
	s.effectSystem.Update(deltaTime)

	s.em.RemoveMarkedEntities()
}

// Step 执行一帧模拟，并按累积时间补足本帧应执行的固定步长更新
// 返回本帧执行的 FixedUpdate 次数
func (s *GameScene) Step(deltaTime float64, in systems.InputState) int {
	s.Update(deltaTime, in)

	fixed := 0
	s.accumulator += deltaTime
	for s.accumulator >= s.fixedStep {
		s.FixedUpdate()
		s.accumulator -= s.fixedStep
		fixed++
	}
	return fixed
}

// FixedUpdate 固定步长更新：把玩家约束在游戏区域内
func (s *GameScene) FixedUpdate() {
	s.boundarySystem.FixedUpdate()
}

// EntityManager 返回场景的实体管理器（渲染使用）
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.em
}

// State 返回场景的游戏状态
func (s *GameScene) State() *game.GameState {
	return s.gs
}
