package systems

import (
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// RandomSpawnSystem 计数器限制的随机生成
// 每次计时器完成且名额未满时生成一个敌人；敌人被击毁或离开区域时归还名额
type RandomSpawnSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewRandomSpawnSystem 创建随机生成系统
func NewRandomSpawnSystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *RandomSpawnSystem {
	return &RandomSpawnSystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "RandomSpawnSystem"),
	}
}

// Update 推进生成计时器，到期时尝试占用名额并生成敌人
func (s *RandomSpawnSystem) Update(deltaTime float64) {
	if s.gs.Level.SpawnMode != config.SpawnModeRandom {
		return
	}

	// 名额已满时计时器暂停，归还名额后从暂停处继续计时
	spawner := &s.gs.Spawner
	if !spawner.Available() {
		return
	}
	if !spawner.Timer.Advance(deltaTime) {
		return
	}
	spawner.Acquire()

	id := entities.NewRandomEnemy(s.em, s.gs)
	s.log.Debug().
		Uint64("entity", uint64(id)).
		Int("counter", spawner.Counter).
		Int("max", spawner.Max).
		Msg("random enemy spawned")
}

// releaseEnemySlot 若敌人占用了随机生成名额则归还
// 只应在实体本次被新标记销毁时调用，保证每个名额只归还一次
func releaseEnemySlot(em *ecs.EntityManager, gs *game.GameState, id ecs.EntityID) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok || !enemy.Counted {
		return
	}
	enemy.Counted = false
	gs.Spawner.Release()
}
