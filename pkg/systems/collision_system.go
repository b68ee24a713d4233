package systems

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/entities"
	"github.com/tora0091/shoot-game/pkg/game"
	"github.com/tora0091/shoot-game/pkg/logging"
)

// CollisionSystem 碰撞检测与结算
//
// 规则按顺序执行：
//  1. 玩家子弹 × 敌人：双方销毁，加分，敌人处显示击中标记
//  2. 敌人子弹 × 玩家（仅玩家已启用）：双方销毁，玩家处显示标记，开始重生
//  3. 玩家 × 敌人（仅玩家已启用）：双方销毁，两处标记，开始重生
//
// 销毁是延迟的，已标记的实体不会被后续检查再次处理，
// 所以同一帧重复执行 Update 不会产生任何变化。
type CollisionSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	log zerolog.Logger
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态（分数、重生、随机生成名额）
//   - logger: 父日志器
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, logger zerolog.Logger) *CollisionSystem {
	return &CollisionSystem{
		em:  em,
		gs:  gs,
		log: logging.ForSystem(logger, "CollisionSystem"),
	}
}

// Overlaps 以半径为半边长的轴对齐方框是否重叠（严格小于，恰好相切不算碰撞）
func Overlaps(pos1 *components.PositionComponent, r1 float64, pos2 *components.PositionComponent, r2 float64) bool {
	reach := r1 + r2
	return math.Abs(pos1.X-pos2.X) < reach && math.Abs(pos1.Y-pos2.Y) < reach
}

// Update 执行一轮碰撞结算
func (s *CollisionSystem) Update() {
	s.playerShotsVsEnemies()

	playerID, ok := entities.FindPlayer(s.em)
	if !ok {
		return
	}
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, playerID)
	if !player.Enabled {
		return
	}

	if s.enemyShotsVsPlayer(playerID) {
		return
	}
	s.playerVsEnemies(playerID)
}

// body 取得实体的位置和碰撞半径
func (s *CollisionSystem) body(id ecs.EntityID) (*components.PositionComponent, float64, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return nil, 0, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return nil, 0, false
	}
	return pos, col.Radius, true
}

func (s *CollisionSystem) projectiles(owner components.ProjectileOwner) []ecs.EntityID {
	all := ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)

	ids := all[:0]
	for _, id := range all {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if proj.Owner == owner {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *CollisionSystem) enemies() []ecs.EntityID {
	return ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)
}

func (s *CollisionSystem) playerShotsVsEnemies() {
	enemyIDs := s.enemies()

	for _, shotID := range s.projectiles(components.FromPlayer) {
		shotPos, shotR, _ := s.body(shotID)

		for _, enemyID := range enemyIDs {
			if !s.em.IsAlive(enemyID) {
				continue
			}
			enemyPos, enemyR, _ := s.body(enemyID)
			if !Overlaps(shotPos, shotR, enemyPos, enemyR) {
				continue
			}

			enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, enemyID)
			s.em.DestroyEntity(shotID)
			s.em.DestroyEntity(enemyID)
			s.gs.Status.AddScore(enemy.Point)
			entities.NewBangEffect(s.em, s.gs, enemyPos.X, enemyPos.Y)
			releaseEnemySlot(s.em, s.gs, enemyID)

			s.log.Debug().
				Uint64("enemy", uint64(enemyID)).
				Str("formation", enemy.Formation).
				Float64("score", s.gs.Status.Score).
				Msg("enemy destroyed")
			break
		}
	}
}

// enemyShotsVsPlayer 返回玩家是否被击中
func (s *CollisionSystem) enemyShotsVsPlayer(playerID ecs.EntityID) bool {
	playerPos, playerR, ok := s.body(playerID)
	if !ok {
		return false
	}

	for _, shotID := range s.projectiles(components.FromEnemy) {
		shotPos, shotR, _ := s.body(shotID)
		if !Overlaps(shotPos, shotR, playerPos, playerR) {
			continue
		}

		s.em.DestroyEntity(shotID)
		s.killPlayer(playerID, playerPos)
		s.log.Debug().Uint64("shot", uint64(shotID)).Msg("player hit by enemy shot")
		return true
	}
	return false
}

func (s *CollisionSystem) playerVsEnemies(playerID ecs.EntityID) {
	playerPos, playerR, ok := s.body(playerID)
	if !ok {
		return
	}

	for _, enemyID := range s.enemies() {
		enemyPos, enemyR, _ := s.body(enemyID)
		if !Overlaps(playerPos, playerR, enemyPos, enemyR) {
			continue
		}

		s.em.DestroyEntity(enemyID)
		entities.NewBangEffect(s.em, s.gs, enemyPos.X, enemyPos.Y)
		releaseEnemySlot(s.em, s.gs, enemyID)
		s.killPlayer(playerID, playerPos)
		s.log.Debug().Uint64("enemy", uint64(enemyID)).Msg("player collided with enemy")
		return
	}
}

// killPlayer 销毁玩家并开始重生倒计时
func (s *CollisionSystem) killPlayer(playerID ecs.EntityID, pos *components.PositionComponent) {
	if !s.em.DestroyEntity(playerID) {
		return
	}
	entities.NewBangEffect(s.em, s.gs, pos.X, pos.Y)
	s.gs.Status.BeginRespawn(s.gs.Config.PlayerRespawnDelay)
}
