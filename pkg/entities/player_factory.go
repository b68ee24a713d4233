package entities

import (
	"image/color"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
)

// 各类实体的渲染层级
const (
	layerShot   = 0.0
	layerEffect = 1.0
	layerEnemy  = 9.0
	layerPlayer = 10.0
)

var (
	colorPlayer     = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorEnemy      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorPlayerShot = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorEnemyShot  = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	colorBang       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// NewPlayer 创建玩家实体
//
// 玩家出现在底边中央 (0, Bottom + r)，处于禁用状态并带有入场动画：
// 每帧上升 PlayerEntryStep，到达 Bottom + PlayerEntryRise 后才会启用。
//
// 参数:
//   - em: 实体管理器
//   - gs: 游戏状态（提供边界和玩家参数）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayer(em *ecs.EntityManager, gs *game.GameState) ecs.EntityID {
	cfg := gs.Config
	r := cfg.PlayerRadius

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{
		X: 0,
		Y: gs.Limits.Bottom + r,
		Z: layerPlayer,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Enabled:   false,
		ShootMode: components.ShootSingle,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{Radius: r})
	ecs.AddComponent(em, id, &components.EntryAnimationComponent{
		TargetY: gs.Limits.Bottom + cfg.PlayerEntryRise,
		Step:    cfg.PlayerEntryStep,
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{
		Kind:   components.ShapeCircle,
		Width:  r * 2,
		Height: r * 2,
		Color:  colorPlayer,
	})

	return id
}

// FindPlayer 返回存活的玩家实体，不存在时 ok 为 false
func FindPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
