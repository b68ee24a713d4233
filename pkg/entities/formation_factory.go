package entities

import (
	"math"

	"github.com/tora0091/shoot-game/pkg/clock"
	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
)

// 编队参数
const (
	formationTopOffset = 30.0 // 编队出现在上边界外侧的距离
	formationDescent   = -0.5 // 大多数编队的下落速度（每帧）

	randomWalkRange   = 2.0
	randomWalkCadence = 0.5

	trianglePeriod = 200
	triangleStep   = 0.05

	orbitRadius           = 100.0
	orbitDegreesPerSecond = 100.0

	hoverSideOffset = 50.0
	hoverAmplitude  = 50.0
	hoverDrift      = 0.5

	bounceX           = 80.0
	bounceFallSpeed   = -2.0
	bounceTriggerY    = -100.0
	bounceWaitSeconds = 3.0
	bounceResumeSpeed = 3.0

	bezierHeight = 240.0

	parabolaA     = 0.006
	parabolaC     = -100.0
	parabolaEntry = 30.0
	parabolaSpeed = 1.5
)

// FormationFunc 在当前游戏状态下生成一个编队，返回生成的敌人
type FormationFunc func(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID

var formations = map[string]FormationFunc{
	config.FormationLineSine:       spawnLineSine,
	config.FormationCenterRandom:   spawnCenterRandom,
	config.FormationCenterTriangle: spawnCenterTriangle,
	config.FormationOrbit:          spawnOrbit,
	config.FormationSideHover:      spawnSideHover,
	config.FormationTwinBounce:     spawnTwinBounce,
	config.FormationBezierSwoop:    spawnBezierSwoop,
	config.FormationParabolaDive:   spawnParabolaDive,
}

// SpawnFormation 按名称生成编队
// 未知名称不生成任何实体（关卡加载时已校验过名称）
func SpawnFormation(em *ecs.EntityManager, gs *game.GameState, name string) []ecs.EntityID {
	fn, ok := formations[name]
	if !ok {
		return nil
	}
	return fn(em, gs)
}

// spawnLineSine 顶部一字排开五个，缓慢下落并左右摆动
func spawnLineSine(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	step := gs.Limits.Right / 3
	y := gs.Limits.Top + formationTopOffset

	ids := make([]ecs.EntityID, 0, 5)
	for _, x := range []float64{step, step * 2, 0, -step, -step * 2} {
		ids = append(ids, NewEnemy(em, gs, EnemySpec{
			X: x, Y: y, VY: formationDescent,
			Pattern:   &components.SineLateral{Amplitude: math.Pi, Frequency: 1},
			Formation: config.FormationLineSine,
		}))
	}
	return ids
}

// spawnCenterRandom 中央一个，横向速度随机游走
func spawnCenterRandom(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	return []ecs.EntityID{NewEnemy(em, gs, EnemySpec{
		X: 0, Y: gs.Limits.Top + formationTopOffset, VY: formationDescent,
		Pattern: &components.RandomWalk{
			Min:     -randomWalkRange,
			Max:     randomWalkRange,
			Cadence: clock.NewTimer(randomWalkCadence, clock.Repeating),
		},
		Formation: config.FormationCenterRandom,
	})}
}

// spawnCenterTriangle 中央一个，横向速度呈三角波
// 计数器从四分之一周期开始，速度在 0 附近对称摆动
func spawnCenterTriangle(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	return []ecs.EntityID{NewEnemy(em, gs, EnemySpec{
		X: 0, Y: gs.Limits.Top - formationTopOffset, VY: -1,
		Pattern: &components.TriangleWave{
			Period:    trianglePeriod,
			Step:      triangleStep,
			Counter:   trianglePeriod / 4,
			Direction: 1,
		},
		Formation: config.FormationCenterTriangle,
	})}
}

// spawnOrbit 围绕缓慢下降的锚点转圈
func spawnOrbit(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	orbit := &components.Orbit{
		AnchorX:          0,
		AnchorY:          gs.Limits.Top + formationTopOffset,
		DriftY:           formationDescent,
		Radius:           orbitRadius,
		DegreesPerSecond: orbitDegreesPerSecond,
	}
	x, y := orbit.At(gs.Elapsed)
	return []ecs.EntityID{NewEnemy(em, gs, EnemySpec{
		X: x, Y: y,
		Static:    true,
		Pattern:   orbit,
		Formation: config.FormationOrbit,
	})}
}

// spawnSideHover 从左右两侧交替进入五个，横向漂移并上下浮动
func spawnSideHover(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	left := gs.Limits.Left - hoverSideOffset
	right := gs.Limits.Right + hoverSideOffset

	ids := make([]ecs.EntityID, 0, 5)
	for i, y := range []float64{-200, -100, 0, 100, 200} {
		x, vx := left, hoverDrift
		if i%2 == 1 {
			x, vx = right, -hoverDrift
		}
		ids = append(ids, NewEnemy(em, gs, EnemySpec{
			X: x, Y: y, VX: vx,
			Pattern:   &components.Hover{BaseY: y, Amplitude: hoverAmplitude},
			Formation: config.FormationSideHover,
		}))
	}
	return ids
}

// spawnTwinBounce 两个并排快速下落，停顿后向外斜飞
func spawnTwinBounce(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	y := gs.Limits.Top + formationTopOffset

	ids := make([]ecs.EntityID, 0, 2)
	for _, x := range []float64{bounceX, -bounceX} {
		ids = append(ids, NewEnemy(em, gs, EnemySpec{
			X: x, Y: y, VY: bounceFallSpeed,
			Pattern: &components.BounceDescend{
				TriggerY:    bounceTriggerY,
				Wait:        clock.NewTimer(bounceWaitSeconds, clock.Once),
				ResumeSpeed: bounceResumeSpeed,
			},
			Formation: config.FormationTwinBounce,
		}))
	}
	return ids
}

// spawnBezierSwoop 沿贝塞尔曲线在左右两侧之间来回俯冲
func spawnBezierSwoop(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	x := gs.Limits.Right + gs.Config.EnemyRadius*2
	path := &components.BezierPath{
		P0: components.Point2{X: -x, Y: 0},
		P1: components.Point2{X: x * 2, Y: bezierHeight},
		P2: components.Point2{X: -x * 2, Y: bezierHeight},
		P3: components.Point2{X: x, Y: 0},
	}
	start := path.At(components.BezierParam(gs.Elapsed))
	return []ecs.EntityID{NewEnemy(em, gs, EnemySpec{
		X: start.X, Y: start.Y,
		Static:    true,
		Pattern:   path,
		Formation: config.FormationBezierSwoop,
	})}
}

// spawnParabolaDive 从左右上角各进入一个，沿 U 形抛物线俯冲后爬升
func spawnParabolaDive(em *ecs.EntityManager, gs *game.GameState) []ecs.EntityID {
	x := gs.Limits.Right + parabolaEntry
	curve := func(x float64) float64 { return parabolaA*x*x + parabolaC }

	ids := make([]ecs.EntityID, 0, 2)
	for _, side := range []float64{-1, 1} {
		sx := side * x
		ids = append(ids, NewEnemy(em, gs, EnemySpec{
			X: sx, Y: curve(sx), VX: -side * parabolaSpeed,
			Pattern:   &components.Parabolic{A: parabolaA, C: parabolaC},
			Formation: config.FormationParabolaDive,
		}))
	}
	return ids
}
