// Package render 用 Ebitengine 绘制模拟核心的实体
//
// 只读取组件，不修改任何模拟状态。
package render

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/game"
)

var backgroundColor = color.RGBA{R: 16, G: 16, B: 32, A: 255}

// RenderSystem 按 Z 层级绘制所有带 ShapeComponent 的实体，并显示分数
type RenderSystem struct {
	em *ecs.EntityManager
	gs *game.GameState

	// 复用的排序缓冲，避免每帧分配
	drawList []drawItem
}

type drawItem struct {
	id ecs.EntityID
	z  float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState) *RenderSystem {
	return &RenderSystem{
		em:       em,
		gs:       gs,
		drawList: make([]drawItem, 0, 256),
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	ids := ecs.GetEntitiesWith2[*components.ShapeComponent, *components.PositionComponent](s.em)

	s.drawList = s.drawList[:0]
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		s.drawList = append(s.drawList, drawItem{id: id, z: pos.Z})
	}
	// Z 小的先画，同层按实体ID保持稳定
	slices.SortStableFunc(s.drawList, func(a, b drawItem) int {
		switch {
		case a.z < b.z:
			return -1
		case a.z > b.z:
			return 1
		default:
			return 0
		}
	})

	for _, item := range s.drawList {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, item.id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](s.em, item.id)
		sx, sy := s.gs.Limits.ToScreen(pos.X, pos.Y)
		drawShape(screen, shape, sx, sy)
	}

	s.drawHUD(screen)
}

func drawShape(screen *ebiten.Image, shape *components.ShapeComponent, sx, sy float64) {
	switch shape.Kind {
	case components.ShapeCircle:
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(shape.Width/2), shape.Color, true)

	case components.ShapeCross:
		// 两个 Width×Height 的矩形，第二个相对第一个旋转 90 度
		drawRotatedBar(screen, sx, sy, shape.Width, shape.Height, shape.Rotation, shape.Color)
		drawRotatedBar(screen, sx, sy, shape.Width, shape.Height, shape.Rotation+math.Pi/2, shape.Color)
	}
}

// drawRotatedBar 以 (sx, sy) 为中心画一个旋转的实心矩形
// 用线宽为 width、长度为 height 的线段表示
func drawRotatedBar(screen *ebiten.Image, sx, sy, width, height, rotation float64, clr color.Color) {
	half := height / 2
	dx := math.Sin(rotation) * half
	dy := math.Cos(rotation) * half
	vector.StrokeLine(screen,
		float32(sx-dx), float32(sy-dy),
		float32(sx+dx), float32(sy+dy),
		float32(width), clr, true)
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %06d", s.gs.Status.DisplayScore()), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TIME %3d  SPEED x%.2f", s.gs.Timer.Seconds, s.gs.Speed.Value), 8, 24)
}
