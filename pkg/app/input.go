package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tora0091/shoot-game/pkg/systems"
)

// pollInput 读取本 tick 的键盘状态
// 方向键取按住状态，其余取刚按下的边沿
func pollInput() systems.InputState {
	return systems.InputState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),

		Fire:       inpututil.IsKeyJustPressed(ebiten.KeySpace),
		SpeedUp:    inpututil.IsKeyJustPressed(ebiten.KeyA),
		SpeedDown:  inpututil.IsKeyJustPressed(ebiten.KeyZ),
		ModeSingle: inpututil.IsKeyJustPressed(ebiten.KeyDigit1),
		ModeDouble: inpututil.IsKeyJustPressed(ebiten.KeyDigit2),
		ModeTriple: inpututil.IsKeyJustPressed(ebiten.KeyDigit3),

		Quit: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
