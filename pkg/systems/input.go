package systems

// InputState 一帧的输入快照
//
// 由宿主（pkg/app）从键盘轮询填充后传入场景。
// 方向键为“按住”状态，其余为“刚按下”的边沿。
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Fire       bool
	SpeedUp    bool
	SpeedDown  bool
	ModeSingle bool
	ModeDouble bool
	ModeTriple bool

	Quit bool
}
