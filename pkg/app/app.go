// Package app 把模拟核心接入 Ebitengine
//
// App 实现 ebiten.Game：每个 tick 轮询键盘、执行一帧模拟，
// 固定频率的玩家边界约束由场景的 Step 补足。
package app

import (
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/render"
	"github.com/tora0091/shoot-game/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	Game  config.GameConfig
	Level *config.LevelConfig
	Seed  int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene    *scenes.GameScene
	renderer *render.RenderSystem
	log      zerolog.Logger

	width  int
	height int
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config, logger zerolog.Logger) (*App, error) {
	if cfg.Game.WindowWidth <= 0 || cfg.Game.WindowHeight <= 0 {
		return nil, eris.Errorf("invalid window size %vx%v", cfg.Game.WindowWidth, cfg.Game.WindowHeight)
	}
	if cfg.Game.FixedTickRate <= 0 {
		return nil, eris.Errorf("fixed tick rate must be positive, got %v", cfg.Game.FixedTickRate)
	}

	logger = logger.With().Str("session", uuid.NewString()).Logger()
	scene := scenes.NewGameScene(cfg.Game, cfg.Level, cfg.Seed, logger)

	return &App{
		scene:    scene,
		renderer: render.NewRenderSystem(scene.EntityManager(), scene.State()),
		log:      logger.With().Str("system", "App").Logger(),
		width:    int(cfg.Game.WindowWidth),
		height:   int(cfg.Game.WindowHeight),
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	in := pollInput()
	if in.Quit {
		a.log.Info().Float64("score", a.scene.State().Status.Score).Msg("quit requested")
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Step(deltaTime, in)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// ResolveSeed 0 表示未指定种子，改用当前时间
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
