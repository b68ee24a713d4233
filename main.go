package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/tora0091/shoot-game/pkg/app"
	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/logging"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息（覆盖 SHOOT_VERBOSE）")
	level   = flag.String("level", "", "关卡脚本 YAML 路径，为空使用内嵌第一关（覆盖 SHOOT_LEVEL）")
	seed    = flag.Int64("seed", 0, "随机种子，0 表示按当前时间（覆盖 SHOOT_SEED）")
)

func main() {
	flag.Parse()

	env, err := config.LoadEnvConfig()
	if err != nil {
		// 日志器尚未按 verbose 配置，先用默认级别报告
		logger := logging.New(false, os.Stderr)
		logger.Fatal().Msg(eris.ToString(err, true))
	}

	set := visitedFlags()
	if set["verbose"] {
		env.Verbose = *verbose
	}
	if set["level"] {
		env.Level = *level
	}
	if set["seed"] {
		env.Seed = *seed
	}

	logger := logging.New(env.Verbose, os.Stderr)
	if err := run(env, logger); err != nil {
		logger.Fatal().Msg(eris.ToString(err, true))
	}
}

// visitedFlags 返回命令行中显式设置过的参数
func visitedFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func run(env config.EnvConfig, logger zerolog.Logger) error {
	gameCfg := config.DefaultGameConfig()
	gameCfg.ApplyEnv(env)

	var levelCfg *config.LevelConfig
	if env.Level != "" {
		loaded, err := config.LoadLevelConfig(env.Level)
		if err != nil {
			return eris.Wrap(err, "failed to load level")
		}
		levelCfg = loaded
	}

	gameApp, err := app.NewApp(app.Config{
		Game:  gameCfg,
		Level: levelCfg,
		Seed:  app.ResolveSeed(env.Seed),
	}, logger)
	if err != nil {
		return eris.Wrap(err, "failed to initialize game")
	}

	ebiten.SetWindowSize(int(gameCfg.WindowWidth), int(gameCfg.WindowHeight))
	ebiten.SetWindowTitle("Shoot Game")

	if err := ebiten.RunGame(gameApp); err != nil {
		return eris.Wrap(err, "game loop exited with error")
	}
	return nil
}
