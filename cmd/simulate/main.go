// simulate 无窗口运行模拟核心，用于检查关卡节奏和长时间运行的稳定性
//
// 玩家由一个简单的自动驾驶控制：左右往返，按固定间隔射击，每帧重申射击模式（重生后恢复）。
//
//	go run ./cmd/simulate -seconds 60 -level levels/stage1.yaml -verbose
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rotisserie/eris"

	"github.com/tora0091/shoot-game/pkg/components"
	"github.com/tora0091/shoot-game/pkg/config"
	"github.com/tora0091/shoot-game/pkg/ecs"
	"github.com/tora0091/shoot-game/pkg/logging"
	"github.com/tora0091/shoot-game/pkg/scenes"
	"github.com/tora0091/shoot-game/pkg/systems"
)

const tps = 60

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	level     = flag.String("level", "", "关卡脚本 YAML 路径，为空使用内嵌第一关")
	seed      = flag.Int64("seed", 1, "随机种子")
	seconds   = flag.Int("seconds", 60, "模拟的游戏秒数")
	fireEvery = flag.Int("fire-every", 10, "每隔多少帧射击一次，0 表示不射击")
	mode      = flag.Int("mode", 1, "射击模式 1/2/3")
)

func main() {
	flag.Parse()

	logger := logging.New(*verbose, os.Stderr)

	var levelCfg *config.LevelConfig
	if *level != "" {
		cfg, err := config.LoadLevelConfig(*level)
		if err != nil {
			logger.Fatal().Msg(eris.ToString(err, true))
		}
		levelCfg = cfg
	}

	scene := scenes.NewGameScene(config.DefaultGameConfig(), levelCfg, *seed, logger)
	em := scene.EntityManager()
	gs := scene.State()

	deltaTime := 1.0 / tps
	frames := *seconds * tps

	deaths := 0
	peakEntities := 0
	wasPending := gs.Status.RespawnPending

	for frame := 0; frame < frames; frame++ {
		scene.Step(deltaTime, autopilot(frame))

		if gs.Status.RespawnPending && !wasPending {
			deaths++
		}
		wasPending = gs.Status.RespawnPending
		peakEntities = max(peakEntities, em.EntityCount())
	}

	fmt.Printf("level:     %s (%s)\n", gs.Level.ID, gs.Level.SpawnMode)
	fmt.Printf("time:      %ds (%d frames)\n", gs.Timer.Seconds, gs.Frame)
	fmt.Printf("score:     %06d\n", gs.Status.DisplayScore())
	fmt.Printf("deaths:    %d\n", deaths)
	fmt.Printf("waves:     %d/%d fired\n", gs.Schedule.Len()-gs.Schedule.Pending(), gs.Schedule.Len())
	fmt.Printf("entities:  %d alive, peak %d\n", em.EntityCount(), peakEntities)
	fmt.Printf("enemies:   %d alive\n", len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)))
}

// autopilot 每 2 秒换一次方向，按固定间隔射击
func autopilot(frame int) systems.InputState {
	goingLeft := (frame/(2*tps))%2 == 0
	return systems.InputState{
		Left:       goingLeft,
		Right:      !goingLeft,
		Fire:       *fireEvery > 0 && frame%*fireEvery == 0,
		ModeSingle: *mode == 1,
		ModeDouble: *mode == 2,
		ModeTriple: *mode == 3,
	}
}
