// validate_level 检查关卡脚本能否被游戏加载
//
// 用法:
//
//	go run ./cmd/validate_level levels/stage2.yaml [more.yaml ...]
//
// 不带参数时检查内嵌的第一关。任一文件无效时以状态码 1 退出。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rotisserie/eris"

	"github.com/tora0091/shoot-game/pkg/config"
)

var verbose = flag.Bool("verbose", false, "打印完整的错误堆栈")

func main() {
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		report("<embedded>", config.DefaultLevelConfig())
		return
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadLevelConfig(path)
		if err != nil {
			fmt.Printf("FAIL: %s - %s\n", path, eris.ToString(err, *verbose))
			failed++
			continue
		}
		report(path, cfg)
	}

	if failed > 0 {
		fmt.Printf("%d of %d level files invalid\n", failed, len(paths))
		os.Exit(1)
	}
}

func report(path string, cfg *config.LevelConfig) {
	fmt.Printf("OK: %s - ID=%s, SpawnMode=%s, Waves=%d\n", path, cfg.ID, cfg.SpawnMode, len(cfg.Waves))
	for _, w := range cfg.Waves {
		fmt.Printf("     %3ds  %-20s %s\n", w.Second, w.ID, w.Formation)
	}
	if cfg.SpawnMode == config.SpawnModeRandom {
		rs := cfg.RandomSpawn
		fmt.Printf("     random: every %.1fs, max %d, shoot %.1f-%.1fs\n",
			rs.Interval, rs.Max, rs.ShootIntervalMin, rs.ShootIntervalMax)
	}
}
