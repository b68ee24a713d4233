package config

import (
	_ "embed"
	"os"
	"slices"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// 敌人生成方式
const (
	// SpawnModeWaves 按游戏秒数触发的固定编队（默认）
	SpawnModeWaves = "waves"
	// SpawnModeRandom 计数器限制的随机位置循环生成
	SpawnModeRandom = "random"
)

// 编队名称
const (
	FormationLineSine       = "line_sine"
	FormationCenterRandom   = "center_random"
	FormationCenterTriangle = "center_triangle"
	FormationOrbit          = "orbit"
	FormationSideHover      = "side_hover"
	FormationTwinBounce     = "twin_bounce"
	FormationBezierSwoop    = "bezier_swoop"
	FormationParabolaDive   = "parabola_dive"
)

// KnownFormations 所有可用的编队名称
var KnownFormations = []string{
	FormationLineSine,
	FormationCenterRandom,
	FormationCenterTriangle,
	FormationOrbit,
	FormationSideHover,
	FormationTwinBounce,
	FormationBezierSwoop,
	FormationParabolaDive,
}

//go:embed levels/stage1.yaml
var defaultLevelYAML []byte

// LevelConfig 关卡脚本
// 描述敌人在什么时刻、以什么编队出现
type LevelConfig struct {
	ID          string            `yaml:"id"`          // 关卡ID，如 "stage-1"
	Name        string            `yaml:"name"`        // 关卡名称
	SpawnMode   string            `yaml:"spawnMode"`   // "waves" 或 "random"，默认 "waves"
	Enemy       EnemyConfig       `yaml:"enemy"`       // 编队敌人的通用参数
	Waves       []WaveConfig      `yaml:"waves"`       // 按秒触发的波次（waves 模式）
	RandomSpawn RandomSpawnConfig `yaml:"randomSpawn"` // 随机生成参数（random 模式）
}

// EnemyConfig 编队敌人的通用参数
type EnemyConfig struct {
	Point            float64 `yaml:"point"`            // 击毁得分，默认 1.0
	ShootIntervalMin float64 `yaml:"shootIntervalMin"` // 射击间隔下限（秒），默认 1.0
	ShootIntervalMax float64 `yaml:"shootIntervalMax"` // 射击间隔上限（秒，不含），默认 3.0
}

// WaveConfig 单个波次
// 游戏秒数 >= Second 时整个编队同时生成，每个波次只触发一次
type WaveConfig struct {
	ID        string `yaml:"id"`
	Second    uint64 `yaml:"second"`
	Formation string `yaml:"formation"`
}

// RandomSpawnConfig 计数器限制的随机生成参数
type RandomSpawnConfig struct {
	Interval         float64 `yaml:"interval"`         // 生成间隔（秒），默认 1.0
	Max              int     `yaml:"max"`              // 同时存在的上限，默认 10
	ShootIntervalMin float64 `yaml:"shootIntervalMin"` // 默认 1.0
	ShootIntervalMax float64 `yaml:"shootIntervalMax"` // 默认 5.0
}

// LoadLevelConfig 从YAML文件加载关卡配置
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read level config file %s", filepath)
	}

	levelConfig, err := ParseLevelConfig(data)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid level config in %s", filepath)
	}
	return levelConfig, nil
}

// ParseLevelConfig 解析YAML数据，应用默认值并校验
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, eris.Wrap(err, "failed to parse level config YAML")
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, err
	}
	return &levelConfig, nil
}

// DefaultLevelConfig 返回内嵌的第一关配置
func DefaultLevelConfig() *LevelConfig {
	levelConfig, err := ParseLevelConfig(defaultLevelYAML)
	if err != nil {
		// 内嵌文件随代码一起发布，解析失败属于构建错误
		panic(eris.ToString(err, true))
	}
	return levelConfig
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	if config.SpawnMode == "" {
		config.SpawnMode = SpawnModeWaves
	}

	if config.Enemy.Point == 0 {
		config.Enemy.Point = EnemyPoint
	}
	if config.Enemy.ShootIntervalMin == 0 {
		config.Enemy.ShootIntervalMin = 1.0
	}
	if config.Enemy.ShootIntervalMax == 0 {
		config.Enemy.ShootIntervalMax = 3.0
	}

	rs := &config.RandomSpawn
	if rs.Interval == 0 {
		rs.Interval = 1.0
	}
	if rs.Max == 0 {
		rs.Max = 10
	}
	if rs.ShootIntervalMin == 0 {
		rs.ShootIntervalMin = 1.0
	}
	if rs.ShootIntervalMax == 0 {
		rs.ShootIntervalMax = 5.0
	}

	for i := range config.Waves {
		if config.Waves[i].ID == "" {
			config.Waves[i].ID = config.Waves[i].Formation
		}
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.ID == "" {
		return eris.New("level ID is required")
	}

	switch config.SpawnMode {
	case SpawnModeWaves:
		if len(config.Waves) == 0 {
			return eris.New("at least one wave is required in waves mode")
		}
	case SpawnModeRandom:
		if config.RandomSpawn.Interval < 0 {
			return eris.New("randomSpawn.interval cannot be negative")
		}
		if config.RandomSpawn.Max < 0 {
			return eris.Errorf("randomSpawn.max cannot be negative, got %d", config.RandomSpawn.Max)
		}
		if config.RandomSpawn.ShootIntervalMin >= config.RandomSpawn.ShootIntervalMax {
			return eris.New("randomSpawn.shootIntervalMin must be less than shootIntervalMax")
		}
	default:
		return eris.Errorf("spawnMode must be one of: waves, random, got %q", config.SpawnMode)
	}

	if config.Enemy.ShootIntervalMin <= 0 || config.Enemy.ShootIntervalMin >= config.Enemy.ShootIntervalMax {
		return eris.New("enemy shoot interval must satisfy 0 < shootIntervalMin < shootIntervalMax")
	}

	seen := make(map[string]bool, len(config.Waves))
	for i, wave := range config.Waves {
		if !slices.Contains(KnownFormations, wave.Formation) {
			return eris.Errorf("wave %d: unknown formation %q", i, wave.Formation)
		}
		if seen[wave.ID] {
			return eris.Errorf("wave %d: duplicate wave id %q", i, wave.ID)
		}
		seen[wave.ID] = true
	}

	return nil
}
