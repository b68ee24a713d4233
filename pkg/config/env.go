package config

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// EnvConfig 从环境变量读取的启动参数
// 未设置的变量保持零值，由调用方决定是否使用默认值
type EnvConfig struct {
	WindowWidth  int    `config:"SHOOT_WINDOW_WIDTH"`
	WindowHeight int    `config:"SHOOT_WINDOW_HEIGHT"`
	Level        string `config:"SHOOT_LEVEL"`
	Verbose      bool   `config:"SHOOT_VERBOSE"`
	Seed         int64  `config:"SHOOT_SEED"`
}

// LoadEnvConfig 读取环境变量
func LoadEnvConfig() (EnvConfig, error) {
	var env EnvConfig
	if err := config.FromEnv().To(&env); err != nil {
		return EnvConfig{}, eris.Wrap(err, "failed to read environment config")
	}
	return env, nil
}
