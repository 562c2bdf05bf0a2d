// Package config loads the YAML configuration of the subcrack command.
package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"gomod.pri/subcrack/engine"
	"gomod.pri/subcrack/xcache"
	"gomod.pri/subcrack/xerror"
	"gomod.pri/subcrack/xredis"
	"gomod.pri/subcrack/xtrace"
)

type Config struct {
	Log       logx.LogConf
	Trace     xtrace.Config
	Resources engine.Resources
	Engine    engine.Config
	Cache     xcache.Config
}

// Default is the configuration used without a config file: embedded English
// resources, no result cache, console logging.
func Default() Config {
	return Config{
		Log: logx.LogConf{
			Mode:     "console",
			Encoding: "plain",
			Level:    "info",
		},
		Trace:  xtrace.Config{AttrMaxBytes: 64 * 1024},
		Engine: engine.DefaultConfig(),
		Cache: xcache.Config{
			Type:     xcache.TypeNone,
			Capacity: 128,
			TTL:      24 * time.Hour,
			Prefix:   "subcrack:",
			Redis:    xredis.Config{Addr: "127.0.0.1:6379"},
		},
	}
}

func Load(path string) (Config, error) {
	var c Config
	if err := conf.Load(path, &c); err != nil {
		return Config{}, xerror.New(xerror.CodeInvalidParams, err, true)
	}
	return c, nil
}

// Parse reads a configuration from YAML content.
func Parse(content []byte) (Config, error) {
	var c Config
	if err := conf.LoadFromYamlBytes(content, &c); err != nil {
		return Config{}, xerror.New(xerror.CodeInvalidParams, err, true)
	}
	return c, nil
}
