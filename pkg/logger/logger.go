package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Config holds the logger settings loaded from the config file.
type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var (
	global zerolog.Logger
	once   sync.Once
)

func init() {
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// InitGlobalLogger configures the process-wide logger. Safe to call once at
// startup; later calls are ignored.
func InitGlobalLogger(cfg *Config) {
	once.Do(func() {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil || cfg.Level == "" {
			level = zerolog.InfoLevel
		}

		var l zerolog.Logger
		if cfg.Pretty {
			l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		} else {
			l = zerolog.New(os.Stderr)
		}

		global = l.Level(level).With().Timestamp().Logger()
	})
}

func Debug(msg string, kv ...any) {
	global.Debug().Fields(kv).Msg(msg)
}

func Info(msg string, kv ...any) {
	global.Info().Fields(kv).Msg(msg)
}

func Warn(msg string, kv ...any) {
	global.Warn().Fields(kv).Msg(msg)
}

func Error(msg string, kv ...any) {
	global.Error().Fields(kv).Msg(msg)
}
