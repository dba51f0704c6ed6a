package log

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// Level is one of debug, info, warn, error.
	Level string
	// File enables an additional JSON sink rotated by lumberjack.
	File       string
	Production bool
}

var logger *zap.Logger = zap.NewNop()

// Init builds the global logger. Development mode writes colored console
// output to stderr.
func Init(opts Options) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if opts.Production {
		config = zap.NewProductionConfig()
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.ConsoleSeparator = " "
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	}

	if opts.Level != "" {
		level, err := zap.ParseAtomicLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid log level %q", opts.Level)
		}
		config.Level = level
	}

	buildOptions := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if opts.File != "" {
		sink := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			}),
			config.Level,
		)
		buildOptions = append(buildOptions, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, sink)
		}))
	}

	built, err := config.Build(buildOptions...)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to init zap logger")
	}
	logger = built
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func Sync() {
	_ = logger.Sync()
}
