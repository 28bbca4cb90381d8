package logger

import (
	"fmt"

	"github.com/GlebRadaev/translator/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "15:04:05 02-01-2006"

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Build creates a logger for the given level and format. "console" is a
// colored human readable layout, "json" is meant for log collectors.
func Build(lvlName, format string) (*zap.Logger, error) {
	lvl, ok := logLvlMap[lvlName]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", lvlName)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch format {
	case "", "console":
		format = "console"
		encodeConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		encodeConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Sampling:         nil,
		Encoding:         format,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger.Named("translator"), nil
}

// InitLogger replaces the global zap logger used across the service.
func InitLogger(conf *config.Config) error {
	logger, err := Build(conf.LogLvl, conf.LogFormat)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}
