package log

import (
	"io"
	"os"
	"strings"

	"talentops/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel 未知字串一律視為 info
func ParseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zap.InfoLevel
	}
	return lvl
}

// NewLogger warn 以下寫 stdout，warn 以上寫 stderr；Error 以上附 stacktrace
func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	return newLogger(conf, os.Stdout, os.Stderr), nil
}

func newLogger(conf *config.Configuration, stdout, stderr io.Writer) *zap.Logger {
	threshold := zap.NewAtomicLevelAt(ParseLevel(conf.Log.Level))
	encoder := newEncoder(conf.Log.Format)

	below := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return threshold.Enabled(l) && l < zapcore.WarnLevel
	})
	above := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return threshold.Enabled(l) && l >= zapcore.WarnLevel
	})

	logger := zap.New(
		zapcore.NewTee(
			zapcore.NewCore(encoder, zapcore.AddSync(stdout), below),
			zapcore.NewCore(encoder.Clone(), zapcore.AddSync(stderr), above),
		),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	).With(
		zap.String("app", conf.App.Name),
		zap.String("env", conf.App.Env),
		zap.String("version", conf.App.Version),
	)
	logger.Info("zap logger ready", zap.Stringer("level", threshold.Level()), zap.String("format", formatName(conf.Log.Format)))
	return logger
}

func newEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	if formatName(format) == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg)
	}
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return zapcore.NewJSONEncoder(encCfg)
}

func formatName(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		return "console"
	}
	return "json"
}
