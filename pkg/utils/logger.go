package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger tees JSON lines into a rotated file under LogPath and a
// human-readable stream on stdout. LogLevel overrides the debug default.
func InitLogger(app AppConfig) (*zap.Logger, error) {
	level := zap.InfoLevel
	if app.Debug {
		level = zap.DebugLevel
	}
	if app.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(app.LogLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(encoderConfig, app.Debug), zapcore.Lock(os.Stdout), level),
	}

	if app.LogPath != "" {
		if err := os.MkdirAll(app.LogPath, 0o755); err != nil {
			return nil, err
		}
		name := app.Name
		if name == "" {
			name = "celebrity-booking"
		}
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(app.LogPath, name+".log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rotated), level))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.String("service", app.Name)),
	), nil
}

func consoleEncoder(cfg zapcore.EncoderConfig, debug bool) zapcore.Encoder {
	if !debug {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}
