package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type AppMode string

const (
	AppModeLocal AppMode = "local"
	AppModeTest  AppMode = "test"
	AppModeDev   AppMode = "dev"
	AppModeProd  AppMode = "production"
)

// AppModeFromEnv reads APP_ENV, falling back to local.
func AppModeFromEnv() AppMode {
	switch env := AppMode(strings.ToLower(os.Getenv("APP_ENV"))); env {
	case AppModeLocal, AppModeTest, AppModeDev, AppModeProd:
		return env
	default:
		return AppModeLocal
	}
}

func New(serviceName string, mode AppMode) (*zap.Logger, error) {
	level := levelFor(mode)
	zapConfig := zap.NewProductionConfig()
	if mode != AppModeProd {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if mode == AppModeLocal {
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err := zapConfig.Build()
		if err != nil {
			return nil, err
		}
		return logger.Named(serviceName), nil
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zapConfig.EncoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named(serviceName), nil
}

func levelFor(mode AppMode) zapcore.Level {
	switch mode {
	case AppModeProd, AppModeTest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
