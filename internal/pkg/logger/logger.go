package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init replaces the global logger. Safe to call once at startup; callers
// that log before Init get a production logger.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func log() *zap.SugaredLogger {
	once.Do(func() {
		if global == nil {
			l, _ := zap.NewProduction()
			global = l.Sugar()
		}
	})
	return global
}

func Infof(_ context.Context, format string, args ...interface{}) {
	log().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	log().Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	log().Errorf(format, args...)
}

func Fatal(_ context.Context, err error) {
	if err == nil {
		return
	}
	log().Fatal(err.Error())
}

func Sync() {
	_ = log().Sync()
}
