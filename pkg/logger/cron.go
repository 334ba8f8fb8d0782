package logger

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type cronLogger struct {
	sugar *zap.SugaredLogger
}

// NewCronLogger routes cron scheduler output, including recovered job panics,
// through l. Cron's routine wake-up messages are logged at debug level.
func NewCronLogger(l *Logger) cron.Logger {
	return &cronLogger{sugar: l.Logger.Named("cron").Sugar()}
}

func (c *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.sugar.Debugw(msg, keysAndValues...)
}

func (c *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
