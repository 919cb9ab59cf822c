package logger

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/zbh255/bilog"
)

const (
	OpenLogger  int64 = 1 << 10
	CloseLogger int64 = 1 << 11
)

// LLogger is the side channel the storage containers report through.
// Fatal terminates the process, everything else is advisory.
type LLogger interface {
	Notify(format string, v ...interface{})
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Fatal(format string, v ...interface{})
}

var DefaultLogger LLogger

type LLoggerImpl struct {
	loggerOpen int64
	logging    bilog.Logger
}

func New(l bilog.Logger) LLogger {
	return &LLoggerImpl{logging: l, loggerOpen: OpenLogger}
}

func (c *LLoggerImpl) Debug(format string, v ...interface{}) {
	if !c.ReadLoggerStatus() {
		return
	}
	c.logging.Debug(fmt.Sprintf(format, v...))
}

func (c *LLoggerImpl) Notify(format string, v ...interface{}) {
	if !c.ReadLoggerStatus() {
		return
	}
	c.logging.Info(fmt.Sprintf(format, v...))
}

func (c *LLoggerImpl) Warn(format string, v ...interface{}) {
	if !c.ReadLoggerStatus() {
		return
	}
	c.logging.Trace(fmt.Sprintf(format, v...))
}

func (c *LLoggerImpl) Error(format string, v ...interface{}) {
	if !c.ReadLoggerStatus() {
		return
	}
	c.logging.ErrorFromString(fmt.Sprintf(format, v...))
}

func (c *LLoggerImpl) Fatal(format string, v ...interface{}) {
	if !c.ReadLoggerStatus() {
		return
	}
	c.logging.PanicFromString(fmt.Sprintf(format, v...))
}

func (c *LLoggerImpl) ReadLoggerStatus() bool {
	return atomic.LoadInt64(&c.loggerOpen) == OpenLogger
}

func SetOpenLogger(ok bool) {
	logger, typeOk := DefaultLogger.(*LLoggerImpl)
	if !typeOk {
		return
	}
	if ok {
		atomic.StoreInt64(&logger.loggerOpen, OpenLogger)
	} else {
		atomic.StoreInt64(&logger.loggerOpen, CloseLogger)
	}
}

func init() {
	bilogLogger := bilog.NewLogger(
		os.Stdout, bilog.PANIC,
		bilog.WithTimes(),
		bilog.WithCaller(1),
		bilog.WithLowBuffer(0),
		bilog.WithTopBuffer(0),
	)
	DefaultLogger = &LLoggerImpl{
		logging:    bilogLogger,
		loggerOpen: OpenLogger,
	}
}
