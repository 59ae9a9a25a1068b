package logger

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

var Logger = logrus.New()

func Init() {
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		PadLevelText:    true,
	})
	Logger.SetLevel(levelFromEnv())
}

func levelFromEnv() logrus.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func Info(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Info(msg)
}

func Error(err error, msg string, fields map[string]interface{}) {
	Logger.WithError(err).WithFields(fields).Error(msg)
}

func Warn(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Warn(msg)
}

func Debug(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Debug(msg)
}

func Fatal(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Fatal(msg)
}

// GinLogger logs each request with status, latency and client details.
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		if raw != "" {
			path += "?" + raw
		}

		fields := logrus.Fields{
			"ip":     c.ClientIP(),
			"method": c.Request.Method,
			"path":   path,
			"status": status,
			"took":   duration,
		}

		switch {
		case status >= 500:
			Logger.WithFields(fields).Error("Server error")
		case status >= 400:
			Logger.WithFields(fields).Warn("Client error")
		default:
			Logger.WithFields(fields).Info("Request completed")
		}
	}
}

// GormLogger routes gorm trace output through the shared logrus instance.
type GormLogger struct {
	SlowThreshold time.Duration
}

func NewGormLogger() gormlogger.Interface {
	return &GormLogger{SlowThreshold: 200 * time.Millisecond}
}

func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	Logger.Infof(msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	Logger.Warnf(msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	Logger.Errorf(msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := logrus.Fields{
		"sql":  sql,
		"rows": rows,
		"time": elapsed,
	}

	switch {
	case err != nil:
		Logger.WithError(err).WithFields(fields).Error("Database query error")
	case elapsed > l.SlowThreshold:
		Logger.WithFields(fields).Warn("Slow query")
	default:
		Logger.WithFields(fields).Debug("Query executed")
	}
}
