package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AutoHubWeb/AdminPanel/internal/config"
)

// Logger 统一日志接口
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Fatal(format string, args ...interface{})

	// WithField 附加额外字段
	WithField(key string, value interface{}) Logger
	WithError(err error) Logger
}

// logrusLogger logrus实现的日志器
type logrusLogger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// New 创建一个新的日志器
func New(cfg config.LogConfig, serviceName string) (Logger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.JSONFormat {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	}

	var writers []io.Writer
	if cfg.ConsoleOutput {
		writers = append(writers, os.Stdout)
	}
	if cfg.FilePath != "" {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		writers = append(writers, file)
	}

	switch len(writers) {
	case 0:
		l.SetOutput(os.Stdout)
	case 1:
		l.SetOutput(writers[0])
	default:
		l.SetOutput(io.MultiWriter(writers...))
	}

	return &logrusLogger{
		logger: l,
		fields: logrus.Fields{"service": serviceName},
	}, nil
}

// NewNop 创建丢弃所有输出的日志器，测试用
func NewNop() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &logrusLogger{logger: l, fields: logrus.Fields{}}
}

func (l *logrusLogger) entry() *logrus.Entry {
	return l.logger.WithFields(l.fields)
}

func (l *logrusLogger) Debug(format string, args ...interface{}) {
	l.entry().Debugf(format, args...)
}

func (l *logrusLogger) Info(format string, args ...interface{}) {
	l.entry().Infof(format, args...)
}

func (l *logrusLogger) Warn(format string, args ...interface{}) {
	l.entry().Warnf(format, args...)
}

func (l *logrusLogger) Error(format string, args ...interface{}) {
	l.entry().Errorf(format, args...)
}

func (l *logrusLogger) Fatal(format string, args ...interface{}) {
	l.entry().Fatalf(format, args...)
}

func (l *logrusLogger) WithField(key string, value interface{}) Logger {
	fields := make(logrus.Fields, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &logrusLogger{logger: l.logger, fields: fields}
}

func (l *logrusLogger) WithError(err error) Logger {
	return l.WithField("error", err.Error())
}
