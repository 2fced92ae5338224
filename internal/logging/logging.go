package logging

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// New returns a logrus logger writing plain text to out at the given level
func New(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	return log, nil
}

// WailsLevel maps a logrus level onto the runtime's log level
func WailsLevel(lvl logrus.Level) logger.LogLevel {
	switch lvl {
	case logrus.TraceLevel:
		return logger.TRACE
	case logrus.DebugLevel:
		return logger.DEBUG
	case logrus.InfoLevel:
		return logger.INFO
	case logrus.WarnLevel:
		return logger.WARNING
	default:
		return logger.ERROR
	}
}

// WailsLogger routes the runtime's own log output through logrus
type WailsLogger struct {
	entry *logrus.Entry
}

// NewWailsLogger wraps log, tagging every line with component=wails
func NewWailsLogger(log *logrus.Logger) *WailsLogger {
	return &WailsLogger{entry: log.WithField("component", "wails")}
}

func (l *WailsLogger) Print(message string) { l.entry.Print(message) }
func (l *WailsLogger) Trace(message string) { l.entry.Trace(message) }
func (l *WailsLogger) Debug(message string) { l.entry.Debug(message) }
func (l *WailsLogger) Info(message string) { l.entry.Info(message) }
func (l *WailsLogger) Warning(message string) { l.entry.Warn(message) }
func (l *WailsLogger) Error(message string) { l.entry.Error(message) }
func (l *WailsLogger) Fatal(message string) { l.entry.Fatal(message) }

var _ logger.Logger = (*WailsLogger)(nil)
