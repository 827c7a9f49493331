package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps regular runs quiet so only command results reach the terminal
const DefaultLevel = "warn"

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init sets up the global logger once, writing JSON lines to stderr.
// stdout is reserved for commit output and summaries.
// An unknown level falls back to DefaultLevel with a warning.
func Init(level string) {
	once.Do(func() {
		l, err := newLogger(level, os.Stderr)
		sugar = l.Sugar()
		if err != nil {
			sugar.Warnf("Unknown log level %q, using %s", level, DefaultLevel)
		}
	})
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	zapLevel := zap.WarnLevel
	err := zapLevel.UnmarshalText([]byte(level))
	if err != nil {
		zapLevel = zap.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(w)), zapLevel)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), err
}

// Sugar returns the global sugared logger, initializing it at DefaultLevel if needed
func Sugar() *zap.SugaredLogger {
	Init(DefaultLevel)
	return sugar
}

// Sync flushes buffered entries
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}

func Debug(args ...interface{}) { Sugar().Debug(args...) }
func Info(args ...interface{}) { Sugar().Info(args...) }
func Error(args ...interface{}) { Sugar().Error(args...) }

func Debugf(template string, args ...interface{}) { Sugar().Debugf(template, args...) }
func Infof(template string, args ...interface{}) { Sugar().Infof(template, args...) }
func Warnf(template string, args ...interface{}) { Sugar().Warnf(template, args...) }
