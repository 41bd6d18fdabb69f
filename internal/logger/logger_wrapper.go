package logger

import (
	"os"
	"sync"
	"time"

	"github.com/leandrodaf/midiclock/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements contracts.Logger on top of Uber's zap.
type ZapLogger struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	level   zap.AtomicLevel
	closeFn func() // closes the current file destination, nil for stderr
}

// NewZapLogger creates a JSON logger writing to stderr at info level.
// Stdout is left alone because the clock status line is drawn there.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return newZapLogger(newCore(zapcore.Lock(os.Stderr), level), level)
}

func newZapLogger(core zapcore.Core, level zap.AtomicLevel) *ZapLogger {
	return &ZapLogger{
		logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)),
		level:  level,
	}
}

func newCore(ws zapcore.WriteSyncer, level zapcore.LevelEnabler) zapcore.Core {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, level)
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(zapcore.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(zapcore.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(zapcore.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(zapcore.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level and terminates the application
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(zapcore.FatalLevel, msg, fields...)
	os.Exit(1)
}

// Field returns a builder for typed log fields.
func (z *ZapLogger) Field() contracts.Field {
	return zapField{}
}

// SetLevel sets the logging level
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(toZapLevel(level))
}

// SetDestination switches output between stderr and a file. On failure the
// current destination is kept and the error is logged.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) {
	var (
		ws      zapcore.WriteSyncer
		closeFn func()
	)

	switch dest {
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			z.Error("file log destination requires a path")
			return
		}
		sink, closer, err := zap.Open(filePath[0])
		if err != nil {
			z.Error("Failed to open log file",
				z.Field().String("path", filePath[0]),
				z.Field().Error("error", err))
			return
		}
		ws, closeFn = sink, closer
	default:
		ws = zapcore.Lock(os.Stderr)
	}

	z.mu.Lock()
	old := z.closeFn
	_ = z.logger.Sync()
	z.logger = zap.New(newCore(ws, z.level), zap.AddCaller(), zap.AddCallerSkip(2))
	z.closeFn = closeFn
	z.mu.Unlock()

	if old != nil {
		old()
	}
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.logger.Sync()
}

func (z *ZapLogger) log(level zapcore.Level, msg string, fields ...contracts.Field) {
	if !z.level.Enabled(level) {
		return
	}

	z.mu.RLock()
	l := z.logger
	z.mu.RUnlock()

	zfs := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if zf, ok := f.(zapField); ok && zf.field.Key != "" {
			zfs = append(zfs, zf.field)
		}
	}

	switch level {
	case zapcore.DebugLevel:
		l.Debug(msg, zfs...)
	case zapcore.InfoLevel:
		l.Info(msg, zfs...)
	case zapcore.WarnLevel:
		l.Warn(msg, zfs...)
	case zapcore.ErrorLevel:
		l.Error(msg, zfs...)
	case zapcore.FatalLevel:
		l.Fatal(msg, zfs...)
	}
}

func toZapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// zapField implements contracts.Field
type zapField struct {
	field zap.Field
}

func (zapField) Bool(key string, val bool) contracts.Field {
	return zapField{zap.Bool(key, val)}
}

func (zapField) Int(key string, val int) contracts.Field {
	return zapField{zap.Int(key, val)}
}

func (zapField) Float64(key string, val float64) contracts.Field {
	return zapField{zap.Float64(key, val)}
}

func (zapField) String(key string, val string) contracts.Field {
	return zapField{zap.String(key, val)}
}

func (zapField) Time(key string, val time.Time) contracts.Field {
	return zapField{zap.Time(key, val)}
}

func (zapField) Int64(key string, val int64) contracts.Field {
	return zapField{zap.Int64(key, val)}
}

func (zapField) Error(key string, val error) contracts.Field {
	return zapField{zap.NamedError(key, val)}
}

func (zapField) Uint64(key string, val uint64) contracts.Field {
	return zapField{zap.Uint64(key, val)}
}

func (zapField) Uint8(key string, val uint8) contracts.Field {
	return zapField{zap.Uint8(key, val)}
}
