package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a JSON logger writing to stdout, stamped with the service
// name. When filePath is non-empty the output is also mirrored to a
// size-rotated file.
func New(service, filePath string) *zap.Logger {
	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if filePath != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    100, // megabytes before rotation
			MaxBackups: 7,
			MaxAge:     30, // days
		}))
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.InfoLevel,
	)

	return zap.New(core).With(zap.String("service", service))
}
