package logging

import (
	"fmt"
	"io"

	"github.com/bnema/libcat/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger writing to w, normally the command's error stream.
func New(cfg config.Log, w io.Writer) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case config.LogFormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case config.LogFormatConsole, "":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), cfg.Level)
	return zap.New(core).Named("libcat"), nil
}
