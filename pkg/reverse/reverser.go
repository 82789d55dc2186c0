// File: pkg/reverse/reverser.go
package reverse

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Reverser runs the read, reverse and deliver pipeline for one Invocation.
type Reverser struct {
	logger *zap.Logger
}

// New returns a Reverser. A nil logger discards all log output.
func New(logger *zap.Logger) *Reverser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reverser{logger: logger}
}

// Process resolves the input, reverses it and delivers the result. When printed
// is true the caller is responsible for writing out to standard output.
func (r *Reverser) Process(inv Invocation) (out string, printed bool, err error) {
	startTime := time.Now()
	r.logger.Debug("Starting reversal",
		zap.Bool("isFile", inv.IsFile),
		zap.Bool("lineByLine", inv.LineByLine),
		zap.String("output", inv.Output))

	text, err := resolveInput(inv.Input, inv.IsFile, r.logger)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve input: %w", err)
	}

	result := Transform(text, inv.LineByLine)

	out, printed, err = deliver(result, inv.Output, r.logger)
	if err != nil {
		return "", false, fmt.Errorf("failed to deliver output: %w", err)
	}

	r.logger.Debug("Reversal completed",
		zap.Int("resultSizeBytes", len(result)),
		zap.Duration("elapsed", time.Since(startTime)))
	return out, printed, nil
}
