// File: pkg/reverse/output.go
package reverse

import (
	"os"

	"go.uber.org/zap"
)

// Deliver routes text to its destination. With a destination the text becomes
// the complete contents of that file and printed is false. Without one the text
// is handed back for the caller to print.
func Deliver(text, destination string) (out string, printed bool, err error) {
	return deliver(text, destination, zap.NewNop())
}

func deliver(text, destination string, logger *zap.Logger) (string, bool, error) {
	if destination == "" {
		return text, true, nil
	}
	if err := writeToFile(destination, []byte(text), OutputFileMode, logger); err != nil {
		return "", false, &FileError{Kind: WriteFailed, Path: destination, Err: err}
	}
	return "", false, nil
}

// writeToFile writes data to a file and logs the operation.
// The parent directory must already exist.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Debug("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path), zap.Int("sizeBytes", len(data)))
	return nil
}
