// File: pkg/reverse/input.go
package reverse

import (
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ResolveInput returns the text to transform. Literal input is returned as is;
// file input is read in full and must be valid UTF-8.
func ResolveInput(source string, isFile bool) (string, error) {
	return resolveInput(source, isFile, zap.NewNop())
}

func resolveInput(source string, isFile bool, logger *zap.Logger) (string, error) {
	if !isFile {
		logger.Debug("Using literal input", zap.Int("lengthBytes", len(source)))
		return source, nil
	}

	logger.Debug("Reading input file", zap.String("filePath", source))

	fileBytes, err := os.ReadFile(source)
	if err != nil {
		logger.Debug("Failed to read input file", zap.String("filePath", source), zap.Error(err))
		return "", &FileError{Kind: NotFound, Path: source, Err: err}
	}

	if !utf8.Valid(fileBytes) {
		logger.Debug("Input file is not valid UTF-8", zap.String("filePath", source))
		return "", &FileError{Kind: NotUTF8, Path: source}
	}

	logger.Debug("Successfully read input file",
		zap.String("filePath", source),
		zap.Int("contentSizeBytes", len(fileBytes)))
	return string(fileBytes), nil
}
