// File: pkg/reverse/types.go
package reverse

// Invocation holds the resolved parameters for a single run.
type Invocation struct {
	Input      string // Literal text, or a file path when IsFile is set.
	IsFile     bool   // Interpret Input as a path to read.
	Output     string // Destination file; empty means the result is printed.
	LineByLine bool   // Reverse each line on its own instead of the whole content.
}

// Output file permissions.
const (
	OutputFileMode = 0o644
)
