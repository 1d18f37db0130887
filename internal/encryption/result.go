package encryption

// Result represents the outcome of processing a single input.
type Result struct {
	// Input file path, or "-" for standard input
	Input string

	// Output file path, or "-" for standard output
	Output string

	// Mode found in or written to the header
	Mode Mode

	// Input and output sizes in bytes
	InputSize  int64
	OutputSize int64

	// Any error that occurred during processing
	Error error
}
