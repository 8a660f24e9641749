package session

import (
	"bufio"
	"io"
	"strings"
)

// scannerReader adapts a plain io.Reader (pipes, files) to LineReader.
type scannerReader struct {
	scanner *bufio.Scanner
}

// NewReader returns a LineReader over r for non-interactive input.
func NewReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (r *scannerReader) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}
