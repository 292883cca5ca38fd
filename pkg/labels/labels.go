// Package labels reads point label lists: plain text files with one
// expected point name per line.
package labels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrFileNotFound is returned when the label list path does not name an
// existing regular file.
var ErrFileNotFound = errors.New("file not found")

// Parse reads one label per line. Blank and whitespace-only lines are
// skipped and surrounding whitespace (including a CR from CRLF files) is
// trimmed.
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	labels := make([]string, 0)

	for scanner.Scan() {
		label := strings.TrimSpace(scanner.Text())
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading label list: %w", err)
	}

	return labels, nil
}

// Load reads the label list at path. A missing file yields an error that
// matches ErrFileNotFound.
func Load(path string) ([]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat label list: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open label list: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// At returns labels[index] when index is in range
func At(labels []string, index int) (string, bool) {
	if index < 0 || index >= len(labels) {
		return "", false
	}
	return labels[index], true
}
