// Package textio writes and reads the planner's plain-text artifacts:
// one value per line, nothing else. The ordered stop list and the per-leg
// distance log of a tour are both emitted through it.
package textio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteLines writes lines to path, one per line, creating or truncating
// the file.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textio: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err = w.WriteString(line); err != nil {
			f.Close()

			return fmt.Errorf("textio: %w", err)
		}
		if err = w.WriteByte('\n'); err != nil {
			f.Close()

			return fmt.Errorf("textio: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		f.Close()

		return fmt.Errorf("textio: %w", err)
	}

	return f.Close()
}

// WriteFloats writes vals to path, one per line, in the shortest exact
// decimal form (%g via strconv).
func WriteFloats(path string, vals []float64) error {
	lines := make([]string, len(vals))
	for i, v := range vals {
		lines[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return WriteLines(path, lines)
}

// ReadLines reads path into a slice of trimmed lines. A trailing newline
// does not produce a final empty element.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textio: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: %w", err)
	}

	return lines, nil
}
