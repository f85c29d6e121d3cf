package www

import (
	"fmt"
	"strings"

	"github.com/alnah/go-www/internal/pipeline"
)

// Template is a page split into lines, with exactly one marker line.
type Template struct {
	lines  []string
	marker int
}

// ParseTemplate splits text into lines and locates the marker line.
// A single trailing newline does not start a new line.
// Returns ErrMarkerMissing, ErrMarkerDuplicate or ErrMarkerOutsideBody when
// the marker layout is wrong.
func ParseTemplate(text string) (*Template, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	marker := -1
	for i, line := range lines {
		if !strings.Contains(line, Marker) {
			continue
		}
		if marker >= 0 {
			return nil, fmt.Errorf("%w: lines %d and %d", ErrMarkerDuplicate, marker+1, i+1)
		}
		marker = i
	}
	if marker < 0 {
		return nil, ErrMarkerMissing
	}

	if err := pipeline.CheckMarkerPlacement(text, Marker); err != nil {
		return nil, fmt.Errorf("line %d: %w", marker+1, err)
	}

	return &Template{lines: lines, marker: marker}, nil
}

// LineCount returns the number of template lines, marker line included.
func (t *Template) LineCount() int {
	return len(t.lines)
}

// MarkerLine returns the 1-based line number of the marker.
func (t *Template) MarkerLine() int {
	return t.marker + 1
}
