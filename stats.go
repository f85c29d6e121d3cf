package www

import "fmt"

// Stats holds the counters of one render. They never affect output.
type Stats struct {
	// LinesFetched is the number of input lines read.
	LinesFetched int
	// LinesGenerated is the number of output lines written, template lines
	// included.
	LinesGenerated int
	// CharsFetched is the number of characters read, line terminators included.
	CharsFetched int
}

// Lines formats the counters as "name: value" lines in a fixed order.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("total_lines_fetched: %d", s.LinesFetched),
		fmt.Sprintf("total_lines_generated: %d", s.LinesGenerated),
		fmt.Sprintf("total_chars_fetched: %d", s.CharsFetched),
	}
}
