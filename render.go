package www

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Renderer writes a template with its marker line replaced by one fragment
// per input line.
type Renderer struct {
	Template *Template

	// TrimTrailingSpace strips all trailing whitespace from each line,
	// not only the line terminator.
	TrimTrailingSpace bool
}

// Render reads all of in, then writes the page to out.
// Nothing is written when reading fails.
func (r *Renderer) Render(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats

	if r.Template == nil {
		return stats, ErrNilTemplate
	}
	if in == nil {
		return stats, ErrNilReader
	}
	if ctx.Err() != nil {
		return stats, ctx.Err()
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if ctx.Err() != nil {
		return stats, ctx.Err()
	}

	var fragments []string
	for rest := string(data); rest != ""; {
		var raw string
		raw, rest = nextLine(rest)

		stats.LinesFetched++
		stats.CharsFetched += utf8.RuneCountInString(raw)

		line := strings.TrimRight(raw, "\r\n")
		if r.TrimTrailingSpace {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		fragments = append(fragments, RenderLine(line))
	}

	w := bufio.NewWriter(out)
	for i, line := range r.Template.lines {
		if i != r.Template.marker {
			w.WriteString(line)
			w.WriteByte('\n')
			stats.LinesGenerated++
			continue
		}
		for _, f := range fragments {
			w.WriteString(f)
			w.WriteByte('\n')
			stats.LinesGenerated++
		}
	}
	// bufio.Writer keeps the first error, Flush reports it
	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return stats, nil
}

// nextLine splits off the first line of s, terminator included.
// "\n", "\r\n" and a lone "\r" end a line.
func nextLine(s string) (line, rest string) {
	i := strings.IndexAny(s, "\r\n")
	if i < 0 {
		return s, ""
	}
	end := i + 1
	if s[i] == '\r' && end < len(s) && s[end] == '\n' {
		end++
	}
	return s[:end], s[end:]
}
