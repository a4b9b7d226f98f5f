package sellang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Position is a resolved source location, 1-based. LineText is the full text
// of the line, newline excluded.
type Position struct {
	Line     int
	Column   int
	LineText string
}

// Resolve scans the content from the start up to the given byte offset. It is
// O(offset) and only ever runs when a diagnostic is rendered, never on the
// tokenize or parse path.
func (s *Source) Resolve(offset int) Position {
	line := 1
	column := 1

	for idx, r := range s.Content {
		if idx >= offset {
			break
		}
		column++
		if r == '\n' {
			column = 1
			line++
		}
	}

	var lineText string
	if line-1 < len(s.Lines) {
		lineText = s.Lines[line-1]
	}

	return Position{
		Line:     line,
		Column:   column,
		LineText: lineText,
	}
}
