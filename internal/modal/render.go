package modal

import (
	"strings"
	"unicode/utf8"

	"thesaurusrex/internal/dictionary"
)

// Render returns the modal content as plain text
func (s State) Render() string {
	switch {
	case s.Word == "":
		return ""
	case s.Loading:
		return "Looking up " + s.Word + "..."
	case s.Err != nil:
		return dictionary.NotFoundMessage
	case s.Entry == nil:
		return ""
	}

	lines := []string{s.Word}

	details := make([]string, 0, 2)
	if pos := s.Entry.PrimaryPartOfSpeech(); pos != "" {
		details = append(details, pos)
	}
	if s.Entry.Phonetic != "" {
		details = append(details, s.Entry.Phonetic)
	}
	if len(details) > 0 {
		lines = append(lines, strings.Join(details, " "))
	}

	if def, ok := s.Entry.PrimaryDefinition(); ok {
		if def.Definition != "" {
			lines = append(lines, def.Definition)
		}
		if def.Example != "" {
			lines = append(lines, "“"+def.Example+"”")
		}
	}

	return strings.Join(lines, "\n")
}

// size measures rendered text in columns and lines
type size struct {
	width  int
	height int
}

func measure(text string) size {
	if text == "" {
		return size{}
	}
	lines := strings.Split(text, "\n")
	s := size{height: len(lines)}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > s.width {
			s.width = n
		}
	}
	return s
}
