package testutil

import (
	"thesaurusrex/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestBookmark creates a test bookmark
func NewTestBookmark(word, partOfSpeech, phonetic string) domain.Bookmark {
	return domain.Bookmark{
		Word:         word,
		PartOfSpeech: partOfSpeech,
		Phonetic:     phonetic,
	}
}

// NewTestEntry creates a lookup result with one meaning and one definition
func NewTestEntry(word, partOfSpeech, phonetic, audio string) *domain.DictionaryEntry {
	entry := &domain.DictionaryEntry{
		Word:     word,
		Phonetic: phonetic,
		Meanings: []domain.Meaning{
			{
				PartOfSpeech: partOfSpeech,
				Definitions: []domain.Definition{
					{Definition: "A definition of " + word + ".", Example: "An example with " + word + "."},
				},
			},
		},
	}
	if audio != "" {
		entry.Phonetics = []domain.Phonetic{{Text: phonetic, Audio: audio}}
	}
	return entry
}
