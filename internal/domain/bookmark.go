package domain

// UnknownField is stored when a lookup result lacks a part of speech or phonetic.
const UnknownField = "Unknown"

// Bookmark is a persisted word with its part of speech and phonetic spelling.
// Word is the identity key and is compared case-sensitively.
type Bookmark struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"partOfSpeech"`
	Phonetic     string `json:"phonetic"`
}

// NewBookmark builds a bookmark for word from a lookup result
func NewBookmark(word string, entry *DictionaryEntry) Bookmark {
	b := Bookmark{
		Word:         word,
		PartOfSpeech: UnknownField,
		Phonetic:     UnknownField,
	}
	if entry == nil {
		return b
	}
	if pos := entry.PrimaryPartOfSpeech(); pos != "" {
		b.PartOfSpeech = pos
	}
	if entry.Phonetic != "" {
		b.Phonetic = entry.Phonetic
	}
	return b
}
