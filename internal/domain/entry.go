package domain

// DictionaryEntry is the normalized result of one successful lookup
type DictionaryEntry struct {
	Word      string
	Phonetic  string
	Phonetics []Phonetic
	Meanings  []Meaning
}

// Phonetic is one pronunciation variant
type Phonetic struct {
	Text  string
	Audio string
}

// Meaning groups definitions sharing a part of speech
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

// Definition is a single sense with an optional example
type Definition struct {
	Definition string
	Example    string
}

// PrimaryPartOfSpeech returns the part of speech of the first meaning
func (e *DictionaryEntry) PrimaryPartOfSpeech() string {
	if e == nil || len(e.Meanings) == 0 {
		return ""
	}
	return e.Meanings[0].PartOfSpeech
}

// PrimaryDefinition returns the first definition of the first meaning
func (e *DictionaryEntry) PrimaryDefinition() (Definition, bool) {
	if e == nil || len(e.Meanings) == 0 || len(e.Meanings[0].Definitions) == 0 {
		return Definition{}, false
	}
	return e.Meanings[0].Definitions[0], true
}

// AudioURL returns the first non-empty pronunciation audio URL
func (e *DictionaryEntry) AudioURL() string {
	if e == nil {
		return ""
	}
	for _, p := range e.Phonetics {
		if p.Audio != "" {
			return p.Audio
		}
	}
	return ""
}
