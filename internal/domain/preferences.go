package domain

// Persistent store keys
const (
	KeyDefinitionEnabled = "definitionEnabled"
	KeyPlaySoundEnabled  = "playSoundEnabled"
	KeyBookmarkedWords   = "bookmarkedWords"
	KeyAuthorized        = "authorized"
)

// Preferences holds the user-facing toggles
type Preferences struct {
	DefinitionEnabled bool
	PlaySoundEnabled  bool
}

// DefaultPreferences returns the values used for unset flags
func DefaultPreferences() Preferences {
	return Preferences{
		DefinitionEnabled: true,
		PlaySoundEnabled:  false,
	}
}

// IsPreferenceKey reports whether key names a preference flag
func IsPreferenceKey(key string) bool {
	return key == KeyDefinitionEnabled || key == KeyPlaySoundEnabled
}
