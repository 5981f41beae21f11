package domain

// Screen selects the Panel view
type Screen string

const (
	ScreenSettings  Screen = "settings"
	ScreenBookmarks Screen = "bookmarks"
)

// Valid reports whether s is a known screen
func (s Screen) Valid() bool {
	return s == ScreenSettings || s == ScreenBookmarks
}

// ResizeMessageType is the type tag of resize messages
const ResizeMessageType = "resize"

// ResizeMessage is posted to the embedding context when modal content changes size.
// Width is measured in columns and Height in lines of rendered text.
type ResizeMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
