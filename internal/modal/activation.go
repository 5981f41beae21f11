package modal

import (
	"net/url"
	"strings"
)

// ParseActivation extracts the word from the modal's activation URL, which
// carries it percent-encoded in the "text" query parameter.
func ParseActivation(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	text := strings.TrimSpace(u.Query().Get("text"))
	if text == "" {
		return "", false
	}
	return text, true
}
