package modal

import (
	"context"
	"sync"
	"testing"

	"thesaurusrex/internal/dictionary"
	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestState_Render(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{
			name:     "no word",
			state:    State{},
			expected: "",
		},
		{
			name:     "loading",
			state:    State{Word: "river", Loading: true},
			expected: "Looking up river...",
		},
		{
			name:     "error",
			state:    State{Word: "zzznotaword", Err: dictionary.ErrNotFound},
			expected: "Couldn't Find The Word",
		},
		{
			name:  "full result",
			state: State{Word: "lucid", Entry: testutil.NewTestEntry("lucid", "adjective", "/ˈluːsɪd/", "")},
			expected: "lucid\n" +
				"adjective /ˈluːsɪd/\n" +
				"A definition of lucid.\n" +
				"“An example with lucid.”",
		},
		{
			name: "no example or phonetic",
			state: State{Word: "ember", Entry: &domain.DictionaryEntry{
				Meanings: []domain.Meaning{{
					PartOfSpeech: "noun",
					Definitions:  []domain.Definition{{Definition: "A glowing coal."}},
				}},
			}},
			expected: "ember\nnoun\nA glowing coal.",
		},
		{
			name:     "no meanings",
			state:    State{Word: "hmm", Entry: &domain.DictionaryEntry{}},
			expected: "hmm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Render())
		})
	}
}

func TestMeasure(t *testing.T) {
	assert.Equal(t, size{}, measure(""))
	assert.Equal(t, size{width: 5, height: 1}, measure("river"))
	assert.Equal(t, size{width: 9, height: 2}, measure("lucid\n/ˈluːsɪd/"))
}

type recordingEmbedder struct {
	mu       sync.Mutex
	messages []domain.ResizeMessage
}

func (r *recordingEmbedder) PostMessage(msg domain.ResizeMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *recordingEmbedder) Messages() []domain.ResizeMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ResizeMessage(nil), r.messages...)
}

func TestModal_ObserveReportsSizeChanges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	embedder := &recordingEmbedder{}

	release := f.modal.Observe(embedder)
	assert.Equal(t, []domain.ResizeMessage{{Type: "resize", Width: 0, Height: 0}}, embedder.Messages())

	f.lookup.On("Lookup", mock.Anything, "river").Return(nil, dictionary.ErrNotFound)
	require.NoError(t, f.modal.Open(ctx, "river"))

	messages := embedder.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, domain.ResizeMessage{Type: "resize", Width: len("Looking up river..."), Height: 1}, messages[1])
	assert.Equal(t, domain.ResizeMessage{Type: "resize", Width: len("Couldn't Find The Word"), Height: 1}, messages[2])

	release()
	release()

	f.lookup.On("Lookup", mock.Anything, "lake").Return(testutil.NewTestEntry("lake", "noun", "/leɪk/", ""), nil)
	require.NoError(t, f.modal.Open(ctx, "lake"))

	assert.Len(t, embedder.Messages(), 3)
}

func TestModal_ObserveSkipsUnchangedSize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	embedder := &recordingEmbedder{}
	defer f.modal.Observe(embedder)()

	f.lookup.On("Lookup", mock.Anything, "lucid").Return(testutil.NewTestEntry("lucid", "adjective", "/x/", ""), nil)
	require.NoError(t, f.modal.Open(ctx, "lucid"))
	count := len(embedder.Messages())

	// toggling the bookmark does not change the content
	_, err := f.modal.ToggleBookmark(ctx)
	require.NoError(t, err)

	assert.Len(t, embedder.Messages(), count)
}

func TestParseActivation(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{name: "simple", raw: "chrome-extension://abc/modal.html?text=lucid", expected: "lucid", ok: true},
		{name: "percent encoded", raw: "https://x.test/modal.html?text=ice%20cream", expected: "ice cream", ok: true},
		{name: "unicode", raw: "?text=caf%C3%A9", expected: "café", ok: true},
		{name: "other params", raw: "/modal?lang=en&text=river", expected: "river", ok: true},
		{name: "missing param", raw: "https://x.test/modal.html?word=lucid", ok: false},
		{name: "blank param", raw: "https://x.test/modal.html?text=%20%20", ok: false},
		{name: "malformed url", raw: "%zz?text=lucid", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, ok := ParseActivation(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, word)
		})
	}
}
