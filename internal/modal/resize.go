package modal

import (
	"sync"

	"thesaurusrex/internal/domain"
)

// Embedder receives resize messages for the surface hosting the modal
type Embedder interface {
	PostMessage(msg domain.ResizeMessage)
}

type observer struct {
	embedder Embedder
	last     size
}

type pendingMessage struct {
	embedder Embedder
	msg      domain.ResizeMessage
}

// Observe reports the current content size to embedder now and again on every
// change of size. The returned func detaches the observer and is safe to call
// more than once.
func (m *Modal) Observe(embedder Embedder) (release func()) {
	m.mu.Lock()
	id := m.nextObserverID
	m.nextObserverID++
	current := measure(m.stateLocked().Render())
	m.observers[id] = &observer{embedder: embedder, last: current}
	m.mu.Unlock()

	embedder.PostMessage(resizeMessage(current))

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.observers, id)
			m.mu.Unlock()
		})
	}
}

// notifyResize posts outside the lock so embedders may call back into the modal
func (m *Modal) notifyResize() {
	m.mu.Lock()
	current := measure(m.stateLocked().Render())
	pending := make([]pendingMessage, 0, len(m.observers))
	for _, o := range m.observers {
		if o.last == current {
			continue
		}
		o.last = current
		pending = append(pending, pendingMessage{embedder: o.embedder, msg: resizeMessage(current)})
	}
	m.mu.Unlock()

	for _, p := range pending {
		p.embedder.PostMessage(p.msg)
	}
}

func (m *Modal) stateLocked() State {
	return State{
		Word:       m.word,
		Entry:      m.entry,
		Err:        m.lookupErr,
		Bookmarked: m.bookmarked,
		Loading:    m.loading,
	}
}

func resizeMessage(s size) domain.ResizeMessage {
	return domain.ResizeMessage{
		Type:   domain.ResizeMessageType,
		Width:  s.width,
		Height: s.height,
	}
}
