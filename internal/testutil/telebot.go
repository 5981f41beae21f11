package testutil

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// Reply is one message sent or edited through a FakeContext
type Reply struct {
	Text   string
	Markup *tele.ReplyMarkup
	Edited bool
}

// FakeContext is a tele.Context for a private chat. Only the methods the bot
// uses are implemented; calling any other method panics.
type FakeContext struct {
	tele.Context

	User         *tele.User
	MessageText  string
	CallbackData *tele.Callback
	EditErr      error

	mu        sync.Mutex
	replies   []Reply
	responses []*tele.CallbackResponse
}

// NewFakeMessage creates a context for a text message from userID
func NewFakeMessage(userID int64, text string) *FakeContext {
	return &FakeContext{User: &tele.User{ID: userID, Username: "tester"}, MessageText: text}
}

// NewFakeCallback creates a context for a button press from userID
func NewFakeCallback(userID int64, unique, data string) *FakeContext {
	return &FakeContext{
		User:         &tele.User{ID: userID, Username: "tester"},
		CallbackData: &tele.Callback{ID: "cb-1", Unique: unique, Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User        { return c.User }
func (c *FakeContext) Recipient() tele.Recipient { return c.User }
func (c *FakeContext) Text() string              { return c.MessageText }
func (c *FakeContext) Callback() *tele.Callback  { return c.CallbackData }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.record(what, opts, false)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.record(what, opts, true)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(resp) == 0 {
		c.responses = append(c.responses, &tele.CallbackResponse{})
		return nil
	}
	c.responses = append(c.responses, resp[0])
	return nil
}

// Replies returns everything sent or edited so far
func (c *FakeContext) Replies() []Reply {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Reply(nil), c.replies...)
}

// LastReply returns the most recent reply, or an empty one
func (c *FakeContext) LastReply() Reply {
	replies := c.Replies()
	if len(replies) == 0 {
		return Reply{}
	}
	return replies[len(replies)-1]
}

// Responses returns the callback answers so far
func (c *FakeContext) Responses() []*tele.CallbackResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*tele.CallbackResponse(nil), c.responses...)
}

func (c *FakeContext) record(what interface{}, opts []interface{}, edited bool) {
	reply := Reply{Edited: edited}
	if text, ok := what.(string); ok {
		reply.Text = text
	}
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			reply.Markup = markup
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.replies = append(c.replies, reply)
}

// FakeSender records messages sent directly through the bot
type FakeSender struct {
	mu   sync.Mutex
	sent []interface{}
	Err  error
}

func (s *FakeSender) Send(_ tele.Recipient, what interface{}, _ ...interface{}) (*tele.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	s.sent = append(s.sent, what)
	return &tele.Message{}, nil
}

// Sent returns what was sent so far
func (s *FakeSender) Sent() []interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]interface{}(nil), s.sent...)
}
