package chat

import "sync"

// Window is conversation memory that keeps only the most recent k exchanges
// (one user message plus one assistant reply each), so at most 2k messages.
// It is safe for concurrent use.
type Window struct {
	mu       sync.Mutex
	k        int
	messages []Message
}

// NewWindow creates a Window retaining k exchanges. k <= 0 retains nothing.
func NewWindow(k int) *Window {
	return &Window{k: max(k, 0)}
}

// Add appends a message and drops the oldest ones beyond the window.
func (w *Window) Add(msgs ...Message) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.messages = append(w.messages, msgs...)
	if limit := 2 * w.k; len(w.messages) > limit {
		w.messages = append([]Message(nil), w.messages[len(w.messages)-limit:]...)
	}
}

// AddExchange records a user input and the reply given to it.
func (w *Window) AddExchange(input, output string) {
	w.Add(UserMessage(input), AssistantMessage(output))
}

// Messages returns a copy of the retained messages, oldest first.
func (w *Window) Messages() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Message, len(w.messages))
	copy(out, w.messages)
	return out
}

// Len returns the number of retained messages.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.messages)
}

// Clear drops all retained messages.
func (w *Window) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.messages = nil
}
