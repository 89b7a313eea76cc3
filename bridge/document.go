package bridge

import "sync"

// Buffer is a Document for callers without a text widget, such as the
// headless commands.
type Buffer struct {
	mu   sync.Mutex
	text string
}

func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
}
