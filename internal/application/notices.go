package application

import "sync"

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeInfo    NoticeLevel = "info"
)

type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notices is a FIFO of one-shot messages shown on the next rendered page.
type Notices struct {
	mu    sync.Mutex
	items []Notice
}

func NewNotices() *Notices {
	return &Notices{}
}

func (n *Notices) Push(level NoticeLevel, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, Notice{Level: level, Message: msg})
}

func (n *Notices) Success(msg string) { n.Push(NoticeSuccess, msg) }
func (n *Notices) Error(msg string)   { n.Push(NoticeError, msg) }
func (n *Notices) Info(msg string)    { n.Push(NoticeInfo, msg) }

// Drain returns the pending notices and empties the queue.
func (n *Notices) Drain() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.items
	n.items = nil
	return out
}
