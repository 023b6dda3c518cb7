package infrastructure

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/application/ports"
	"github.com/sglre6355/playlistbot/internal/modules/playlist_sync/domain"
)

// DefaultMentionBufferSize is the default buffer size for the mention channel.
const DefaultMentionBufferSize = 100

var (
	// ErrQueueClosed is returned when publishing to or subscribing on a closed queue.
	ErrQueueClosed = errors.New("mention queue is closed")

	// ErrQueueFull is returned when the mention buffer is full and the mention is dropped.
	ErrQueueFull = errors.New("mention queue is full")
)

// Compile-time checks that MentionQueue implements ports interfaces.
var (
	_ ports.MentionPublisher  = (*MentionQueue)(nil)
	_ ports.MentionSubscriber = (*MentionQueue)(nil)
)

// MentionQueue is a FIFO queue with a single dispatcher goroutine.
// Gateway handlers may publish concurrently; subscribers see mentions one at a
// time in publish order, so replies keep the order of the messages.
type MentionQueue struct {
	mentions chan domain.Mention
	handlers []func(context.Context, domain.Mention)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
	mu     sync.RWMutex
}

// NewMentionQueue creates a new MentionQueue with the given buffer size.
func NewMentionQueue(bufferSize int) *MentionQueue {
	if bufferSize <= 0 {
		bufferSize = DefaultMentionBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	q := &MentionQueue{
		mentions: make(chan domain.Mention, bufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	q.wg.Add(1)
	go q.dispatch()

	return q
}

func (q *MentionQueue) dispatch() {
	defer q.wg.Done()

	for mention := range q.mentions {
		q.mu.RLock()
		handlers := q.handlers
		q.mu.RUnlock()

		for _, handler := range handlers {
			q.deliver(handler, mention)
		}
	}
}

// deliver runs one handler, containing any panic to this mention.
func (q *MentionQueue) deliver(handler func(context.Context, domain.Mention), mention domain.Mention) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic while handling mention",
				"mention_id", mention.ID,
				"panic", r,
			)
		}
	}()

	handler(q.ctx, mention)
}

// Publish enqueues a mention.
// Non-blocking: if the buffer is full, the mention is dropped with a warning.
func (q *MentionQueue) Publish(mention domain.Mention) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		slog.Warn("attempted to publish to closed mention queue", "mention_id", mention.ID)
		return ErrQueueClosed
	}

	select {
	case q.mentions <- mention:
		slog.Debug("queued mention", "mention_id", mention.ID, "channel", mention.ChannelID)
		return nil
	default:
		slog.Warn("mention buffer full, dropping mention", "mention_id", mention.ID)
		return ErrQueueFull
	}
}

// Subscribe registers a handler for queued mentions.
func (q *MentionQueue) Subscribe(handler func(context.Context, domain.Mention)) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.handlers = append(q.handlers, handler)
	return nil
}

// Close stops accepting mentions, lets the dispatcher finish the ones already
// queued, and waits for it to exit.
func (q *MentionQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.mentions)
	q.mu.Unlock()

	q.wg.Wait()
	q.cancel()

	slog.Debug("mention queue closed")
}
