package bot

import (
	"context"
	"sync"
)

// queueCapacity bounds a single chat's backlog. A full queue blocks the
// update loop rather than dropping or reordering messages.
const queueCapacity = 64

// dispatcher gives every chat its own worker goroutine fed by a FIFO
// channel. A field answer arriving right behind the previous one must be
// applied to the state that previous answer produced, so same-chat tasks
// run strictly in arrival order; separate chats run concurrently.
type dispatcher struct {
	mu     sync.Mutex
	queues map[int64]chan func()
}

func newDispatcher() *dispatcher {
	return &dispatcher{queues: make(map[int64]chan func())}
}

// enqueue appends task to the chat's queue, starting the chat's worker on
// first use. Workers stop when ctx is cancelled.
func (d *dispatcher) enqueue(ctx context.Context, chatID int64, task func()) {
	d.mu.Lock()
	queue, ok := d.queues[chatID]
	if !ok {
		queue = make(chan func(), queueCapacity)
		d.queues[chatID] = queue
		go worker(ctx, queue)
	}
	d.mu.Unlock()

	select {
	case queue <- task:
	case <-ctx.Done():
	}
}

func worker(ctx context.Context, queue <-chan func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-queue:
			task()
		}
	}
}
