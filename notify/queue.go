package notify

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/monupal1122/grocery-backend/models"
)

// Queue delivers mail off the request path. Tasks are retried with a doubling
// backoff; a task that exhausts its attempts, or arrives while the buffer is
// full, is dropped with a log line. The caller never sees a delivery failure.
type Queue struct {
	mailer      Mailer
	tasks       chan task
	done        chan struct{}
	mu          sync.Mutex
	closed      bool
	maxAttempts int
	backoff     time.Duration
}

type task struct {
	id   string
	kind string
	send func() error
}

func NewQueue(mailer Mailer, size int) *Queue {
	q := &Queue{
		mailer:      mailer,
		tasks:       make(chan task, size),
		done:        make(chan struct{}),
		maxAttempts: 3,
		backoff:     time.Second,
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for t := range q.tasks {
		q.deliver(t)
	}
}

func (q *Queue) deliver(t task) {
	delay := q.backoff
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err := t.send()
		if err == nil {
			return
		}
		log.Printf("notify: task %s (%s) attempt %d/%d failed: %v", t.id, t.kind, attempt, q.maxAttempts, err)
		if attempt < q.maxAttempts {
			time.Sleep(delay)
			delay *= 2
		}
	}
	log.Printf("notify: task %s (%s) dropped after %d attempts", t.id, t.kind, q.maxAttempts)
}

func (q *Queue) enqueue(kind string, send func() error) {
	t := task{id: uuid.NewString(), kind: kind, send: send}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		log.Printf("notify: queue closed, dropping task %s (%s)", t.id, t.kind)
		return
	}
	select {
	case q.tasks <- t:
	default:
		log.Printf("notify: queue full, dropping task %s (%s)", t.id, t.kind)
	}
}

// Enqueue schedules an arbitrary delivery function under the queue's retry
// policy.
func (q *Queue) Enqueue(kind string, send func() error) {
	q.enqueue(kind, send)
}

// OrderConfirmation queues a confirmation mail. Fire and forget.
func (q *Queue) OrderConfirmation(order models.Order, user models.User, address models.Address) {
	q.enqueue("order-confirmation", func() error {
		return q.mailer.OrderConfirmation(order, user, address)
	})
}

// OrderStatusUpdate queues a status-change mail. Fire and forget.
func (q *Queue) OrderStatusUpdate(order models.Order, user models.User, address models.Address, oldStatus, newStatus string) {
	q.enqueue("order-status-update", func() error {
		return q.mailer.OrderStatusUpdate(order, user, address, oldStatus, newStatus)
	})
}

// Close stops accepting tasks and waits for the worker to drain. Tasks
// enqueued after Close are dropped with a log line; Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()
	<-q.done
}
