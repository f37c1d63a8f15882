package notify

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monupal1122/grocery-backend/models"
)

type countingMailer struct {
	mu            sync.Mutex
	confirmations int
	statusUpdates int
	otps          int
	fail          int // fail the first N confirmation attempts
}

func (m *countingMailer) OrderConfirmation(models.Order, models.User, models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations++
	if m.fail > 0 {
		m.fail--
		return errors.New("smtp timeout")
	}
	return nil
}

func (m *countingMailer) OrderStatusUpdate(models.Order, models.User, models.Address, string, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusUpdates++
	return nil
}

func (m *countingMailer) OTP(string, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps++
	return nil
}

func (m *countingMailer) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmations, m.statusUpdates
}

func newTestQueue(mailer Mailer, size int) *Queue {
	q := NewQueue(mailer, size)
	q.backoff = time.Millisecond
	return q
}

func TestQueueDelivers(t *testing.T) {
	mailer := &countingMailer{}
	q := newTestQueue(mailer, 8)

	q.OrderConfirmation(models.Order{}, models.User{}, models.Address{})
	q.OrderStatusUpdate(models.Order{}, models.User{}, models.Address{}, "Pending", "Confirmed")
	q.Close()

	confirmations, statusUpdates := mailer.counts()
	assert.Equal(t, 1, confirmations)
	assert.Equal(t, 1, statusUpdates)
}

func TestQueueRetriesUntilSuccess(t *testing.T) {
	mailer := &countingMailer{fail: 2}
	q := newTestQueue(mailer, 8)

	q.OrderConfirmation(models.Order{}, models.User{}, models.Address{})
	q.Close()

	confirmations, _ := mailer.counts()
	assert.Equal(t, 3, confirmations)
}

func TestQueueDropsAfterMaxAttempts(t *testing.T) {
	mailer := &countingMailer{fail: 10}
	q := newTestQueue(mailer, 8)

	q.OrderConfirmation(models.Order{}, models.User{}, models.Address{})
	q.Close()

	confirmations, _ := mailer.counts()
	assert.Equal(t, 3, confirmations)
}

func TestQueueFailureDoesNotBlockLaterTasks(t *testing.T) {
	mailer := &countingMailer{fail: 3}
	q := newTestQueue(mailer, 8)

	q.OrderConfirmation(models.Order{}, models.User{}, models.Address{})
	q.OrderStatusUpdate(models.Order{}, models.User{}, models.Address{}, "Pending", "Delivered")
	q.Close()

	_, statusUpdates := mailer.counts()
	assert.Equal(t, 1, statusUpdates)
}

func TestEnqueueCustomTask(t *testing.T) {
	mailer := &countingMailer{}
	q := newTestQueue(mailer, 8)

	ran := make(chan struct{})
	q.Enqueue("test-task", func() error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
	q.Close()
}

func TestEnqueueAfterCloseIsDropped(t *testing.T) {
	mailer := &countingMailer{}
	q := newTestQueue(mailer, 8)
	q.Close()

	q.OrderConfirmation(models.Order{}, models.User{}, models.Address{})
	q.Close()

	confirmations, _ := mailer.counts()
	assert.Equal(t, 0, confirmations)
}

func TestQueueFullDropsInsteadOfBlocking(t *testing.T) {
	mailer := &countingMailer{}
	q := &Queue{
		mailer:      mailer,
		tasks:       make(chan task, 1),
		done:        make(chan struct{}),
		maxAttempts: 3,
		backoff:     time.Millisecond,
	}
	// No worker running: the buffer fills and the second enqueue must
	// return immediately.
	q.Enqueue("first", func() error { return nil })

	finished := make(chan struct{})
	go func() {
		q.Enqueue("second", func() error { return nil })
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}

	go q.run()
	q.Close()
	require.Equal(t, 0, mailer.otps)
}
