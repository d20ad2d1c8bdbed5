package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/sisies/sisies-api/config"
	"github.com/sisies/sisies-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSender struct {
	mu       sync.Mutex
	calls    int
	failures int
	err      error
}

func (s *stubSender) SendOrderConfirmation(order *models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.calls <= s.failures {
		return "", s.err
	}
	return "email-id-123", nil
}

func (s *stubSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testNotifyConfig() config.NotifyConfig {
	return config.NotifyConfig{Workers: 1, QueueSize: 4, MaxAttempts: 3}
}

func testOrder() *models.Order {
	return &models.Order{OrderNumber: "483921", CustomerEmail: "a@b.com"}
}

func TestDispatcherSendsEnqueuedOrder(t *testing.T) {
	sender := &stubSender{}
	d := NewNotificationDispatcher(sender, testNotifyConfig())

	d.Enqueue(testOrder())
	d.Close()

	assert.Equal(t, 1, sender.callCount())
}

func TestDispatcherRetriesThenSucceeds(t *testing.T) {
	sender := &stubSender{failures: 2, err: errors.New("provider rejected")}
	d := NewNotificationDispatcher(sender, testNotifyConfig())

	d.Enqueue(testOrder())
	d.Close()

	assert.Equal(t, 3, sender.callCount())
}

func TestDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	sender := &stubSender{failures: 100, err: errors.New("provider down")}
	d := NewNotificationDispatcher(sender, testNotifyConfig())

	d.Enqueue(testOrder())
	d.Close()

	// Gave up after maxAttempts; the failure stays a logged warning.
	assert.Equal(t, 3, sender.callCount())
}

func TestEnqueueNeverBlocksWhenQueueFull(t *testing.T) {
	sender := &stubSender{}
	// No workers draining: everything past the queue size must be dropped,
	// not block the caller.
	d := &NotificationDispatcher{
		queue:       make(chan *models.Order, 2),
		sender:      sender,
		maxAttempts: 1,
	}

	// Would hang the test on the third call if Enqueue blocked.
	for i := 0; i < 10; i++ {
		d.Enqueue(testOrder())
	}
	require.Len(t, d.queue, 2)
}

func TestEnqueueAfterCloseDropsOrder(t *testing.T) {
	sender := &stubSender{}
	d := NewNotificationDispatcher(sender, testNotifyConfig())
	d.Close()

	// Must drop, not panic on the closed queue channel.
	d.Enqueue(testOrder())
	d.Close()

	assert.Equal(t, 0, sender.callCount())
}

func TestSendNowReturnsProviderID(t *testing.T) {
	sender := &stubSender{}
	d := NewNotificationDispatcher(sender, testNotifyConfig())
	defer d.Close()

	id, err := d.SendNow(testOrder())
	require.NoError(t, err)
	assert.Equal(t, "email-id-123", id)
}
