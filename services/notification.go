package services

import (
	"log"
	"sync"
	"time"

	"github.com/sisies/sisies-api/config"
	"github.com/sisies/sisies-api/models"
)

// MailSender hands a rendered confirmation off to the transactional email
// provider. Returns the provider's message id.
type MailSender interface {
	SendOrderConfirmation(order *models.Order) (string, error)
}

// NotificationDispatcher sends order confirmations off the request path.
// The queue is bounded and Enqueue never blocks: when the queue is full the
// notification is dropped with a warning, because email must never hold up
// or fail a checkout that is already persisted.
type NotificationDispatcher struct {
	queue       chan *models.Order
	sender      MailSender
	maxAttempts int
	retryDelay  time.Duration
	wg          sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewNotificationDispatcher(sender MailSender, cfg config.NotifyConfig) *NotificationDispatcher {
	d := &NotificationDispatcher{
		queue:       make(chan *models.Order, cfg.QueueSize),
		sender:      sender,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
	}
	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

func (d *NotificationDispatcher) Enqueue(order *models.Order) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		log.Printf("Notification dispatcher closed, dropping confirmation for order %s", order.OrderNumber)
		return
	}
	select {
	case d.queue <- order:
	default:
		log.Printf("Notification queue full, dropping confirmation for order %s", order.OrderNumber)
	}
}

// SendNow sends synchronously, for the explicit notification endpoint.
func (d *NotificationDispatcher) SendNow(order *models.Order) (string, error) {
	return d.sender.SendOrderConfirmation(order)
}

// Close stops accepting work and waits for in-flight sends to finish.
// Enqueue after Close drops the order instead of panicking on the closed
// channel.
func (d *NotificationDispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *NotificationDispatcher) worker() {
	defer d.wg.Done()
	for order := range d.queue {
		d.send(order)
	}
}

func (d *NotificationDispatcher) send(order *models.Order) {
	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		var emailID string
		emailID, err = d.sender.SendOrderConfirmation(order)
		if err == nil {
			log.Printf("Confirmation email sent for order %s (email id %s)", order.OrderNumber, emailID)
			return
		}
		if attempt < d.maxAttempts {
			time.Sleep(d.retryDelay * time.Duration(attempt))
		}
	}
	// Non-fatal: the order is already persisted.
	log.Printf("Warning: confirmation email for order %s failed after %d attempts: %v", order.OrderNumber, d.maxAttempts, err)
}
