package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/api/metrics"
	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	sendTimeout    = 15 * time.Second
)

// Dispatcher delivers contact notifications on a fixed set of workers.
// Messages from the same sender always land on the same worker, so they are
// delivered in submission order.
type Dispatcher struct {
	workers []chan domain.ContactMessage
	mailer  ports.Mailer
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ContactMessage, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ContactMessage, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands msg to the worker responsible for its sender. It never
// blocks: when the worker's buffer is full the notification is dropped.
func (d *Dispatcher) Enqueue(msg domain.ContactMessage) {
	idx := d.shardIndex(msg.Email)
	select {
	case d.workers[idx] <- msg:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("contact_id", msg.ID).
			Int("worker_id", idx).
			Msg("notification queue full, dropping")
	}
}

// shardIndex maps a sender email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ContactMessage) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			metrics.NotificationQueueDepth.WithLabelValues(label).Dec()
			d.deliver(ctx, id, msg)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, id int, msg domain.ContactMessage) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := d.mailer.SendContactNotification(sendCtx, msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("contact_id", msg.ID).
			Int("worker_id", id).
			Msg("contact notification failed")
		return
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
}
