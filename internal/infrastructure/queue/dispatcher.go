package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/netbeans/netbeans-server/internal/api/metrics"
	"github.com/netbeans/netbeans-server/internal/core/domain"
	"github.com/netbeans/netbeans-server/internal/core/ports"
)

const (
	defaultWorkers     = 2
	defaultBuffer      = 128
	defaultSendTimeout = 30 * time.Second
	auditTimeout       = 5 * time.Second
)

// ErrStopped is returned by Shutdown when called twice.
var ErrStopped = errors.New("mail dispatcher already stopped")

// Config tunes the dispatcher. Zero values fall back to defaults.
type Config struct {
	Workers     int
	QueueSize   int // per worker
	SendTimeout time.Duration
}

// MailDispatcher delivers notification mail on a fixed set of workers.
// Messages are sharded by recipient so mail to one address keeps its order.
// Delivery is best-effort: a full queue drops the message and a failed send
// is not retried.
type MailDispatcher struct {
	workers     []chan domain.MailMessage
	sender      ports.MailSender
	dedup       ports.NotificationDedup
	audit       ports.AuditLog
	sendTimeout time.Duration
	log         zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewMailDispatcher creates a dispatcher. dedup and audit may be nil.
func NewMailDispatcher(cfg Config, sender ports.MailSender, dedup ports.NotificationDedup, audit ports.AuditLog, log zerolog.Logger) *MailDispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultBuffer
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	d := &MailDispatcher{
		workers:     make([]chan domain.MailMessage, cfg.Workers),
		sender:      sender,
		dedup:       dedup,
		audit:       audit,
		sendTimeout: cfg.SendTimeout,
		log:         log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.MailMessage, cfg.QueueSize)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Shutdown has drained their queue.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands msg to the worker responsible for its recipient. It never
// blocks and reports false when the message was dropped.
func (d *MailDispatcher) Enqueue(msg domain.MailMessage) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.drop(msg, "dispatcher stopped")
		return false
	}
	select {
	case d.workers[d.shardIndex(recipient(msg))] <- msg:
		metrics.MailQueueDepth.Inc()
		return true
	default:
		d.drop(msg, "queue full")
		return false
	}
}

// Shutdown stops accepting mail and waits for queued messages to be sent or
// for ctx to expire.
func (d *MailDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return ErrStopped
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *MailDispatcher) drop(msg domain.MailMessage, reason string) {
	metrics.NotificationsTotal.WithLabelValues(msg.Kind, "dropped").Inc()
	d.log.Warn().
		Str("kind", msg.Kind).
		Str("subject", msg.Subject).
		Str("reason", reason).
		Msg("notification dropped")
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(key)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func recipient(msg domain.MailMessage) string {
	if len(msg.To) == 0 {
		return ""
	}
	return msg.To[0]
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.MailMessage) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			metrics.MailQueueDepth.Dec()
			d.deliver(ctx, id, msg)
		}
	}
}

func (d *MailDispatcher) deliver(ctx context.Context, workerID int, msg domain.MailMessage) {
	log := d.log.With().
		Int("worker_id", workerID).
		Str("kind", msg.Kind).
		Str("subject", msg.Subject).
		Logger()

	if d.dedup != nil && msg.DedupKey != "" {
		dup, err := d.dedup.IsDuplicate(ctx, msg.DedupKey)
		if err != nil {
			log.Warn().Err(err).Msg("dedup check failed, sending anyway")
		} else if dup {
			metrics.NotificationsTotal.WithLabelValues(msg.Kind, "skipped").Inc()
			log.Info().Msg("duplicate notification skipped")
			d.record(ctx, domain.AuditMailSkipped, msg, nil)
			return
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	start := time.Now()
	err := d.sender.Send(sendCtx, msg)
	cancel()

	if err != nil {
		metrics.MailSendDuration.WithLabelValues("failed").Observe(time.Since(start).Seconds())
		metrics.NotificationsTotal.WithLabelValues(msg.Kind, "failed").Inc()
		log.Error().Err(err).Msg("notification send failed")
		d.record(ctx, domain.AuditMailFailed, msg, err)
		return
	}

	metrics.MailSendDuration.WithLabelValues("sent").Observe(time.Since(start).Seconds())
	metrics.NotificationsTotal.WithLabelValues(msg.Kind, "sent").Inc()
	log.Debug().Msg("notification sent")

	if d.dedup != nil && msg.DedupKey != "" {
		if err := d.dedup.Mark(ctx, msg.DedupKey); err != nil {
			log.Warn().Err(err).Msg("dedup mark failed")
		}
	}
	d.record(ctx, domain.AuditMailSent, msg, nil)
}

func (d *MailDispatcher) record(ctx context.Context, action string, msg domain.MailMessage, sendErr error) {
	if d.audit == nil {
		return
	}
	detail := map[string]string{
		"to":      strings.Join(msg.To, ","),
		"subject": msg.Subject,
	}
	if sendErr != nil {
		detail["error"] = sendErr.Error()
	}
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	err := d.audit.Record(auditCtx, domain.AuditEvent{
		Action:     action,
		TargetType: "mail",
		TargetID:   msg.Kind,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		d.log.Warn().Err(err).Str("action", action).Msg("audit record failed")
	}
}
