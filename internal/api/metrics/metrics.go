// Package metrics defines and registers all custom Prometheus metrics for the
// netbeans server. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on package init;
// the router exposes them on /metrics when metrics are enabled.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "netbeans"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRejectionsTotal counts requests stopped by the auth or role gate.
// Label:
//   - reason: "missing_token", "invalid_token", "no_identity" or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth and role gates.",
	},
	[]string{"reason"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Domain metrics ────────────────────────────────────────────────────────────

// JobMutationsTotal counts successful job mutations.
// Label:
//   - op: "create", "update" or "delete"
var JobMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_mutations_total",
		Help:      "Total number of job postings created, updated or deleted.",
	},
	[]string{"op"},
)

// FormsSubmittedTotal counts stored public form submissions.
// Label:
//   - form: "contact", "consultation" or "job_application"
var FormsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forms_submitted_total",
		Help:      "Total number of public form submissions stored.",
	},
	[]string{"form"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts notification outcomes.
// Labels:
//   - kind: message kind (e.g. "contact_admin", "application_confirmation")
//   - result: "sent", "failed", "dropped" or "skipped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification emails, by kind and outcome.",
	},
	[]string{"kind", "result"},
)

// MailQueueDepth tracks the number of messages waiting for a mail worker.
var MailQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of notification emails waiting to be sent.",
	},
)

// MailSendDuration measures a single SMTP delivery.
// Label:
//   - result: "sent" or "failed"
var MailSendDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_send_duration_seconds",
		Help:      "Duration of SMTP delivery attempts.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
