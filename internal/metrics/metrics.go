package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "insurance_cms"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	FeedbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_total",
		Help:      "Feedback votes by content kind and outcome.",
	}, []string{"kind", "outcome"})

	ViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_views_total",
		Help:      "Counted content views.",
	}, []string{"kind"})

	ContactSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Stored contact form submissions.",
	})

	MailFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_failures_total",
		Help:      "Notification mails that could not be delivered.",
	})
)
