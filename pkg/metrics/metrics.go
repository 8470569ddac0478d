// Package metrics provides the centralized Prometheus registry reference for
// the Blitzr client. The metrics themselves are defined next to the code that
// records them (pkg/client) to avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Blitzr client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - blitzr_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - blitzr_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - blitzr_errors_total{class} (Counter): Errors by class (configuration, network, client, server)
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(blitzr_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(blitzr_request_duration_seconds_bucket[5m]))
//
//   # Server Error Share
//   sum(rate(blitzr_errors_total{class="server"}[5m])) /
//   sum(rate(blitzr_requests_total[5m]))
