package metrics

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metrics *Metrics
)

func SetGlobal(m *Metrics) {
	metrics = m
}

type Gauge interface {
	Inc()
	Dec()
	Add(float64)
	Set(float64)
}

type Counter interface {
	Inc()
	Add(float64)
}

type Metrics struct {
	host          string
	sessions      *prometheus.CounterVec
	acceptErrors  *prometheus.CounterVec
	receivedBytes *prometheus.CounterVec
	sentBytes     *prometheus.CounterVec
	sendErrors    *prometheus.CounterVec
	sendRate      *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	host, _ := os.Hostname()
	m := &Metrics{
		host: host,
		sessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "streambench_server_sessions_total",
				Help: "Total number of accepted sessions",
			},
			[]string{"host"}),

		acceptErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "streambench_server_accept_errors_total",
				Help: "Total number of failed accept attempts",
			},
			[]string{"host"}),

		receivedBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "streambench_server_received_bytes_total",
				Help: "Total bytes drained from accepted sessions",
			},
			[]string{"host"}),

		sentBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "streambench_client_sent_bytes_total",
				Help: "Total payload bytes sent by the client",
			},
			[]string{"host"}),

		sendErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "streambench_client_send_errors_total",
				Help: "Total number of failed sends",
			},
			[]string{"host"}),

		sendRate: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "streambench_client_send_rate_mbps",
				Help: "Send rate over the last measurement window in Mbps",
			},
			[]string{"host"}),
	}
	prometheus.MustRegister(m.sessions)
	prometheus.MustRegister(m.acceptErrors)
	prometheus.MustRegister(m.receivedBytes)
	prometheus.MustRegister(m.sentBytes)
	prometheus.MustRegister(m.sendErrors)
	prometheus.MustRegister(m.sendRate)
	return m
}

func Sessions() Counter {
	if metrics == nil || metrics.sessions == nil {
		return nilCounter
	}
	return metrics.sessions.
		With(prometheus.Labels{
			"host": metrics.host,
		})
}

func AcceptErrors() Counter {
	if metrics == nil || metrics.acceptErrors == nil {
		return nilCounter
	}
	return metrics.acceptErrors.
		With(prometheus.Labels{
			"host": metrics.host,
		})
}

func ReceivedBytes() Counter {
	if metrics == nil || metrics.receivedBytes == nil {
		return nilCounter
	}
	return metrics.receivedBytes.
		With(prometheus.Labels{
			"host": metrics.host,
		})
}

func SentBytes() Counter {
	if metrics == nil || metrics.sentBytes == nil {
		return nilCounter
	}
	return metrics.sentBytes.
		With(prometheus.Labels{
			"host": metrics.host,
		})
}

func SendErrors() Counter {
	if metrics == nil || metrics.sendErrors == nil {
		return nilCounter
	}
	return metrics.sendErrors.
		With(prometheus.Labels{
			"host": metrics.host,
		})
}

func SendRate() Gauge {
	if metrics == nil || metrics.sendRate == nil {
		return nilGauge
	}
	return metrics.sendRate.
		With(prometheus.Labels{
			"host": metrics.host,
		})
}
