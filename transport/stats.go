package transport

import "github.com/prometheus/client_golang/prometheus"

var stats = metrics{
	datagramsSent: prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "crcgen",
		Subsystem: "udp",
		Name:      "datagrams_sent_total",
		Help:      "Number of UDP datagrams sent",
	}),

	datagramsReceived: prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "crcgen",
		Subsystem: "udp",
		Name:      "datagrams_received_total",
		Help:      "Number of UDP datagrams received",
	}),

	bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crcgen",
		Subsystem: "udp",
		Name:      "bytes_total",
		Help:      "Number of UDP payload bytes sent and received",
	}, []string{
		"direction",
	}),
}

type metrics struct {
	datagramsSent     prometheus.Counter
	datagramsReceived prometheus.Counter
	bytes             *prometheus.CounterVec
}

func init() {
	prometheus.MustRegister(stats.datagramsSent)
	prometheus.MustRegister(stats.datagramsReceived)
	prometheus.MustRegister(stats.bytes)
}

func (m *metrics) Sent(n int) {
	m.datagramsSent.Inc()
	m.bytes.WithLabelValues("out").Add(float64(n))
}

func (m *metrics) Received(n int) {
	m.datagramsReceived.Inc()
	m.bytes.WithLabelValues("in").Add(float64(n))
}
