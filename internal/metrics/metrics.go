package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsExported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictionio_events_exported_total",
		Help: "Total number of events written by exporters, labelled by format.",
	}, []string{"format"})

	EncodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictionio_event_encode_failures_total",
		Help: "Total number of events rejected because they could not be encoded.",
	}, []string{"format"})

	BytesWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictionio_export_bytes_written_total",
		Help: "Total number of encoded bytes handed to export files.",
	}, []string{"format"})

	OpenExporters = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "predictionio_open_exporters",
		Help: "Number of file exporters currently open.",
	})
)
