package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the counters of one export run.
type Registry struct {
	reg              *prometheus.Registry
	ListingPages     prometheus.Counter
	Summaries        prometheus.Counter
	OrdersExtracted  prometheus.Counter
	OrdersFailed     prometheus.Counter
	ItemsExtracted   prometheus.Counter
	RowsExported     *prometheus.CounterVec
	DetailSeconds    prometheus.Histogram
	LastRunSucceeded prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	listingPages := prometheus.NewCounter(prometheus.CounterOpts{Name: "order_export_listing_pages_total"})
	summaries := prometheus.NewCounter(prometheus.CounterOpts{Name: "order_export_summaries_total"})
	extracted := prometheus.NewCounter(prometheus.CounterOpts{Name: "order_export_orders_extracted_total"})
	failed := prometheus.NewCounter(prometheus.CounterOpts{Name: "order_export_orders_failed_total"})
	items := prometheus.NewCounter(prometheus.CounterOpts{Name: "order_export_items_extracted_total"})
	rows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_export_rows_total",
		Help: "Exported rows by kind (item, delivery, fresh).",
	}, []string{"kind"})
	detailSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_export_detail_seconds",
		Buckets: prometheus.DefBuckets,
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{Name: "order_export_last_run_success"})

	r.MustRegister(listingPages, summaries, extracted, failed, items, rows, detailSeconds, lastRun)
	return &Registry{
		reg:              r,
		ListingPages:     listingPages,
		Summaries:        summaries,
		OrdersExtracted:  extracted,
		OrdersFailed:     failed,
		ItemsExtracted:   items,
		RowsExported:     rows,
		DetailSeconds:    detailSeconds,
		LastRunSucceeded: lastRun,
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the current values in the text exposition format,
// for node_exporter's textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("metrics: create dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}
	return nil
}
