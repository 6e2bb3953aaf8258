package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	r.OrdersExtracted.Add(3)
	r.RowsExported.WithLabelValues("item").Add(5)

	if got := testutil.ToFloat64(r.OrdersExtracted); got != 3 {
		t.Errorf("OrdersExtracted: got %v, want 3", got)
	}
	if got := testutil.ToFloat64(r.RowsExported.WithLabelValues("item")); got != 5 {
		t.Errorf("RowsExported{item}: got %v, want 5", got)
	}
}

func TestGathererExposesEveryFamily(t *testing.T) {
	r := NewRegistry()
	r.RowsExported.WithLabelValues("delivery").Inc()

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"order_export_listing_pages_total",
		"order_export_orders_failed_total",
		"order_export_rows_total",
		"order_export_detail_seconds",
		"order_export_last_run_success",
	} {
		if !names[want] {
			t.Errorf("family %s not gathered", want)
		}
	}

	if n, err := testutil.GatherAndCount(r.Gatherer(), "order_export_rows_total"); err != nil || n != 1 {
		t.Errorf("rows_total series: got %d (err %v), want 1", n, err)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.OrdersFailed.Inc()

	path := filepath.Join(t.TempDir(), "nested", "order_export.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "order_export_orders_failed_total 1") {
		t.Errorf("textfile missing failed counter:\n%s", b)
	}
}
