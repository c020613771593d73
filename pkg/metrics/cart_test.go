package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCartMetricsExportsCountersAndHistograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCartMetrics(reg)

	metrics.IncMutation("add_item")
	metrics.IncMutation("add_item")
	metrics.IncPersistFailure("save")
	metrics.ObservePersist("save", 40*time.Millisecond)
	metrics.ObserveCartTotal(14386.25)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "command", "add_item"); err != nil {
		t.Fatalf("fetch mutations: %v", err)
	} else if got != 2 {
		t.Fatalf("expected mutations=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "cart_persistence_failures_total", "operation", "save"); err != nil {
		t.Fatalf("fetch failures: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failures=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "cart_persistence_duration_seconds", "operation", "save"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}

	mf := findMetricFamily(mfs, "cart_total_amount")
	if mf == nil || len(mf.GetMetric()) != 1 {
		t.Fatalf("expected cart_total_amount to be exported")
	}
	if got := mf.GetMetric()[0].GetHistogram().GetSampleSum(); got != 14386.25 {
		t.Fatalf("expected total sum 14386.25, got %f", got)
	}
}

func TestCartMetricsEmptyLabelsAreNormalized(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCartMetrics(reg)
	metrics.IncPersistFailure("")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "cart_persistence_failures_total", "operation", "unknown"); err != nil || got != 1 {
		t.Fatalf("expected unknown label count 1, got %f (%v)", got, err)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var nilMetrics *CartMetrics
	nilMetrics.IncMutation("clear")
	nilMetrics.IncPersistFailure("load")
	nilMetrics.ObservePersist("load", time.Second)
	nilMetrics.ObserveCartTotal(1)

	unregistered := NewCartMetrics(nil)
	unregistered.IncMutation("clear")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
