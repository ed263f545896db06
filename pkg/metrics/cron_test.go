package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestCronJobMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewCronJobMetrics(reg)
	job := "test-job"
	metrics.ObserveDuration(job, 250*time.Millisecond)
	metrics.IncSuccess(job)
	metrics.IncFailure(job)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "job_success", "job", job); err != nil {
		t.Fatalf("fetch success: %v", err)
	} else if got != 1 {
		t.Fatalf("expected success=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "job_failure", "job", job); err != nil {
		t.Fatalf("fetch failure: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failure=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "job_duration_seconds", "job", job); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
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

func TestLoadMetricsSplitsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLoadMetrics(reg)
	m.Observe("bulk_status", 3, nil)
	m.Observe("bulk_status", 2, nil)
	m.Observe("bulk_status", 5, fmt.Errorf("boom"))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "load_rows_affected_total", "operation", "bulk_status"); err != nil {
		t.Fatalf("fetch rows: %v", err)
	} else if got != 5 {
		t.Fatalf("expected rows=5, got %f", got)
	}
	mf := findMetricFamily(mfs, "load_mutations_total")
	if mf == nil {
		t.Fatal("load_mutations_total not found")
	}
	var ok, failed float64
	for _, metric := range mf.GetMetric() {
		switch {
		case matchesLabel(metric.GetLabel(), "outcome", "ok"):
			ok = metric.GetCounter().GetValue()
		case matchesLabel(metric.GetLabel(), "outcome", "error"):
			failed = metric.GetCounter().GetValue()
		}
	}
	if ok != 2 || failed != 1 {
		t.Fatalf("expected ok=2 error=1, got ok=%f error=%f", ok, failed)
	}
}

func TestOutboxMetricsNilSafe(t *testing.T) {
	var m *OutboxMetrics
	m.IncPublished("load_created")
	m.IncFailed("load_created")
	m.IncDeadLettered("load_created", "max_attempts")

	reg := prometheus.NewRegistry()
	live := NewOutboxMetrics(reg)
	live.IncPublished("load_created")
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "outbox_published_total", "event_type", "load_created"); err != nil {
		t.Fatalf("fetch published: %v", err)
	} else if got != 1 {
		t.Fatalf("expected published=1, got %f", got)
	}
}
