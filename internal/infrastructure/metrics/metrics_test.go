package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.RecordsProcessed == nil || m.RecordsDropped == nil || m.Chargebacks == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	// Counter vecs register lazily; touch one label so Gather sees it.
	m.RecordsProcessed.WithLabelValues("deposit").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}
