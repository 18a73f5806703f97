package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// CounterTotals gathers the named counter family and returns its values keyed
// by the value of label. Missing families yield an empty map.
func CounterTotals(g prometheus.Gatherer, name, label string) (map[string]float64, error) {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		if fam.GetType() != dto.MetricType_COUNTER {
			return nil, fmt.Errorf("metric %s is %s, not a counter", name, fam.GetType())
		}
		for _, m := range fam.GetMetric() {
			out[labelValue(m, label)] += m.GetCounter().GetValue()
		}
	}
	return out, nil
}

func labelValue(m *dto.Metric, label string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == label {
			return lp.GetValue()
		}
	}
	return ""
}
