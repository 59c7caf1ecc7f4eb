package observability

import "github.com/prometheus/client_golang/prometheus"

// Sized is the part of a registry the collector reads: a live count of
// interned entries. Both sentinel.Registry and sbool.Registry satisfy it.
type Sized interface {
	Len() int
}

// Collector exports the entry counts of a set of registries as a prometheus
// gauge with a "registry" label, one series per named family. Counts are
// read at scrape time, so no hook wiring is required.
type Collector struct {
	desc     *prometheus.Desc
	families map[string]Sized
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector over the given registries, keyed by the
// label value each should be exported under.
func NewCollector(families map[string]Sized) *Collector {
	return &Collector{
		desc: prometheus.NewDesc(
			"sigil_registry_entries",
			"Number of interned entries per registry family.",
			[]string{"registry"},
			nil,
		),
		families: families,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for name, reg := range c.families {
		ch <- prometheus.MustNewConstMetric(
			c.desc,
			prometheus.GaugeValue,
			float64(reg.Len()),
			name,
		)
	}
}
