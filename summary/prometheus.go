package summary

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile exports every row of s as gauges in the Prometheus text
// format, e.g. for the node_exporter textfile collector.
func WriteTextfile(filename string, tag string, s *Summary) error {
	labels := []string{"app", "tag"}

	runtime := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "appenergy_runtime_seconds",
			Help: "Runtime of the application.",
		},
		labels,
	)
	power := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "appenergy_average_power_watts",
			Help: "Average CPU power while the application was running.",
		},
		labels,
	)
	energy := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "appenergy_energy_joules",
			Help: "Energy consumed by the application.",
		},
		labels,
	)
	ed := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "appenergy_energy_delay_product",
			Help: "Energy-delay product of the application in joule seconds.",
		},
		labels,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(runtime, power, energy, ed)

	for _, r := range s.Rows {
		runtime.WithLabelValues(r.App, tag).Set(r.Time)
		power.WithLabelValues(r.App, tag).Set(r.Power)
		energy.WithLabelValues(r.App, tag).Set(r.Energy)
		ed.WithLabelValues(r.App, tag).Set(r.ED)
	}

	if err := prometheus.WriteToTextfile(filename, reg); err != nil {
		return fmt.Errorf("Error while writing metrics file %v: %w", filename, err)
	}
	return nil
}
