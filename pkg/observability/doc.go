/*
Package observability wires machine lifecycle hooks into Prometheus
metrics. The Metrics collector counts committed transitions per edge and
isolated listener failures; attach it to a machine via its Hooks method:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	m, err := ratchet.New(def, ratchet.WithHooks(metrics.Hooks()))
*/
package observability
