/*
Package observability exports validation activity as Prometheus metrics.

Metrics implements validator.Observer:

	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg, "myapp")
	if err != nil {
	    return err
	}
	v := validator.New(s, validator.WithObserver(m))

Exported series (with the optional namespace prefix):
  - dischema_checks_total{result}: checks by result ("valid" or "invalid")
  - dischema_errors_total{kind}: validation errors by kind
  - dischema_check_duration_seconds: check latency histogram
*/
package observability
