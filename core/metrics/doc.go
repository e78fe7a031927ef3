// Package metrics defines the recorder interface used to publish allocation
// run figures. Implementations such as the Prometheus text-file sink and the
// InfluxDB sink live in infra/metrics and register themselves with the
// factory registry; NewRecorder combines several of them in a MultiRecorder.
package metrics
