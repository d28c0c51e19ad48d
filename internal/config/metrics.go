package config

import (
	"fmt"
	"time"
)

// MetricsConfig controls the Prometheus listener and optional OTLP push.
type MetricsConfig struct {
	Enabled        bool
	Port           string
	OtlpEndpoint   string
	ServiceName    string
	OtlpInsecure   bool
	ExportInterval time.Duration
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),

		ExportInterval: durationEnvOrDefault(envOtelInterval, defaultOtelExport),
	}
}

// conflictsWith reports an error when the metrics listener would bind the
// same port as the main HTTP server. Port "0" picks a free port and never
// conflicts.
func (m MetricsConfig) conflictsWith(httpPort string) error {
	if !m.Enabled || m.Port == "0" || m.Port != httpPort {
		return nil
	}
	return fmt.Errorf("%s must differ from %s, both are %q", envMetricsPort, envPort, m.Port)
}
