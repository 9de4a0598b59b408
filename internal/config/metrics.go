package config

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultMetricsService),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
