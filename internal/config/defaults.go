package config

// Render defaults.
const (
	DefaultWindowStart = -5
	DefaultWindowStop  = 6
	DefaultStyle       = StyleRounded
	DefaultColor       = true
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = FormatText
)

// Telemetry defaults.
const (
	DefaultOTLPEndpoint = ""
	DefaultOTLPHeaders  = ""
	DefaultOTLPInsecure = false
	DefaultSampleRatio  = 0.0
)

// Scenario defaults.
const (
	DefaultScenarioStrict = false
)
