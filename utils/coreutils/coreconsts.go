package coreutils

const (
	// General core constants
	OnErrorPanic OnError = "panic"

	// Configuration files
	DefaultConfigBaseName = "rtconfig"
	LegacyConfigBaseName  = "ring-toolkit.config"

	// Env
	ErrorHandling = "RING_TOOLKIT_ERROR_HANDLING"
	LogLevel      = "RING_TOOLKIT_LOG_LEVEL"
	LogTimestamp  = "RING_TOOLKIT_LOG_TIMESTAMP"
	CI            = "CI"
)
