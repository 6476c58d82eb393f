package logging

// Config defines the structure for the logging section of grove-pick.yml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	// Can be overridden by the GROVE_PICK_LOG_LEVEL environment variable.
	Level string `yaml:"level" toml:"level"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	// Can be enabled with the GROVE_PICK_LOG_CALLER=true environment variable.
	ReportCaller bool `yaml:"report_caller" toml:"report_caller"`

	// File configures logging to a file.
	File FileSinkConfig `yaml:"file" toml:"file"`

	// Format configures the appearance of the log output.
	Format FormatConfig `yaml:"format" toml:"format"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	// Path is the full path to the log file.
	Path string `yaml:"path" toml:"path"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (text), or "json".
	Preset string `yaml:"preset" toml:"preset"`
	// DisableTimestamp removes the timestamp from text output.
	DisableTimestamp bool `yaml:"disable_timestamp" toml:"disable_timestamp"`
	// StructuredToStderr controls when logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	StructuredToStderr string `yaml:"structured_to_stderr" toml:"structured_to_stderr"`
}
