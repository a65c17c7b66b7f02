package main

// CLI is the root Kong command tree for ds34ctl.
type CLI struct {
	ConfigFile string    `name:"config" help:"Configuration file to load first (json, yaml or toml, chosen by extension)" env:"DS34CTL_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Simulate Simulate      `cmd:"" help:"Run a DS3/DS4 pad through the core against an in-memory fake USB controller"`
	Config   ConfigCommand `cmd:"" help:"Configuration file management"`
}

// LogConfig configures the structured logger and the raw-transfer
// hex dump logger.
type LogConfig struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"DS34CTL_LOG_LEVEL"`
	File    string `help:"Write logs to this file in addition to stderr" env:"DS34CTL_LOG_FILE"`
	RawFile string `help:"Create this file as the raw USB transfer hex-dump log (the simulate command writes no transfers to it)" env:"DS34CTL_RAW_LOG_FILE"`
}
