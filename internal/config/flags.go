package config

import "github.com/spf13/pflag"

// Flag names shared by RegisterFlags and ApplyFlags.
const (
	FlagBackend  = "backend"
	FlagScale    = "scale"
	FlagFPS      = "fps"
	FlagSeed     = "seed"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
)

// RegisterFlags adds one flag per setting, with the defaults as help values.
func RegisterFlags(flags *pflag.FlagSet) {
	def := Default()
	flags.String(FlagBackend, def.Backend, "Drawing surface (window, terminal)")
	flags.Int(FlagScale, def.Scale, "Initial window scale factor")
	flags.Int(FlagFPS, def.TargetFPS, "Frames drawn per second")
	flags.Uint64(FlagSeed, def.Seed, "Food placement seed (0 picks one from the clock)")
	flags.String(FlagLogLevel, def.LogLevel, "Log level (debug, info, warn, error)")
	flags.String(FlagLogFile, def.LogFile, "Write logs to this file")
}

// ApplyFlags copies the flags the user actually set over cfg. Flags left at
// their defaults do not mask values from the file or environment.
func ApplyFlags(cfg *Config, flags *pflag.FlagSet) error {
	var err error
	if flags.Changed(FlagBackend) {
		if cfg.Backend, err = flags.GetString(FlagBackend); err != nil {
			return err
		}
	}
	if flags.Changed(FlagScale) {
		if cfg.Scale, err = flags.GetInt(FlagScale); err != nil {
			return err
		}
	}
	if flags.Changed(FlagFPS) {
		if cfg.TargetFPS, err = flags.GetInt(FlagFPS); err != nil {
			return err
		}
	}
	if flags.Changed(FlagSeed) {
		if cfg.Seed, err = flags.GetUint64(FlagSeed); err != nil {
			return err
		}
	}
	if flags.Changed(FlagLogLevel) {
		if cfg.LogLevel, err = flags.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if flags.Changed(FlagLogFile) {
		if cfg.LogFile, err = flags.GetString(FlagLogFile); err != nil {
			return err
		}
	}
	return nil
}
