package dogewifi

import "time"

const (
	DefaultScratchFile   = "/tmp/wpa_supplicant.conf"
	DefaultStaticAddress = "10.5.5.10/24"
	DefaultSettleDelay   = 5 * time.Second
	DefaultLogLevel      = "info"
)

type Config struct {
	// Interface is bound instead of the first auto-detected one when set.
	Interface string `toml:"interface"`

	// Kind skips host probing when set.
	Kind Kind `toml:"driver"`

	// wpa_supplicant dialect only
	ScratchFile   string        `toml:"scratch_file"`
	StaticAddress string        `toml:"static_address"`
	SettleDelay   time.Duration `toml:"settle_delay"`

	LogLevel string `toml:"log_level"`
	Verbose  bool   `toml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		ScratchFile:   DefaultScratchFile,
		StaticAddress: DefaultStaticAddress,
		SettleDelay:   DefaultSettleDelay,
		LogLevel:      DefaultLogLevel,
	}
}

// WithDefaults fills any zero field from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.ScratchFile == "" {
		c.ScratchFile = d.ScratchFile
	}
	if c.StaticAddress == "" {
		c.StaticAddress = d.StaticAddress
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = d.SettleDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	return c
}
