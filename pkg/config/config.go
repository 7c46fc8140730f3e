// Package config loads dogewifi.Config from an optional TOML file
// and DOGEWIFI_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	dogewifi "github.com/dogeorg/dogewifi/pkg"
)

const EnvPrefix = "DOGEWIFI_"

// Load reads path when it is non-empty. A missing file is only an
// error when the caller asked for it explicitly.
func Load(path string, explicit bool) (dogewifi.Config, error) {
	cfg := dogewifi.DefaultConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && !explicit {
				return applyEnv(cfg, os.LookupEnv)
			}
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
		}
	}

	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg dogewifi.Config, lookup func(string) (string, bool)) (dogewifi.Config, error) {
	if v, ok := lookup(EnvPrefix + "INTERFACE"); ok {
		cfg.Interface = v
	}
	if v, ok := lookup(EnvPrefix + "DRIVER"); ok {
		cfg.Kind = dogewifi.Kind(v)
	}
	if v, ok := lookup(EnvPrefix + "SCRATCH_FILE"); ok {
		cfg.ScratchFile = v
	}
	if v, ok := lookup(EnvPrefix + "STATIC_ADDRESS"); ok {
		cfg.StaticAddress = v
	}
	if v, ok := lookup(EnvPrefix + "SETTLE_DELAY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %sSETTLE_DELAY %q: %w", EnvPrefix, v, err)
		}
		cfg.SettleDelay = d
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %sVERBOSE %q: %w", EnvPrefix, v, err)
		}
		cfg.Verbose = b
	}

	if cfg.Kind != "" && !cfg.Kind.Valid() {
		return cfg, fmt.Errorf("%w: %q", dogewifi.ErrUnknownKind, cfg.Kind)
	}

	return cfg.WithDefaults(), nil
}
