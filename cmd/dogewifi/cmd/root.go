package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dogeorg/dogewifi/cmd/dogewifi/utils"
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/config"
	"github.com/dogeorg/dogewifi/pkg/wireless"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	iface       string
	driverKind  string
	settleDelay time.Duration
	verbose     bool

	// appended to every wireless.New call, tests swap the runner here
	wirelessOptions []wireless.Option
)

var rootCmd = &cobra.Command{
	Use:   "dogewifi",
	Short: "dogewifi connects this machine to a wireless network",
	Long: `dogewifi connects this machine to a wireless network using whichever
tool the host has: nmcli, wpa_supplicant or networksetup.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(utils.ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVarP(&iface, "interface", "i", "", "Wireless interface to use (default: first one detected)")
	rootCmd.PersistentFlags().StringVar(&driverKind, "driver", "", "Skip detection and use this driver (nmcli-legacy, nmcli-modern, wpa_supplicant, networksetup)")
	rootCmd.PersistentFlags().DurationVar(&settleDelay, "settle-delay", 0, "How long wpa_supplicant gets to associate before checking")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every command that is run")
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dogewifi", "config.toml")
}

// loadConfig merges file, environment and flags, flags winning.
func loadConfig(cmd *cobra.Command) (dogewifi.Config, *logrus.Logger, error) {
	cfg, err := config.Load(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, nil, err
	}

	if iface != "" {
		cfg.Interface = iface
	}
	if driverKind != "" {
		cfg.Kind = dogewifi.Kind(driverKind)
		if !cfg.Kind.Valid() {
			return cfg, nil, dogewifi.ErrUnknownKind
		}
	}
	if settleDelay > 0 {
		cfg.SettleDelay = settleDelay
	}
	if verbose {
		cfg.Verbose = true
	}

	return cfg, utils.NewLogger(cfg.LogLevel, cfg.Verbose), nil
}

func newWireless(cmd *cobra.Command) (*wireless.Wireless, error) {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	opts := append([]wireless.Option{wireless.WithLogger(log)}, wirelessOptions...)
	return wireless.New(cfg, opts...)
}
