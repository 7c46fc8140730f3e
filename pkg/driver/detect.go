package driver

import (
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/hashicorp/go-version"
	"github.com/sirupsen/logrus"
)

// nmcli releases after this one renamed most subcommands.
var nmcliModernThreshold = version.Must(version.NewVersion("0.9.9.0"))

// Detect probes the host and picks one dialect. The order is fixed
// and the first tool found wins: nmcli, wpa_supplicant, networksetup.
func Detect(runner dogewifi.Runner, log logrus.FieldLogger) (dogewifi.Kind, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	if present(runner, "nmcli") {
		kind := nmcliKind(runner.Run("nmcli --version"))
		log.WithField("driver", kind).Info("detected nmcli")
		return kind, nil
	}

	if present(runner, "wpa_supplicant") {
		log.WithField("driver", dogewifi.KindWPASupplicant).Info("detected wpa_supplicant")
		return dogewifi.KindWPASupplicant, nil
	}

	if present(runner, "networksetup") {
		log.WithField("driver", dogewifi.KindNetworksetup).Info("detected networksetup")
		return dogewifi.KindNetworksetup, nil
	}

	return "", dogewifi.ErrNoDriver
}

// `which` on some systems prints "not found" on stdout instead
// of failing quietly, so both cases count as absent.
func present(runner dogewifi.Runner, tool string) bool {
	response := strings.TrimSpace(runner.Run("which " + tool))
	if response == "" {
		return false
	}
	lower := strings.ToLower(response)
	return !strings.Contains(lower, "not found") && !strings.Contains(lower, "no "+tool+" in")
}

// nmcliKind reads the last token of `nmcli --version`, eg.
// "nmcli tool, version 0.9.8.10", and compares it to the threshold.
// Output we cannot read is treated as the legacy dialect.
func nmcliKind(response string) dogewifi.Kind {
	fields := strings.Fields(response)
	if len(fields) == 0 {
		return dogewifi.KindNmcliLegacy
	}

	v, err := version.NewVersion(fields[len(fields)-1])
	if err != nil {
		return dogewifi.KindNmcliLegacy
	}
	if v.GreaterThan(nmcliModernThreshold) {
		return dogewifi.KindNmcliModern
	}
	return dogewifi.KindNmcliLegacy
}
