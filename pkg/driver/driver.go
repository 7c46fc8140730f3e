package driver

import (
	"fmt"
	"os"
	"strings"
	"time"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/sirupsen/logrus"
)

// Options carries everything a driver may need besides the runner.
// Zero values are replaced with working defaults by New.
type Options struct {
	Log    logrus.FieldLogger
	Config dogewifi.Config

	// wpa_supplicant only
	Killer    ProcessKiller
	Sleep     func(time.Duration)
	WriteFile func(name string, data []byte, perm os.FileMode) error
}

func (o Options) withDefaults() Options {
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}
	o.Config = o.Config.WithDefaults()
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	if o.WriteFile == nil {
		o.WriteFile = os.WriteFile
	}
	return o
}

// New builds the driver for kind.
func New(kind dogewifi.Kind, runner dogewifi.Runner, opts Options) (dogewifi.Driver, error) {
	opts = opts.withDefaults()
	log := opts.Log.WithField("driver", kind.String())

	switch kind {
	case dogewifi.KindNmcliLegacy:
		return NewNmcliLegacy(runner, log), nil
	case dogewifi.KindNmcliModern:
		return NewNmcliModern(runner, log), nil
	case dogewifi.KindWPASupplicant:
		return NewWPASupplicant(runner, log, opts), nil
	case dogewifi.KindNetworksetup:
		return NewNetworksetup(runner, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", dogewifi.ErrUnknownKind, kind)
	}
}

// base holds the state every dialect shares: the runner it talks
// through and the interface it is bound to.
type base struct {
	runner dogewifi.Runner
	log    logrus.FieldLogger
	iface  string
}

func (b *base) Interface() string {
	return b.iface
}

// SetInterface ignores an empty name and keeps the current binding.
func (b *base) SetInterface(name string) {
	if strings.TrimSpace(name) == "" {
		b.log.WithField("interface", b.iface).Warn("ignoring empty interface name")
		return
	}
	b.log.WithField("interface", name).Debug("binding interface")
	b.iface = name
}

func (b *base) run(format string, args ...interface{}) string {
	command := fmt.Sprintf(format, args...)
	b.log.WithField("command", command).Debug("running command")
	return b.runner.Run(command)
}

// runSecret is run for commands carrying a passphrase. The
// passphrase is masked in the log line only.
func (b *base) runSecret(secret string, format string, args ...interface{}) string {
	command := fmt.Sprintf(format, args...)
	logged := command
	if secret != "" {
		logged = strings.ReplaceAll(command, shell.Quote(secret), "********")
		logged = strings.ReplaceAll(logged, secret, "********")
	}
	b.log.WithField("command", logged).Debug("running command")
	return b.runner.Run(command)
}
