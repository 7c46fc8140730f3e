// Package wireless is the entry point: it picks a driver for the
// host once, binds an interface and forwards every call to it.
package wireless

import (
	"fmt"
	"time"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/driver"
	"github.com/dogeorg/dogewifi/pkg/system/shell"
	"github.com/sirupsen/logrus"
)

type Option func(*options)

type options struct {
	runner dogewifi.Runner
	log    logrus.FieldLogger
	kind   dogewifi.Kind
	killer driver.ProcessKiller
	sleep  func(time.Duration)
}

// WithRunner replaces the shell used to reach the host tools.
func WithRunner(r dogewifi.Runner) Option {
	return func(o *options) { o.runner = r }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// WithKind skips host probing and uses the given dialect.
func WithKind(k dogewifi.Kind) Option {
	return func(o *options) { o.kind = k }
}

func WithKiller(k driver.ProcessKiller) Option {
	return func(o *options) { o.killer = k }
}

func WithSleep(f func(time.Duration)) Option {
	return func(o *options) { o.sleep = f }
}

// Wireless owns exactly one driver for its whole life.
type Wireless struct {
	driver dogewifi.Driver
	log    logrus.FieldLogger
}

// New probes the host, builds the matching driver and binds an
// interface: cfg.Interface when given, otherwise the first one the
// driver lists. It fails when no driver or no interface is found.
func New(cfg dogewifi.Config, opts ...Option) (*Wireless, error) {
	o := options{kind: cfg.Kind}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}
	if o.runner == nil {
		o.runner = shell.NewShellRunner(o.log)
	}

	kind := o.kind
	if kind == "" {
		detected, err := driver.Detect(o.runner, o.log)
		if err != nil {
			return nil, err
		}
		kind = detected
	}

	d, err := driver.New(kind, o.runner, driver.Options{
		Log:    o.log,
		Config: cfg,
		Killer: o.killer,
		Sleep:  o.sleep,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", kind, err)
	}

	w := &Wireless{driver: d, log: o.log.WithField("driver", kind.String())}

	if cfg.Interface != "" {
		w.SetInterface(cfg.Interface)
	} else if interfaces := d.Interfaces(); len(interfaces) > 0 {
		w.SetInterface(interfaces[0])
	}

	if w.Interface() == "" {
		return nil, dogewifi.ErrNoInterface
	}

	w.log.WithField("interface", w.Interface()).Info("wireless ready")
	return w, nil
}

// Connect reports whether the driver believes the association
// succeeded. Detection is heuristic for every dialect.
func (w *Wireless) Connect(ssid string, password string) bool {
	return w.driver.Connect(ssid, password)
}

// Current returns the ssid the interface is associated with, or
// false when there is none.
func (w *Wireless) Current() (string, bool) {
	return w.driver.Current()
}

func (w *Wireless) Interfaces() []string {
	return w.driver.Interfaces()
}

func (w *Wireless) Interface() string {
	return w.driver.Interface()
}

// SetInterface binds name. An empty name is ignored so a ready
// Wireless never loses its interface.
func (w *Wireless) SetInterface(name string) {
	w.driver.SetInterface(name)
}

// Power returns the radio state. known is false for dialects
// that cannot report it.
func (w *Wireless) Power() (on bool, known bool) {
	return w.driver.Power()
}

func (w *Wireless) SetPower(on bool) {
	w.driver.SetPower(on)
}

func (w *Wireless) Kind() dogewifi.Kind {
	return w.driver.Kind()
}
