package driver

import (
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
)

// ProcessKiller stops every running process with the given name.
type ProcessKiller interface {
	KillAll(name string)
}

// processTableKiller walks the process table with gopsutil and
// falls back to `killall` when the table cannot be read.
type processTableKiller struct {
	runner dogewifi.Runner
	log    logrus.FieldLogger
}

func NewProcessKiller(runner dogewifi.Runner, log logrus.FieldLogger) ProcessKiller {
	return processTableKiller{runner: runner, log: log}
}

func (k processTableKiller) KillAll(name string) {
	procs, err := process.Processes()
	if err != nil {
		k.log.WithError(err).Debug("could not read process table, using killall")
		k.runner.Run("killall " + name)
		return
	}

	for _, p := range procs {
		n, err := p.Name()
		if err != nil || n != name {
			continue
		}
		if err := p.Kill(); err != nil {
			k.log.WithError(err).WithField("pid", p.Pid).Warn("failed to kill process")
			continue
		}
		k.log.WithField("pid", p.Pid).WithField("name", name).Debug("killed process")
	}
}
