package shell

import (
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Runner = &ShellRunner{}

// ShellRunner hands each command to `sh -c` and returns the
// combined output. A failed exit is only logged: the tools we
// wrap print their errors and the text is what callers inspect.
type ShellRunner struct {
	Shell string
	log   logrus.FieldLogger
}

func NewShellRunner(log logrus.FieldLogger) *ShellRunner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ShellRunner{Shell: "sh", log: log}
}

func (r *ShellRunner) Run(command string) string {
	cmd := exec.Command(r.Shell, "-c", command)
	output := &strings.Builder{}
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Run(); err != nil {
		// the command line may carry a passphrase, keep it out of the log
		r.log.WithError(err).WithField("shell", r.Shell).Debug("command exited with error")
	}

	return output.String()
}

// Quote makes caller supplied values (ssids, passwords,
// interface names) safe to splice into a command string.
func Quote(s string) string {
	return shellescape.Quote(s)
}
