package dogewifi

import "errors"

// see ./driver/ for implementations

// Kind names the tool dialect a Driver speaks. It is
// decided once when a Wireless is constructed.
type Kind string

const (
	KindNmcliLegacy   Kind = "nmcli-legacy"
	KindNmcliModern   Kind = "nmcli-modern"
	KindWPASupplicant Kind = "wpa_supplicant"
	KindNetworksetup  Kind = "networksetup"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) Valid() bool {
	switch k {
	case KindNmcliLegacy, KindNmcliModern, KindWPASupplicant, KindNetworksetup:
		return true
	}
	return false
}

// Kinds lists every dialect.
func Kinds() []Kind {
	return []Kind{KindNmcliLegacy, KindNmcliModern, KindWPASupplicant, KindNetworksetup}
}

// Runs a shell command and hands back whatever it printed
// on stdout and stderr. Exit status is not reported, callers
// have to read the text.
type Runner interface {
	Run(command string) string
}

// Driver is one dialect of the uniform wireless contract.
//
// Current and Power use a second boolean to report whether
// a value is known at all: ("", false) means no association,
// (false, false) means the dialect cannot tell.
type Driver interface {
	Kind() Kind

	Connect(ssid string, password string) bool
	Current() (string, bool)
	Interfaces() []string

	Interface() string
	SetInterface(name string)

	Power() (on bool, known bool)
	SetPower(on bool)
}

var (
	ErrNoDriver    = errors.New("cannot find a compatible wireless driver")
	ErrNoInterface = errors.New("unable to auto-detect the network interface")
	ErrUnknownKind = errors.New("unknown driver kind")
)
