package config

// StatusCode is the result code carried by configuration status messages.
// Several other families reuse it for range status messages.
type StatusCode uint8

const (
	StatusSuccess                        StatusCode = 0x00
	StatusInvalidAddress                 StatusCode = 0x01
	StatusInvalidModel                   StatusCode = 0x02
	StatusInvalidAppKeyIndex             StatusCode = 0x03
	StatusInvalidNetKeyIndex             StatusCode = 0x04
	StatusInsufficientResources          StatusCode = 0x05
	StatusKeyIndexAlreadyStored          StatusCode = 0x06
	StatusInvalidPublishParameters       StatusCode = 0x07
	StatusNotASubscribeModel             StatusCode = 0x08
	StatusStorageFailure                 StatusCode = 0x09
	StatusFeatureNotSupported            StatusCode = 0x0A
	StatusCannotUpdate                   StatusCode = 0x0B
	StatusCannotRemove                   StatusCode = 0x0C
	StatusCannotBind                     StatusCode = 0x0D
	StatusTemporarilyUnableToChangeState StatusCode = 0x0E
	StatusCannotSet                      StatusCode = 0x0F
	StatusUnspecifiedError               StatusCode = 0x10
	StatusInvalidBinding                 StatusCode = 0x11
)

var statusNames = [...]string{
	"SUCCESS",
	"INVALID_ADDRESS",
	"INVALID_MODEL",
	"INVALID_APPKEY_INDEX",
	"INVALID_NETKEY_INDEX",
	"INSUFFICIENT_RESOURCES",
	"KEY_INDEX_ALREADY_STORED",
	"INVALID_PUBLISH_PARAMETERS",
	"NOT_A_SUBSCRIBE_MODEL",
	"STORAGE_FAILURE",
	"FEATURE_NOT_SUPPORTED",
	"CANNOT_UPDATE",
	"CANNOT_REMOVE",
	"CANNOT_BIND",
	"TEMPORARILY_UNABLE_TO_CHANGE_STATE",
	"CANNOT_SET",
	"UNSPECIFIED_ERROR",
	"INVALID_BINDING",
}

func (s StatusCode) String() string {
	if s.IsValid() {
		return statusNames[s]
	}
	return "UNKNOWN"
}

// IsValid reports whether s is a defined status code.
func (s StatusCode) IsValid() bool {
	return int(s) < len(statusNames)
}

// StatusCodes returns every defined status code.
func StatusCodes() []StatusCode {
	out := make([]StatusCode, len(statusNames))
	for i := range out {
		out[i] = StatusCode(i)
	}
	return out
}

// SecureNetworkBeacon is the beacon state.
type SecureNetworkBeacon uint8

const (
	BeaconOff SecureNetworkBeacon = 0x00
	BeaconOn  SecureNetworkBeacon = 0x01
)

func (b SecureNetworkBeacon) String() string {
	switch b {
	case BeaconOff:
		return "OFF"
	case BeaconOn:
		return "ON"
	default:
		return "UNKNOWN"
	}
}

// FeatureState is the shared state of the GATT proxy, relay and friend
// features.
type FeatureState uint8

const (
	FeatureDisabled     FeatureState = 0x00
	FeatureEnabled      FeatureState = 0x01
	FeatureNotSupported FeatureState = 0x02
)

func (f FeatureState) String() string {
	switch f {
	case FeatureDisabled:
		return "DISABLED"
	case FeatureEnabled:
		return "ENABLED"
	case FeatureNotSupported:
		return "NOT_SUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// NodeIdentity is the node identity advertising state.
type NodeIdentity uint8

const (
	NodeIdentityStopped      NodeIdentity = 0x00
	NodeIdentityRunning      NodeIdentity = 0x01
	NodeIdentityNotSupported NodeIdentity = 0x02
)

func (n NodeIdentity) String() string {
	switch n {
	case NodeIdentityStopped:
		return "STOPPED"
	case NodeIdentityRunning:
		return "RUNNING"
	case NodeIdentityNotSupported:
		return "NOT_SUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// KeyRefreshPhase is the key refresh procedure phase.
type KeyRefreshPhase uint8

const (
	KeyRefreshNormal KeyRefreshPhase = 0x00
	KeyRefreshFirst  KeyRefreshPhase = 0x01
	KeyRefreshSecond KeyRefreshPhase = 0x02
	KeyRefreshThird  KeyRefreshPhase = 0x03
)

func (p KeyRefreshPhase) String() string {
	switch p {
	case KeyRefreshNormal:
		return "NORMAL"
	case KeyRefreshFirst:
		return "FIRST"
	case KeyRefreshSecond:
		return "SECOND"
	case KeyRefreshThird:
		return "THIRD"
	default:
		return "UNKNOWN"
	}
}

// CredentialFlag selects the credentials used for publishing.
type CredentialFlag uint8

const (
	MasterSecurity     CredentialFlag = 0x00
	FriendshipSecurity CredentialFlag = 0x01
)

func (c CredentialFlag) String() string {
	switch c {
	case MasterSecurity:
		return "MASTER_SECURITY"
	case FriendshipSecurity:
		return "FRIENDSHIP_SECURITY"
	default:
		return "UNKNOWN"
	}
}

// StepResolution is the publish period step resolution.
type StepResolution uint8

const (
	Resolution100ms StepResolution = 0x0
	Resolution1s    StepResolution = 0x1
	Resolution10s   StepResolution = 0x2
	Resolution10min StepResolution = 0x3
)

func (r StepResolution) String() string {
	switch r {
	case Resolution100ms:
		return "RESOLUTION_100_MS"
	case Resolution1s:
		return "RESOLUTION_1_S"
	case Resolution10s:
		return "RESOLUTION_10_S"
	case Resolution10min:
		return "RESOLUTION_10_MIN"
	default:
		return "UNKNOWN"
	}
}

// Milliseconds returns the length of one step.
func (r StepResolution) Milliseconds() int {
	switch r {
	case Resolution1s:
		return 1000
	case Resolution10s:
		return 10_000
	case Resolution10min:
		return 600_000
	default:
		return 100
	}
}
