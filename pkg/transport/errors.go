package transport

import "errors"

// Transport errors.
var (
	// ErrClosed is returned when an operation is attempted on a closed transport.
	ErrClosed = errors.New("transport: closed")

	// ErrInvalidAddress is returned when an invalid peer address is provided.
	ErrInvalidAddress = errors.New("transport: invalid address")

	// ErrNoHandler is returned when no frame handler is configured.
	ErrNoHandler = errors.New("transport: no frame handler configured")

	// ErrNoCodec is returned when no access codec is configured.
	ErrNoCodec = errors.New("transport: no codec configured")

	// ErrNotStarted is returned when an operation requires a started transport.
	ErrNotStarted = errors.New("transport: not started")

	// ErrAlreadyStarted is returned when Start is called on an already running transport.
	ErrAlreadyStarted = errors.New("transport: already started")

	// ErrNotConnected is returned when publishing without a broker connection.
	ErrNotConnected = errors.New("transport: not connected")

	// ErrTimeout is returned when a broker operation does not complete in time.
	ErrTimeout = errors.New("transport: timeout")

	// ErrMessageTooLarge is returned when a PDU exceeds the maximum size.
	ErrMessageTooLarge = errors.New("transport: message too large")

	// ErrMissingConfig is returned when a required configuration field is empty.
	ErrMissingConfig = errors.New("transport: missing configuration")
)
