package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pion/logging"
)

// Options holds the global CLI flags.
type Options struct {
	// ConfigPath is an optional TOML file loaded before the flags.
	ConfigPath string

	// LogLevel is one of disabled, error, warn, info, debug, trace.
	LogLevel logging.LogLevel

	// CamelCase renders decoded parameters with camelCase keys.
	CamelCase bool

	// CapturePath is a SQLite file recording received frames.
	// If empty, frames are not recorded.
	CapturePath string

	// UDPAddr is the listen address of the listen command.
	UDPAddr string

	// HTTPAddr is the listen address of the serve command.
	HTTPAddr string

	// MQTT bridge settings.
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte

	// Serial sniffer settings.
	SerialPort string
	BaudRate   int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		LogLevel:    logging.LogLevelWarn,
		UDPAddr:     ":5541",
		HTTPAddr:    ":8080",
		Broker:      "tcp://localhost:1883",
		TopicPrefix: "btmesh",
		SerialPort:  "/dev/ttyACM0",
		BaudRate:    115200,
	}
}

// parseOptions parses the global flags in args and returns the options and
// the remaining arguments. Values from -config are applied first so that
// explicit flags override them.
func parseOptions(args []string, stderr io.Writer) (Options, []string, error) {
	o := DefaultOptions()
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		return Options{}, nil, err
	}
	if o.ConfigPath == "" {
		return o, fs.Args(), nil
	}

	base, err := loadConfig(o.ConfigPath, DefaultOptions())
	if err != nil {
		return Options{}, nil, err
	}
	base.ConfigPath = o.ConfigPath

	fs = newFlagSet(&base, stderr)
	if err := fs.Parse(args); err != nil {
		return Options{}, nil, err
	}
	return base, fs.Args(), nil
}

func newFlagSet(o *Options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("meshcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs) }

	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "TOML configuration file")
	fs.Func("log-level", fmt.Sprintf("Log level (default: %s)", levelName(o.LogLevel)), func(s string) error {
		level, err := parseLogLevel(s)
		if err != nil {
			return err
		}
		o.LogLevel = level
		return nil
	})
	fs.BoolVar(&o.CamelCase, "camel", o.CamelCase, "Render parameter names in camelCase")
	fs.StringVar(&o.CapturePath, "capture", o.CapturePath, "SQLite file to record received frames (empty = off)")
	fs.StringVar(&o.UDPAddr, "udp", o.UDPAddr, "UDP listen address for listen")
	fs.StringVar(&o.HTTPAddr, "http", o.HTTPAddr, "HTTP listen address for serve")
	fs.StringVar(&o.Broker, "broker", o.Broker, "MQTT broker URL for bridge")
	fs.StringVar(&o.ClientID, "client-id", o.ClientID, "MQTT client ID (empty = generated)")
	fs.StringVar(&o.Username, "username", o.Username, "MQTT username")
	fs.StringVar(&o.Password, "password", o.Password, "MQTT password")
	fs.StringVar(&o.TopicPrefix, "topic-prefix", o.TopicPrefix, "MQTT topic prefix")
	fs.Func("qos", fmt.Sprintf("MQTT QoS 0-2 (default: %d)", o.QoS), func(s string) error {
		var v byte
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return err
		}
		if v > 2 {
			return fmt.Errorf("qos must be 0-2, got %d", v)
		}
		o.QoS = v
		return nil
	})
	fs.StringVar(&o.SerialPort, "port", o.SerialPort, "Serial port for sniff")
	fs.Func("baud", fmt.Sprintf("Serial baud rate (default: %d)", o.BaudRate), func(s string) error {
		var v int
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return err
		}
		if v <= 0 {
			return fmt.Errorf("baud rate must be positive, got %d", v)
		}
		o.BaudRate = v
		return nil
	})
	return fs
}

var logLevels = []struct {
	name  string
	level logging.LogLevel
}{
	{"disabled", logging.LogLevelDisabled},
	{"error", logging.LogLevelError},
	{"warn", logging.LogLevelWarn},
	{"info", logging.LogLevelInfo},
	{"debug", logging.LogLevelDebug},
	{"trace", logging.LogLevelTrace},
}

func parseLogLevel(s string) (logging.LogLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range logLevels {
		if l.name == s {
			return l.level, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func levelName(level logging.LogLevel) string {
	for _, l := range logLevels {
		if l.level == level {
			return l.name
		}
	}
	return "unknown"
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: meshcodec [options] <command> [args]\n")
	fmt.Fprintf(w, "\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(w, "\nOptions:\n")
	fs.PrintDefaults()
}
