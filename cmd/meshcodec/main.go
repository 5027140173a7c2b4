// meshcodec decodes and encodes Bluetooth Mesh Access-layer messages.
//
// Usage:
//
//	meshcodec [options] <command> [args]
//
// Commands:
//
//	decode   <hex>...                 Decode PDUs (stdin lines when no args)
//	encode   <opcode|name> [json]     Encode a message from JSON parameters
//	opcodes  [family]                 List registered messages
//	schema   <opcode|name>            Print a message parameter layout
//	serve                             Run the HTTP API
//	listen                            Decode PDUs received over UDP
//	bridge                            Decode PDUs from MQTT and publish them
//	sniff                             Decode PDUs from a serial sniffer
//
// Example:
//
//	meshcodec decode 8206ff7f22
//	meshcodec -capture frames.db -broker tcp://localhost:1883 bridge
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "meshcodec: %v\n", err)
		}
		os.Exit(1)
	}
}

// env is what a command runs with.
type env struct {
	opts   Options
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, e *env) error
}

var commands []command

func init() {
	commands = []command{
		{"decode", "Decode PDUs given as hex (stdin lines when no args)", runDecode},
		{"encode", "Encode <opcode|name> [json params]", runEncode},
		{"opcodes", "List registered messages [family]", runOpcodes},
		{"schema", "Print the parameter layout of <opcode|name>", runSchema},
		{"serve", "Run the HTTP API", runServe},
		{"listen", "Decode PDUs received over UDP", runListen},
		{"bridge", "Decode PDUs from MQTT and publish them", runBridge},
		{"sniff", "Decode PDUs from a serial sniffer", runSniff},
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, rest, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		printUsage(newFlagSet(&opts, stderr))
		return errors.New("missing command")
	}

	for _, c := range commands {
		if c.name == rest[0] {
			return c.run(ctx, &env{
				opts:   opts,
				args:   rest[1:],
				stdin:  stdin,
				stdout: stdout,
				stderr: stderr,
			})
		}
	}
	return fmt.Errorf("unknown command %q", rest[0])
}
