package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "decode", "8206ff7f22", "c0112233")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected output: %q", out)
	}
	if lines[0] != `{"opcode":"GENERIC_LEVEL_SET","params":{"level":32767,"tid":34}}` {
		t.Errorf("unexpected level set: %s", lines[0])
	}
	if lines[1] != `{"opcode":"0xC01122","params":"33"}` {
		t.Errorf("unexpected vendor message: %s", lines[1])
	}
}

func TestDecodeCommandStdin(t *testing.T) {
	out, stderr, err := runCLI(t, "# capture\n04 00 3601 03\n\n8206ff\n", "-camel", "decode")
	if err == nil {
		t.Fatalf("expected error for truncated PDU")
	}
	if !strings.Contains(out, `"companyId":310`) {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(stderr, "8206ff") {
		t.Errorf("expected failure on stderr, got %q", stderr)
	}
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"encode", "GENERIC_LEVEL_SET", `{"level": 32767, "tid": 34}`}, "8206ff7f22"},
		{[]string{"encode", "generic_level_get"}, "8205"},
		{[]string{"encode", "0x8206", `{"level": 0, "tid": 49, "transition_time": 5.0, "delay": 0.3}`}, "8206000031323c"},
	}
	for _, tt := range tests {
		out, _, err := runCLI(t, "", tt.args...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("%v = %s, want %s", tt.args, got, tt.want)
		}
	}

	for _, args := range [][]string{
		{"encode"},
		{"encode", "NOT_A_MESSAGE"},
		{"encode", "GENERIC_LEVEL_SET", "{"},
		{"encode", "GENERIC_LEVEL_SET", `{"level": 1}`},
	} {
		if _, _, err := runCLI(t, "", args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestOpcodesCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "opcodes", "health")
	if err != nil {
		t.Fatalf("opcodes: %v", err)
	}
	if !strings.Contains(out, "HEALTH_CURRENT_STATUS") {
		t.Errorf("missing health message: %q", out)
	}
	if strings.Contains(out, "GENERIC") {
		t.Errorf("family filter ignored: %q", out)
	}
}

func TestSchemaCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "schema", "GENERIC_LEVEL_SET")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	var desc map[string]any
	if err := json.Unmarshal([]byte(out), &desc); err != nil {
		t.Fatalf("schema output is not JSON: %v", err)
	}
	if desc["opcode"] != "0x8206" {
		t.Errorf("unexpected opcode: %v", desc["opcode"])
	}

	if _, _, err := runCLI(t, "", "schema", "0xC01122"); err == nil {
		t.Errorf("expected error for unregistered opcode")
	}
}

func TestRunErrors(t *testing.T) {
	if _, _, err := runCLI(t, ""); err == nil {
		t.Errorf("expected error without command")
	}
	if _, _, err := runCLI(t, "", "frobnicate"); err == nil {
		t.Errorf("expected error for unknown command")
	}
}
