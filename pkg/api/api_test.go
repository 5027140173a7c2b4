package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backkem/btmesh/pkg/capture"
	"github.com/backkem/btmesh/pkg/mesh"
)

func newTestServer(t *testing.T, store *capture.Store) *Server {
	t.Helper()
	config := DefaultConfig()
	config.Codec = mesh.DefaultCodec()
	config.Store = store
	s, err := NewServer(config)
	require.NoError(t, err)
	return s
}

func do(t *testing.T, s *Server, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNewServer(t *testing.T) {
	_, err := NewServer(nil)
	assert.ErrorIs(t, err, ErrNoCodec)

	s := newTestServer(t, nil)
	assert.Equal(t, ":8080", s.config.Addr)
}

func TestDecode(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("health status", func(t *testing.T) {
		w := do(t, s, http.MethodPost, "/api/v1/decode", DecodeRequest{Hex: "04 00 3601 030405"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp DecodeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "0x04", resp.Opcode)
		assert.Equal(t, "HEALTH_CURRENT_STATUS", resp.Name)
		assert.Equal(t, "health", resp.Family)
		assert.Equal(t, map[string]any{
			"test_id":     float64(0),
			"company_id":  float64(310),
			"fault_array": []any{float64(3), float64(4), float64(5)},
		}, resp.Params)
	})

	t.Run("camel case", func(t *testing.T) {
		w := do(t, s, http.MethodPost, "/api/v1/decode", DecodeRequest{Hex: "0400360103", CamelCase: true})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"companyId":310`)
	})

	t.Run("unknown opcode", func(t *testing.T) {
		w := do(t, s, http.MethodPost, "/api/v1/decode", DecodeRequest{Hex: "c0112233"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"opcode":"0xC01122","params":"33"}`, w.Body.String())
	})

	tests := []struct {
		name string
		hex  string
		code string
	}{
		{"truncated opcode", "82", "truncated_input"},
		{"truncated body", "803101", "truncated_input"},
		{"short for every variant", "8206ff", "no_matching_variant"},
		{"reserved", "7f00", "reserved_opcode"},
		{"no variant", "8206ff7f2231", "no_matching_variant"},
		{"bad hex", "zz", "invalid_hex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/v1/decode", DecodeRequest{Hex: tt.hex})
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}

	w := do(t, s, http.MethodPost, "/api/v1/decode", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEncode(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		req  EncodeRequest
		want string
	}{
		{
			name: "by name",
			req:  EncodeRequest{Opcode: "GENERIC_LEVEL_SET", Params: map[string]any{"level": 32767, "tid": 34}},
			want: "8206ff7f22",
		},
		{
			name: "by opcode",
			req:  EncodeRequest{Opcode: "0x8206", Params: map[string]any{"level": 32767, "tid": 34}},
			want: "8206ff7f22",
		},
		{
			name: "empty params",
			req:  EncodeRequest{Opcode: "GENERIC_LEVEL_GET"},
			want: "8205",
		},
		{
			name: "unregistered opcode",
			req:  EncodeRequest{Opcode: "c01122", Raw: "33"},
			want: "c0112233",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/v1/encode", tt.req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp EncodeResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Hex)
		})
	}

	failures := []struct {
		name string
		req  EncodeRequest
		code string
	}{
		{"unknown name", EncodeRequest{Opcode: "NOT_A_MESSAGE"}, "unknown_message"},
		{"missing field", EncodeRequest{Opcode: "HEALTH_FAULT_GET"}, "missing_field"},
		{"fractional integer", EncodeRequest{Opcode: "HEALTH_FAULT_GET", Params: map[string]any{"company_id": 1.5}}, "invalid_value"},
		{"no layout fits", EncodeRequest{Opcode: "GENERIC_LEVEL_SET", Params: map[string]any{"level": 1}}, "no_matching_variant"},
	}
	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/v1/encode", tt.req)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error)
		})
	}
}

func TestOpcodes(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/api/v1/opcodes?family=health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var infos []OpcodeInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	require.NotEmpty(t, infos)
	assert.Equal(t, OpcodeInfo{Opcode: "0x04", Name: "HEALTH_CURRENT_STATUS", Family: "health"}, infos[0])
	for _, info := range infos {
		assert.Equal(t, "health", info.Family)
	}

	w = do(t, s, http.MethodGet, "/api/v1/opcodes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []OpcodeInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, len(mesh.DefaultCodec().Messages()))
}

func TestSchema(t *testing.T) {
	s := newTestServer(t, nil)

	for _, key := range []string{"0x8206", "generic_level_set"} {
		w := do(t, s, http.MethodGet, "/api/v1/opcodes/"+key+"/schema", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "GENERIC_LEVEL_SET", resp["name"])
		assert.NotNil(t, resp["params"])
	}

	w := do(t, s, http.MethodGet, "/api/v1/opcodes/0xC01122/schema", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFrames(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodGet, "/api/v1/frames", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	store, err := capture.Open(capture.Config{Path: filepath.Join(t.TempDir(), "frames.db")})
	require.NoError(t, err)
	defer store.Close()

	s := newTestServer(t, store)
	do(t, s, http.MethodPost, "/api/v1/decode", DecodeRequest{Hex: "8205"})
	do(t, s, http.MethodPost, "/api/v1/decode", DecodeRequest{Hex: "8206ff"})

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	w = do(t, s, http.MethodGet, "/api/v1/frames?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp FramesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "8206ff", resp.Frames[0].PDU)
	assert.NotEmpty(t, resp.Frames[0].Error)

	w = do(t, s, http.MethodGet, "/api/v1/frames?opcode=GENERIC_LEVEL_GET", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "GENERIC_LEVEL_GET", resp.Frames[0].Name)

	w = do(t, s, http.MethodGet, "/api/v1/frames?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(t, nil), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
