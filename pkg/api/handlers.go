package api

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/capture"
	"github.com/backkem/btmesh/pkg/opcode"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/transport"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// DecodeRequest is the body of POST /api/v1/decode.
type DecodeRequest struct {
	Hex       string `json:"hex" binding:"required"`
	CamelCase bool   `json:"camel_case"`
}

// DecodeResponse is the loggable form of a decoded PDU.
type DecodeResponse struct {
	Opcode string `json:"opcode"`
	Name   string `json:"name,omitempty"`
	Family string `json:"family,omitempty"`
	Params any    `json:"params"`
}

// EncodeRequest is the body of POST /api/v1/encode. Opcode is a message
// name or a hex opcode. Raw is the hex parameter block of an unregistered
// opcode.
type EncodeRequest struct {
	Opcode string         `json:"opcode" binding:"required"`
	Params map[string]any `json:"params"`
	Raw    string         `json:"raw"`
}

// EncodeResponse carries an encoded PDU.
type EncodeResponse struct {
	Hex string `json:"hex"`
}

// OpcodeInfo describes one registered message.
type OpcodeInfo struct {
	Opcode string `json:"opcode"`
	Name   string `json:"name"`
	Family string `json:"family"`
}

// FramesResponse lists recorded frames.
type FramesResponse struct {
	Count  int             `json:"count"`
	Frames []capture.Entry `json:"frames"`
}

func (s *Server) handleDecode(c *gin.Context) {
	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	pdu, err := schema.ToBytes(req.Hex)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_hex", Message: err.Error()})
		return
	}

	msg, err := s.codec.Decode(pdu)
	s.record(c, pdu, msg, err)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errorCode(err), Message: err.Error()})
		return
	}

	loggable := access.Loggable(msg, access.ProjectionOptions{CamelCase: req.CamelCase})
	resp := DecodeResponse{
		Opcode: msg.Opcode.String(),
		Name:   msg.Name,
		Params: loggable["params"],
	}
	if def, ok := s.codec.Definition(msg.Opcode); ok {
		resp.Family = def.Family
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleEncode(c *gin.Context) {
	var req EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return
	}

	msg := &access.Message{Params: schema.Container(req.Params)}
	if _, ok := s.codec.Lookup(req.Opcode); ok {
		msg.Name = req.Opcode
	} else {
		op, err := opcode.Parse(req.Opcode)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown_message", Message: err.Error()})
			return
		}
		msg.Opcode = op
	}
	if req.Raw != "" {
		raw, err := schema.ToBytes(req.Raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_hex", Message: err.Error()})
			return
		}
		msg.Raw = raw
	}

	pdu, err := s.codec.Encode(msg)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errorCode(err), Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, EncodeResponse{Hex: hex.EncodeToString(pdu)})
}

func (s *Server) handleOpcodes(c *gin.Context) {
	family := c.Query("family")

	defs := s.codec.Messages()
	out := make([]OpcodeInfo, 0, len(defs))
	for _, def := range defs {
		if family != "" && def.Family != family {
			continue
		}
		out = append(out, OpcodeInfo{Opcode: def.Opcode.String(), Name: def.Name, Family: def.Family})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleSchema(c *gin.Context) {
	def, ok := s.definition(c.Param("opcode"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "unknown_message",
			Message: "no message registered as " + c.Param("opcode"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"opcode": def.Opcode.String(),
		"name":   def.Name,
		"family": def.Family,
		"params": schema.Describe(def.Params),
	})
}

func (s *Server) handleFrames(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "capture_disabled",
			Message: "frame capture is not configured",
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(capture.DefaultLimit)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: "limit must be a positive integer"})
		return
	}

	var entries []capture.Entry
	if q := c.Query("opcode"); q != "" {
		def, ok := s.definition(q)
		if !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown_message", Message: "no message registered as " + q})
			return
		}
		entries, err = s.store.ByOpcode(c.Request.Context(), def.Opcode, limit)
	} else {
		entries, err = s.store.Recent(c.Request.Context(), limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "capture_failed", Message: err.Error()})
		return
	}
	if entries == nil {
		entries = []capture.Entry{}
	}
	c.JSON(http.StatusOK, FramesResponse{Count: len(entries), Frames: entries})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"messages": len(s.codec.Messages()),
		"capture":  s.store != nil,
	})
}

// definition resolves a message name or hex opcode.
func (s *Server) definition(key string) (access.Definition, bool) {
	if def, ok := s.codec.Lookup(strings.ToUpper(key)); ok {
		return def, true
	}
	op, err := opcode.Parse(key)
	if err != nil {
		return access.Definition{}, false
	}
	return s.codec.Definition(op)
}

// record stores a decoded PDU when capture is configured.
func (s *Server) record(c *gin.Context, pdu []byte, msg *access.Message, decodeErr error) {
	if s.store == nil {
		return
	}
	f := &transport.Frame{
		Data:       pdu,
		PeerAddr:   transport.PeerAddress{Name: c.ClientIP()},
		Message:    msg,
		Err:        decodeErr,
		ReceivedAt: time.Now(),
	}
	if _, err := s.store.Insert(c.Request.Context(), f); err != nil && s.log != nil {
		s.log.Warnf("recording decoded PDU: %v", err)
	}
}

// errorCodes maps sentinel errors to response codes. Order matters: a
// failed variant match also wraps the error of its first candidate.
var errorCodes = []struct {
	err  error
	code string
}{
	{opcode.ErrReservedOpcode, "reserved_opcode"},
	{opcode.ErrInvalidOpcode, "invalid_opcode"},
	{access.ErrUnknownName, "unknown_message"},
	{access.ErrOpcodeMismatch, "opcode_mismatch"},
	{schema.ErrNoMatchingVariant, "no_matching_variant"},
	{schema.ErrUnsupportedProperty, "unsupported_property"},
	{schema.ErrUnhandledVariant, "unhandled_variant"},
	{schema.ErrFieldValidationFailed, "field_validation_failed"},
	{schema.ErrTruncatedInput, "truncated_input"},
	{schema.ErrTrailingBytes, "trailing_bytes"},
	{schema.ErrMissingField, "missing_field"},
	{schema.ErrInvalidValue, "invalid_value"},
}

func errorCode(err error) string {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return "codec_error"
}
