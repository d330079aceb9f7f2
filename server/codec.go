package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

// validate checks inbound message shape against the validate tags on the
// a2a wire types.
var validate = validator.New()

// decodeRequest parses a raw body into a JSON-RPC request envelope and
// validates its top-level shape. Malformed JSON maps to -32700, a missing
// version or method to -32600.
func decodeRequest(body []byte) (*a2a.JSONRPCRequest, *a2a.Error) {
	var req a2a.JSONRPCRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, a2a.ErrParseError(err)
	}

	if req.JSONRPC != "2.0" {
		return &req, a2a.ErrInvalidRequest("jsonrpc must be \"2.0\"")
	}
	if req.Method == "" {
		return &req, a2a.ErrInvalidRequest("method is required")
	}

	return &req, nil
}

// decodeSendParams parses and validates the params of a message/send
// request. Structurally invalid params map to -32602.
func decodeSendParams(raw json.RawMessage) (*a2a.MessageSendParams, *a2a.Error) {
	if len(raw) == 0 {
		return nil, a2a.ErrInvalidParams("params.message is required")
	}

	var params a2a.MessageSendParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, a2a.ErrInvalidParams(err.Error())
	}

	if err := validate.Struct(params.Message); err != nil {
		return nil, a2a.ErrInvalidParams("invalid message: " + err.Error())
	}
	if strings.TrimSpace(params.Message.Text()) == "" {
		return nil, a2a.ErrInvalidParams("message has no text content")
	}

	return &params, nil
}

// decodeTaskQueryParams parses the params of a tasks/get request.
func decodeTaskQueryParams(raw json.RawMessage) (*a2a.TaskQueryParams, *a2a.Error) {
	var params a2a.TaskQueryParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, a2a.ErrInvalidParams(err.Error())
	}
	if params.ID == "" {
		return nil, a2a.ErrInvalidParams("params.id is required")
	}
	return &params, nil
}

// writeJSONRPCResponse writes a successful JSON-RPC response. The transport
// status is always 200; callers validate on envelope shape, not HTTP status.
func writeJSONRPCResponse(w http.ResponseWriter, result any, id any) {
	response := a2a.JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	}

	jsonResp, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonResp)
}

// writeJSONRPCError writes a JSON-RPC error response. Protocol errors are
// communicated inside the envelope's error object; the transport status
// stays 200 even for them.
func writeJSONRPCError(w http.ResponseWriter, rpcErr *a2a.Error, id any) {
	response := a2a.JSONRPCResponse{
		JSONRPC: "2.0",
		Error:   rpcErr.ToJSONRPCError(),
		ID:      id,
	}

	jsonResp, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(jsonResp)
}
