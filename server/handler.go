package server

import (
	"io"
	"net/http"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

// handleRPC is the main entry point for incoming A2A JSON-RPC requests.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSONRPCError(w, a2a.ErrParseError(err), nil)
		return
	}

	req, rpcErr := decodeRequest(body)
	if rpcErr != nil {
		var id any
		if req != nil {
			id = req.ID
		}
		writeJSONRPCError(w, rpcErr, id)
		return
	}

	switch req.Method {
	case a2a.MethodMessageSend:
		s.handleMessageSend(w, r, req)
	case a2a.MethodTasksGet:
		s.handleTasksGet(w, req)
	default:
		writeJSONRPCError(w, a2a.ErrMethodNotFound(req.Method), req.ID)
	}
}

// handleMessageSend handles the message/send method.
func (s *Server) handleMessageSend(w http.ResponseWriter, r *http.Request, req *a2a.JSONRPCRequest) {
	params, rpcErr := decodeSendParams(req.Params)
	if rpcErr != nil {
		writeJSONRPCError(w, rpcErr, req.ID)
		return
	}

	task, rpcErr := s.dispatcher.HandleMessageSend(r.Context(), params)
	if rpcErr != nil {
		writeJSONRPCError(w, rpcErr, req.ID)
		return
	}

	writeJSONRPCResponse(w, task, req.ID)
}

// handleTasksGet handles the tasks/get method.
func (s *Server) handleTasksGet(w http.ResponseWriter, req *a2a.JSONRPCRequest) {
	params, rpcErr := decodeTaskQueryParams(req.Params)
	if rpcErr != nil {
		writeJSONRPCError(w, rpcErr, req.ID)
		return
	}

	task, err := s.store.Get(params.ID)
	if err != nil {
		if a2aErr, ok := err.(*a2a.Error); ok {
			writeJSONRPCError(w, a2aErr, req.ID)
		} else {
			writeJSONRPCError(w, a2a.ErrInternalError(err), req.ID)
		}
		return
	}

	writeJSONRPCResponse(w, task, req.ID)
}
