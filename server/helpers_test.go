package server

import (
	"io"

	"github.com/Fritz-nvm/Telex-AI-agent/cmd/common"
)

// testLogger keeps test output quiet.
func testLogger() *common.Logger {
	return common.NewLogger(io.Discard, "error")
}
