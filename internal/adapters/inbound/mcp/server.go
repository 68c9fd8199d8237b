package mcp

import (
	"io"

	"github.com/mark3labs/mcp-go/server"
)

// NewFnWatchdogMCPServer creates a new MCP server with the fnwatchdog tools
// and resources registered. The projectPath is the root directory of the
// project to check; log entries of runs are written to logOut.
func NewFnWatchdogMCPServer(projectPath string, logOut io.Writer) *server.MCPServer {
	s := server.NewMCPServer(
		"fnwatchdog",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, logOut)
	registerResources(s, projectPath)

	return s
}
