package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/config"
)

const configResourceURI = "fnwatchdog://config"

// registerResources registers all fnwatchdog MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			configResourceURI,
			"Configuration",
			mcplib.WithResourceDescription("Effective .fnwatchdog.yaml configuration with paths resolved against the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      configResourceURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
