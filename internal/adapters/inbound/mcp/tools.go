package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/config"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/engine"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/gitinfo"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/i18n"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/logging"
	"github.com/fnwatchdog/fnwatchdog/internal/adapters/outbound/sourceset"
	"github.com/fnwatchdog/fnwatchdog/internal/application"
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

// registerTools registers all fnwatchdog MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, logOut io.Writer) {
	s.AddTool(
		mcplib.NewTool("fnwatchdog_run",
			mcplib.WithDescription("Check the project's source roots against its naming conventions and return the run result as JSON"),
			mcplib.WithString("root", mcplib.Description("Source root to scan instead of the configured ones, relative to the project")),
			mcplib.WithBoolean("fail_on_violation", mcplib.Description("Report a failing gate when violations are found (default: configured value)")),
			mcplib.WithString("lang", mcplib.Description("Message language (en, de)")),
		),
		handleRun(projectPath, logOut),
	)
}

// newRunService wires the outbound adapters into a RunService.
func newRunService(locale string, logOut io.Writer) (*application.RunService, error) {
	logger, err := logging.New(logOut, logging.Options{Prefix: "fnwatchdog"})
	if err != nil {
		return nil, err
	}
	return application.NewRunService(
		sourceset.New(),
		engine.Factory,
		i18n.New(locale),
		logger,
		gitinfo.New(),
	), nil
}

func handleRun(projectPath string, logOut io.Writer) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		args := request.GetArguments()
		var override domain.ProjectConfig
		if root, ok := args["root"].(string); ok && root != "" {
			if !filepath.IsAbs(root) {
				root = filepath.Join(projectPath, root)
			}
			override.ScanRoots = []string{root}
		}
		if fail, ok := args["fail_on_violation"].(bool); ok {
			override.FailOnViolation = &fail
		}
		if lang, ok := args["lang"].(string); ok {
			override.Locale = lang
		}
		cfg = config.Merge(cfg, override)

		svc, err := newRunService(cfg.Locale, logOut)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := svc.Run(ctx, projectPath, cfg)
		if err != nil && !errors.Is(err, domain.ErrPolicyFailure) {
			return errorResult(fmt.Sprintf("run failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v to indented JSON and returns it as text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
