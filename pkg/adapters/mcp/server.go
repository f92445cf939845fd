// Package mcp exposes the engine as a Model Context Protocol server so
// agent frameworks can drive the application through the instruction
// catalog.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gantrykit/gantry/internal/logging"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/engine"
	"github.com/gantrykit/gantry/pkg/protocol"
)

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    *engine.Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server over the engine.
func NewServer(e *engine.Engine, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		engine:    e,
		logger:    logger,
		mcpServer: server.NewMCPServer("gantry-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: list_instructions
	s.mcpServer.AddTool(mcp.NewTool("list_instructions",
		mcp.WithDescription("List the instruction catalog with parameter and output schemas."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp := protocol.Catalog(s.engine.FriendlyName(), s.engine.Catalog())
		data, err := resp.Encode()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})

	// TOOL: run_instructions
	runTool := mcp.NewTool("run_instructions",
		mcp.WithDescription("Execute an ordered batch of instruction calls against the application. "+
			"Execution is all-or-nothing: the first failure aborts the batch."),
		mcp.WithString("instructions", mcp.Required(),
			mcp.Description(`JSON array of calls: [{"instruction": "...", "parameters": {...}}]`)),
	)
	s.mcpServer.AddTool(runTool, s.handleRunInstructions)

	// TOOL: reset_state
	s.mcpServer.AddTool(mcp.NewTool("reset_state",
		mcp.WithDescription("Discard the application session and the run journal."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.engine.Reset(ctx)
		return mcp.NewToolResultText(`{"type":"state_reset"}`), nil
	})
}

func (s *Server) handleRunInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireString("instructions")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var calls []domain.InstructionCall
	if err := json.Unmarshal([]byte(raw), &calls); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid instructions payload: %v", err)), nil
	}

	outputs, evidence, derr := s.engine.Run(ctx, calls)
	var resp protocol.Response
	if derr != nil {
		s.logger.Warn("MCP batch failed", "kind", derr.Kind, "reason", derr.Reason)
		resp = protocol.Error(derr)
	} else {
		resp = protocol.ExecutionOutput(outputs, evidence)
	}

	data, err := resp.Encode()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: gantry://catalog
	s.mcpServer.AddResource(mcp.NewResource("gantry://catalog", "Instruction Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(s.engine.Catalog())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "gantry://catalog",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
