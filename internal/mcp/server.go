// Package mcp exposes the care guide session as MCP tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/senior-care-guide/internal/domain"
	"github.com/senior-care-guide/internal/service"
	"github.com/senior-care-guide/internal/session"
)

// Server is the care guide MCP server
type Server struct {
	info        domain.MCPConfig
	session     *session.Session
	recommender service.Recommender
	mcpServer   *mcp.Server
	logger      *logrus.Logger
	tools       []string
}

// NewServer creates a new MCP server with every tool registered.
// recommender serves recommend_care_path; nil falls back to the plain engine.
func NewServer(info domain.MCPConfig, sess *session.Session, recommender service.Recommender, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if recommender == nil {
		recommender = service.NewCarePathEngine(logger)
	}
	if info.ServerName == "" {
		info.ServerName = "senior-care-guide"
	}
	if info.ServerVersion == "" {
		info.ServerVersion = "1.0.0"
	}

	serverInfo := &mcp.Implementation{
		Name:    info.ServerName,
		Version: info.ServerVersion,
	}

	s := &Server{
		info:        info,
		session:     sess,
		recommender: recommender,
		mcpServer:   mcp.NewServer(serverInfo, nil),
		logger:      logger,
	}

	s.registerTools()
	return s
}

// Tools lists the registered tool names in registration order.
func (s *Server) Tools() []string {
	out := make([]string, len(s.tools))
	copy(out, s.tools)
	return out
}

// Start serves MCP over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithFields(logrus.Fields{
		"name":    s.info.ServerName,
		"version": s.info.ServerVersion,
		"tools":   len(s.tools),
	}).Info("Starting MCP server on stdio")

	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// registerTools registers every care guide tool with the SDK
func (s *Server) registerTools() {
	addTool(s, "recommend_care_path",
		"Recommend a care path (Home Care, Retirement Home or Long-Term Care) for a set of answers. "+
			"Omitted answers are taken from the saved assessment. Nothing is saved.",
		s.recommendCarePath)
	addTool(s, "get_assessment",
		"Return the saved assessment and its current recommendation.",
		s.getAssessment)
	addTool(s, "set_assessment",
		"Update the saved assessment. Omitted answers keep their current values.",
		s.setAssessment)
	addTool(s, "set_language",
		"Set the display language (en or zh).",
		s.setLanguage)
	addTool(s, "list_waitlist",
		"List tracked facility applications, newest first, with follow-up status.",
		s.listWaitlist)
	addTool(s, "add_waitlist_item",
		"Track a new facility application. Facility is required; dateApplied defaults to today "+
			"and followUpEveryDays to 14. Intervals outside 3-60 days are clamped to the nearest bound.",
		s.addWaitlistItem)
	addTool(s, "mark_followed_up",
		"Record that the family followed up with a facility today.",
		s.markFollowedUp)
	addTool(s, "remove_waitlist_item",
		"Stop tracking a facility application.",
		s.removeWaitlistItem)
	addTool(s, "due_followups",
		"List applications whose follow-up is due today.",
		s.dueFollowUps)

	s.logger.WithField("tool_count", len(s.tools)).Info("Successfully registered all tools")
}

// addTool adapts a plain tool function to the SDK. Failures are reported to
// the client as tool errors rather than protocol errors.
func addTool[In any](s *Server, name, description string, fn func(context.Context, In) (any, error)) {
	tool := &mcp.Tool{
		Name:        name,
		Description: description,
	}

	mcp.AddTool(s.mcpServer, tool, toolHandler(s.logger, name, fn))
	s.tools = append(s.tools, name)
	s.logger.WithField("tool_name", name).Debug("Registered MCP tool")
}

func toolHandler[In any](logger *logrus.Logger, name string, fn func(context.Context, In) (any, error)) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, args In) (*mcp.CallToolResult, any, error) {
		logger.WithField("tool", name).Info("Tool invoked")

		out, err := fn(ctx, args)
		if err != nil {
			logger.WithError(err).WithField("tool", name).Warn("Tool failed")
			return errorResult(err), nil, nil
		}

		text, err := render(out)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode %s result: %w", name, err)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
