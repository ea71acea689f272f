// Package mcp exposes the documentation viewer over the Model Context
// Protocol: version catalog, substring search, and item retrieval as tools,
// plus docview:// resources.
package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docnav/internal/docs"
	"docnav/internal/fetch"
	"docnav/internal/render"
	"docnav/internal/rpc"
	"docnav/internal/search"
	"docnav/internal/session"
)

//go:embed instructions.md
var instructions string

type Server struct {
	mcpServer *server.MCPServer
	fetcher   fetch.Fetcher
	session   *session.Session
}

func NewServer(fetcher fetch.Fetcher) *Server {
	s := &Server{
		fetcher: fetcher,
		session: session.New(docs.NewLoader(fetcher)),
	}

	mcpServer := server.NewMCPServer(
		"docnav",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("list_versions",
			mcp.WithDescription("List the available documentation versions. The first entry is the default selection."),
		),
		s.handleListVersions,
	)

	mcpServer.AddTool(
		mcp.NewTool("select_version",
			mcp.WithDescription("Select the active documentation version and resolve its content tree. Subsequent searches and reads default to this version."),
			mcp.WithString("version",
				mcp.Description("Version key from list_versions"),
				mcp.Required(),
			),
		),
		s.handleSelectVersion,
	)

	mcpServer.AddTool(
		mcp.NewTool("search_docs",
			mcp.WithDescription("Substring search across the active version's documentation. Returns URIs that can be read as resources. Results follow dataset order, not relevance."),
			mcp.WithString("query",
				mcp.Description("Search text (case-insensitive substring match)"),
				mcp.Required(),
			),
			mcp.WithString("version",
				mcp.Description("Optional version to search; defaults to the selected version"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (default 20)"),
			),
		),
		s.handleSearchDocs,
	)

	mcpServer.AddTool(
		mcp.NewTool("get_doc",
			mcp.WithDescription("Read one documentation item as markdown."),
			mcp.WithString("id",
				mcp.Description("Item id"),
				mcp.Required(),
			),
			mcp.WithString("version",
				mcp.Description("Optional version; defaults to the selected version"),
			),
		),
		s.handleGetDoc,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"docview://{version}/{id}",
			"Documentation item",
			mcp.WithTemplateDescription("Read a specific documentation item. Search results return these URIs."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleReadResource,
	)
}

// versionData returns the resolved dataset for version, selecting it in the
// session. An empty version means the currently selected one.
func (s *Server) versionData(ctx context.Context, version string) (string, *docs.VersionData, error) {
	if version == "" {
		current, data := s.session.Current()
		if data != nil {
			return current, data, nil
		}
		versions, err := docs.LoadVersions(ctx, s.fetcher)
		if err != nil {
			return "", nil, err
		}
		version = versions[0].Version
	}

	data, err := s.session.Select(ctx, version)
	if err != nil {
		return "", nil, err
	}
	return version, data, nil
}

func (s *Server) handleListVersions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	versions, err := docs.LoadVersions(ctx, s.fetcher)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading versions: %v", err)), nil
	}

	resultJSON, _ := json.MarshalIndent(rpc.VersionsResponse{Versions: versions}, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleSelectVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	version, _ := args["version"].(string)
	if version == "" {
		return mcp.NewToolResultError("missing required parameter: version"), nil
	}

	data, err := s.session.Select(ctx, version)
	if err != nil {
		if errors.Is(err, session.ErrStale) {
			return mcp.NewToolResultError("selection superseded by a newer one"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("selecting version: %v", err)), nil
	}

	summary := fmt.Sprintf("selected %s: %d items, %d root categories, %d standalone docs",
		version, len(data.Items), len(data.Tree), len(data.StandaloneDocs))
	return mcp.NewToolResultText(summary), nil
}

func (s *Server) handleSearchDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if query == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	version, _ := args["version"].(string)
	limit := 20
	if n, ok := args["limit"].(float64); ok && int(n) > 0 {
		limit = int(n)
	}

	version, data, err := s.versionData(ctx, version)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	matches := search.Search(data.Items, query)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]rpc.SearchResult, len(matches))
	for i, m := range matches {
		results[i] = rpc.SearchResult{
			URI:     fmt.Sprintf("docview://%s/%s", version, m.Item.ID),
			ID:      m.Item.ID,
			Title:   m.Item.Title,
			Snippet: m.Snippet,
			Tags:    m.Item.Tags,
		}
	}

	resultJSON, _ := json.MarshalIndent(rpc.SearchResponse{Results: results}, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleGetDoc(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["id"].(string)
	if id == "" {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	version, _ := args["version"].(string)

	markdown, err := s.itemMarkdown(ctx, version, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(markdown), nil
}

func (s *Server) itemMarkdown(ctx context.Context, version, id string) (string, error) {
	version, data, err := s.versionData(ctx, version)
	if err != nil {
		return "", fmt.Errorf("loading version data: %w", err)
	}
	for _, item := range data.Items {
		if item.ID == id {
			return render.ItemMarkdown(item), nil
		}
	}
	return "", fmt.Errorf("item %s not found in version %s", id, version)
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	trimmed := strings.TrimPrefix(uri, "docview://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}

	markdown, err := s.itemMarkdown(ctx, parts[0], parts[1])
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     markdown,
		},
	}, nil
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
