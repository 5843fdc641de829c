// CLAUDE:SUMMARY MCP tool surface: preprocess_text, stem_word and list_filters dispatching to the shared endpoints.
package api

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/wordmill/pkg/kit"
	"github.com/hazyhaar/wordmill/pkg/langpack"
)

// RegisterMCPTools registers the wordmill MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, reg *langpack.Registry) {
	registerPreprocessText(srv, reg)
	registerStemWord(srv)
	registerListFilters(srv)
}

func registerPreprocessText(srv *server.MCPServer, reg *langpack.Registry) {
	tool := mcp.NewTool("preprocess_text",
		mcp.WithDescription("Normalize free-form text into a canonical token sequence: tag/punctuation/number stripping, stopword and short-token removal, suffix stemming."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to preprocess")),
		mcp.WithString("language", mcp.Description("Language code selecting the stopword pack (default en)")),
		mcp.WithString("filters", mcp.Description("Comma-separated filter names overriding the default chain (see list_filters)")),
	)

	kit.RegisterMCPTool(srv, tool, preprocessEndpoint(reg), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		text, _ := args["text"].(string)
		lang, _ := args["language"].(string)
		var names []string
		if v, _ := args["filters"].(string); v != "" {
			for _, n := range strings.Split(v, ",") {
				names = append(names, strings.TrimSpace(n))
			}
		}
		return &kit.MCPDecodeResult{
			Request:   &preprocessReq{Text: text, Language: lang, Filters: names},
			EnrichCtx: stdioTransport,
		}, nil
	})
}

func registerStemWord(srv *server.MCPServer) {
	tool := mcp.NewTool("stem_word",
		mcp.WithDescription("Reduce a single word to its morphological stem via staged suffix stripping."),
		mcp.WithString("word", mcp.Required(), mcp.Description("The word to stem")),
	)

	kit.RegisterMCPTool(srv, tool, stemEndpoint(), func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		word, _ := args["word"].(string)
		return &kit.MCPDecodeResult{Request: &stemReq{Word: word}, EnrichCtx: stdioTransport}, nil
	})
}

func registerListFilters(srv *server.MCPServer) {
	tool := mcp.NewTool("list_filters",
		mcp.WithDescription("List the available text filters and the default pipeline order."),
	)

	kit.RegisterMCPTool(srv, tool, listFiltersEndpoint(), func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil, EnrichCtx: stdioTransport}, nil
	})
}

func stdioTransport(ctx context.Context) context.Context {
	return kit.WithTransport(ctx, "mcp_stdio")
}
