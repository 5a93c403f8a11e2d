// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes jsontools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/jsontools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `jsontools MCP server — compares, extracts from, and inspects JSON and YAML documents.

Configuration: All defaults are configurable via JSONTOOLS_MCP_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- JSONTOOLS_MCP_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- JSONTOOLS_MCP_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched documents
- JSONTOOLS_MCP_CACHE_ENABLED (default: true) — disable document caching entirely
- JSONTOOLS_MCP_MAX_INLINE_SIZE (default: 10485760) — max inline content size in bytes
- JSONTOOLS_MCP_MAX_FETCH_SIZE (default: 10485760) — max URL fetch size in bytes
- JSONTOOLS_MCP_FETCH_TIMEOUT (default: 30s) — overall timeout for URL fetches
- JSONTOOLS_MCP_DIFF_LIMIT (default: 100) — default page size for compare differences
- JSONTOOLS_MCP_ALLOW_PRIVATE_IPS (default: false) — allow URL fetches that resolve to private/loopback addresses

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsontools", Version: jsontools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare",
		Description: "Compare two JSON or YAML documents and report every difference with its path. Provide expected and actual documents (each by file, url, or content; exactly one). Use path to compare the expected document against a part of the actual one (e.g. store.items[2]). Mode value (default) compares kinds and values; mode structure compares shape only. tolerance accepts decimal text like 0.01 for approximate numeric equality. Expected string values equal to the ignore marker (default ${json-unit.ignore}) match anything. extra_fields=lenient tolerates actual-only object fields. Use offset/limit to page through differences; counts always reflect the full comparison. The default page size is configurable via JSONTOOLS_MCP_DIFF_LIMIT.",
	}, handleCompare)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract",
		Description: "Resolve a path in a JSON or YAML document and return the addressed subtree. Paths use dotted field names and zero-based indices (e.g. store.items[2].price); the empty path returns the whole document. Output is indented JSON by default or YAML with format=yaml. Number formatting from the source is preserved exactly.",
	}, handleExtract)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect a JSON or YAML document and return a structural summary: detected format and encoding, root kind, node counts by kind, maximum nesting depth, and top-level fields or element count. Use this before compare or extract to understand an unfamiliar document cheaply.",
	}, handleInspect)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.DiffLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.DiffLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
