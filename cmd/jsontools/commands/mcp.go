package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/jsontools/internal/cliutil"
	"github.com/erraggy/jsontools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// The command takes no flags of its own; the FlagSet exists for -h/--help.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: jsontools mcp\n\n")
		cliutil.Writef(output, "Serve jsontools over the Model Context Protocol on stdio.\n\n")
		cliutil.Writef(output, "The server exposes three tools:\n")
		cliutil.Writef(output, "  compare    Compare two documents and report differences\n")
		cliutil.Writef(output, "  extract    Resolve a path and return the addressed subtree\n")
		cliutil.Writef(output, "  inspect    Summarize a document's format, shape, and counts\n")
		cliutil.Writef(output, "\nConfiguration (environment variables):\n")
		cliutil.Writef(output, "  JSONTOOLS_MCP_CACHE_ENABLED       Cache parsed documents (default true)\n")
		cliutil.Writef(output, "  JSONTOOLS_MCP_MAX_INLINE_SIZE     Max inline content bytes (default 10MB)\n")
		cliutil.Writef(output, "  JSONTOOLS_MCP_MAX_FETCH_SIZE      Max URL fetch bytes (default 10MB)\n")
		cliutil.Writef(output, "  JSONTOOLS_MCP_FETCH_TIMEOUT       URL fetch timeout (default 30s)\n")
		cliutil.Writef(output, "  JSONTOOLS_MCP_ALLOW_PRIVATE_IPS   Allow URLs resolving to private IPs (default false)\n")
		cliutil.Writef(output, "\nExample client configuration:\n")
		cliutil.Writef(output, "  {\"mcpServers\": {\"jsontools\": {\"command\": \"jsontools\", \"args\": [\"mcp\"]}}}\n")
		cliutil.Writef(output, "\nThe server runs until the client disconnects or the process is interrupted.\n")
	}

	return fs
}

// HandleMCP executes the mcp command, serving until the client disconnects
// or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
