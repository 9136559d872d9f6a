package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessy-bgl/postman-collection-to-html/internal/cliutil"
	"github.com/jessy-bgl/postman-collection-to-html/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2html mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the render and inspect tools over MCP (Model Context Protocol) stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server reads requests on stdin and writes responses on stdout, so it\n")
		cliutil.Writef(fs.Output(), "is meant to be spawned by an MCP client rather than run interactively.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2HTML_LANG             default label language for render (default: en)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2HTML_COLLAPSE_AFTER   default response-body collapse threshold in lines (default: 10)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2HTML_MAX_FILE_SIZE    maximum collection size in bytes (default: 10485760)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2HTML_MAX_INLINE_SIZE  maximum inline content size in bytes (default: 1048576)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
