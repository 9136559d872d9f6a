package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jessy-bgl/postman-collection-to-html/internal/cliutil"
	"github.com/jessy-bgl/postman-collection-to-html/parser"
	"github.com/jessy-bgl/postman-collection-to-html/walker"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	NoTree bool
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.BoolVar(&flags.NoTree, "no-tree", false, "omit the tree outline, print only the summary")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2html inspect [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Parse an API collection export and print a structural summary.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  postman2html inspect collection.json\n")
		cliutil.Writef(fs.Output(), "  postman2html inspect --no-tree collection.yaml\n")
		cliutil.Writef(fs.Output(), "  cat collection.json | postman2html inspect -\n")
	}

	return fs, flags
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs, flags := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path or '-' for stdin")
	}

	collectionPath := fs.Arg(0)

	result, err := ParseCollection(collectionPath)
	if err != nil {
		return fmt.Errorf("parsing collection: %w", err)
	}
	col := result.Collection

	out := os.Stdout
	cliutil.Writef(out, "Collection: %s\n", col.Name)
	if col.Schema != "" {
		cliutil.Writef(out, "Schema: %s\n", col.Schema)
	}
	cliutil.Writef(out, "Source: %s (%s, %s)\n",
		FormatCollectionPath(collectionPath), result.SourceFormat, parser.FormatBytes(result.SourceSize))
	cliutil.Writef(out, "Folders: %d\n", result.Stats.FolderCount)
	cliutil.Writef(out, "Endpoints: %d\n", result.Stats.EndpointCount)
	cliutil.Writef(out, "Responses: %d\n", result.Stats.ResponseCount)
	cliutil.Writef(out, "Max Depth: %d\n", result.Stats.MaxDepth)

	for _, warning := range result.Warnings {
		cliutil.Writef(os.Stderr, "Warning: %s\n", warning)
	}

	if flags.NoTree || len(col.Items) == 0 {
		return nil
	}

	cliutil.Writef(out, "\n")
	return walker.Walk(col,
		walker.WithFolderHandler(func(f *parser.Folder, ctx *walker.Context) walker.Action {
			cliutil.Writef(out, "%s%s/\n", strings.Repeat("  ", ctx.Depth), f.Name)
			return walker.Continue
		}),
		walker.WithEndpointHandler(func(e *parser.Endpoint, ctx *walker.Context) walker.Action {
			method := "GET"
			if e.Request != nil && e.Request.Method != "" {
				method = e.Request.Method
			}
			cliutil.Writef(out, "%s%s %s\n", strings.Repeat("  ", ctx.Depth), method, e.Name)
			return walker.Continue
		}),
	)
}
