package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	pmhtml "github.com/jessy-bgl/postman-collection-to-html"
	"github.com/jessy-bgl/postman-collection-to-html/internal/cliutil"
	"github.com/jessy-bgl/postman-collection-to-html/internal/labels"
	"github.com/jessy-bgl/postman-collection-to-html/parser"
	"github.com/jessy-bgl/postman-collection-to-html/renderer"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	Output        string
	Language      string
	LogoFile      string
	Divider       string
	CollapseAfter int
	Quiet         bool
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Language, "l", "", "label language as a BCP-47 tag (default: en)")
	fs.StringVar(&flags.Language, "lang", "", "label language as a BCP-47 tag (default: en)")
	fs.StringVar(&flags.LogoFile, "logo-file", "", "file whose contents embed as logo markup in the header")
	fs.StringVar(&flags.Divider, "divider", "", "heading level that receives a separator rule (h1..h6)")
	fs.IntVar(&flags.CollapseAfter, "collapse-after", 0, "collapse response bodies longer than this many lines (default: 10)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2html render [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Render an API collection export as a self-contained HTML document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nSupported Languages:\n")
		for _, lang := range labels.Supported() {
			cliutil.Writef(fs.Output(), "  - %s\n", lang)
		}
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  postman2html render -o api.html collection.json\n")
		cliutil.Writef(fs.Output(), "  postman2html render -l fr --divider h2 collection.json\n")
		cliutil.Writef(fs.Output(), "  postman2html render --logo-file logo.svg -o api.html collection.yaml\n")
		cliutil.Writef(fs.Output(), "  cat collection.json | postman2html render -q - > api.html\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The output document embeds all styles and scripts; no network access is needed to view it\n")
		cliutil.Writef(fs.Output(), "  - Duplicate anchors (identically named siblings) are disambiguated and reported as warnings\n")
		cliutil.Writef(fs.Output(), "  - Unknown but valid language tags fall back to the closest supported language\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Rendering successful\n")
		cliutil.Writef(fs.Output(), "  1    Invalid input, invalid configuration, or write failure\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one file path or '-' for stdin")
	}

	collectionPath := fs.Arg(0)

	r := renderer.New()
	r.Language = flags.Language
	r.DividerLevel = flags.Divider
	r.CollapseThreshold = flags.CollapseAfter

	if flags.LogoFile != "" {
		logo, err := os.ReadFile(flags.LogoFile)
		if err != nil {
			return fmt.Errorf("reading logo file: %w", err)
		}
		r.Logo = string(logo)
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, collectionPath); err != nil {
			return err
		}
	}

	startTime := time.Now()
	parseResult, err := ParseCollection(collectionPath)
	if err != nil {
		return fmt.Errorf("parsing collection: %w", err)
	}

	result, err := r.Render(parseResult.Collection)
	if err != nil {
		return fmt.Errorf("rendering collection: %w", err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "Collection to HTML Renderer\n")
		cliutil.Writef(os.Stderr, "===========================\n\n")
		cliutil.Writef(os.Stderr, "postman2html version: %s\n", pmhtml.Version())
		cliutil.Writef(os.Stderr, "Collection: %s\n", FormatCollectionPath(collectionPath))
		cliutil.Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(parseResult.SourceSize))
		cliutil.Writef(os.Stderr, "Language: %s\n", result.Language)
		cliutil.Writef(os.Stderr, "Folders: %d\n", result.Stats.FolderCount)
		cliutil.Writef(os.Stderr, "Endpoints: %d\n", result.Stats.EndpointCount)
		cliutil.Writef(os.Stderr, "Responses: %d\n", result.Stats.ResponseCount)
		cliutil.Writef(os.Stderr, "Load Time: %v\n", parseResult.LoadTime)
		cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

		for _, warning := range parseResult.Warnings {
			cliutil.Writef(os.Stderr, "Warning: %s\n", warning)
		}
		if len(result.Issues) > 0 {
			cliutil.Writef(os.Stderr, "Render Issues (%d):\n", len(result.Issues))
			for _, issue := range result.Issues {
				cliutil.Writef(os.Stderr, "  %s\n", issue.String())
			}
			cliutil.Writef(os.Stderr, "\n")
		}
	}

	if flags.Output != "" {
		if err := os.WriteFile(flags.Output, []byte(result.Document), 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Output written to: %s\n", flags.Output)
		}
	} else {
		if _, err := os.Stdout.WriteString(result.Document); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
	}

	if !flags.Quiet {
		if result.WarningCount > 0 {
			cliutil.Writef(os.Stderr, "✓ Rendering successful (%d warning(s))\n", result.WarningCount)
		} else {
			cliutil.Writef(os.Stderr, "✓ Rendering successful\n")
		}
	}

	return nil
}
