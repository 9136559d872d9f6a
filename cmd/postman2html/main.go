package main

import (
	"fmt"
	"os"

	pmhtml "github.com/jessy-bgl/postman-collection-to-html"
	"github.com/jessy-bgl/postman-collection-to-html/cmd/postman2html/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("postman2html v%s\n", pmhtml.Version())
	case "help", "-h", "--help":
		printUsage()
	case "render":
		if err := commands.HandleRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := commands.HandleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`postman2html - Render API collection exports as self-contained HTML

Usage:
  postman2html <command> [options]

Commands:
  render      Render a collection export to an HTML document
  inspect     Parse a collection export and print a structural summary
  mcp         Serve the render and inspect tools over MCP stdio
  version     Show version information
  help        Show this help message

Examples:
  postman2html render -o api.html collection.json
  postman2html render -l fr --divider h2 collection.json
  cat collection.json | postman2html render -q - > api.html
  postman2html inspect collection.json

Run 'postman2html <command> --help' for more information on a command.`)
}
