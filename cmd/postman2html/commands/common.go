// Package commands provides CLI command handlers for postman2html.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessy-bgl/postman-collection-to-html/parser"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// FormatCollectionPath returns a display-friendly path for the collection.
// Returns "<stdin>" if the path is StdinFilePath, otherwise the path as-is.
func FormatCollectionPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// ParseCollection parses the collection at path, treating StdinFilePath as
// stdin. Structural validation errors abort.
func ParseCollection(path string) (*parser.ParseResult, error) {
	p := parser.New()

	var result *parser.ParseResult
	var err error
	if path == StdinFilePath {
		result, err = p.ParseReader(os.Stdin)
	} else {
		result, err = p.Parse(path)
	}
	if err != nil {
		return nil, err
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("collection has %d structural error(s): %v", len(result.Errors), result.Errors[0])
	}
	return result, nil
}

// ValidateOutputPath checks if the output path is safe to write to.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != StdinFilePath {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return RejectSymlinkOutput(absOutputPath)
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an
// error if so, preventing a symlink from redirecting output to an unintended
// location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet, safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}
