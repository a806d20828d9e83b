package pathsafe

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	serrors "github.com/tovesk/envseal/internal/errors"
)

// driveAbsPattern matches Windows drive-absolute paths like `C:\...` or `C:/...`.
// These are rejected outright: a drive root can never live inside the
// working tree of the process.
var driveAbsPattern = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// Resolve validates rawPath against the current working directory and returns
// its absolute, cleaned form.
//
// Validation is purely lexical: no filesystem existence check happens here.
// Both forward-slash and backslash separators are honored, so traversal
// attempts like `..\..\windows\system32` are caught on any platform.
//
// Returns ErrInvalidPath if the resolved path would escape the working
// directory, either through `..` traversal or because rawPath is an absolute
// path pointing elsewhere.
func Resolve(rawPath string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return ResolveWithin(cwd, rawPath)
}

// ResolveWithin is Resolve with an explicit root instead of the working
// directory. The root must be an absolute path.
func ResolveWithin(root, rawPath string) (string, error) {
	if rawPath == "" {
		return "", fmt.Errorf("empty path: %w", serrors.ErrInvalidPath)
	}

	if driveAbsPattern.MatchString(rawPath) {
		return "", fmt.Errorf("drive-absolute path %q: %w", rawPath, serrors.ErrInvalidPath)
	}

	// Normalize backslash separators so Windows-style traversal in the
	// input cannot hide from the lexical checks below.
	normalized := filepath.FromSlash(strings.ReplaceAll(rawPath, `\`, "/"))

	abs := normalized
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}
	abs = filepath.Clean(abs)

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("path %q is not relative to %q: %w", rawPath, root, serrors.ErrInvalidPath)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes %q: %w", rawPath, root, serrors.ErrInvalidPath)
	}

	return abs, nil
}
