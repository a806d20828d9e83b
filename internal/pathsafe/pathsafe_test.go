package pathsafe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	serrors "github.com/tovesk/envseal/internal/errors"
)

func TestResolveWithin_AcceptsPathsInsideRoot(t *testing.T) {
	root := filepath.FromSlash("/work")

	cases := []struct {
		raw  string
		want string
	}{
		{".env", filepath.Join(root, ".env")},
		{"./subdir/.env", filepath.Join(root, "subdir", ".env")},
		{"sub/../.env", filepath.Join(root, ".env")},
		{filepath.Join(root, ".env"), filepath.Join(root, ".env")},
		{".", root},
	}

	for _, tc := range cases {
		got, err := ResolveWithin(root, tc.raw)
		if err != nil {
			t.Errorf("ResolveWithin(%q) returned error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ResolveWithin(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestResolveWithin_RejectsEscapes(t *testing.T) {
	root := filepath.FromSlash("/work")

	cases := []string{
		"../../etc/passwd",
		`..\..\windows\system32`,
		"/etc/passwd",
		`C:\windows\system32`,
		`C:/windows/system32`,
		"sub/../../outside",
		"..",
		"",
	}

	for _, raw := range cases {
		_, err := ResolveWithin(root, raw)
		if err == nil {
			t.Errorf("ResolveWithin(%q) succeeded, want ErrInvalidPath", raw)
			continue
		}
		if !errors.Is(err, serrors.ErrInvalidPath) {
			t.Errorf("ResolveWithin(%q) = %v, want ErrInvalidPath", raw, err)
		}
	}
}

func TestResolveWithin_IsLexicalOnly(t *testing.T) {
	root := filepath.FromSlash("/work")

	// The target does not exist anywhere; validation must still pass.
	got, err := ResolveWithin(root, "does/not/exist.env")
	if err != nil {
		t.Fatalf("Expected no error for nonexistent path, got: %v", err)
	}
	if got != filepath.Join(root, "does", "not", "exist.env") {
		t.Errorf("Unexpected resolution: %q", got)
	}
}

func TestResolve_UsesWorkingDirectory(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	got, err := Resolve(".env")
	if err != nil {
		t.Fatalf("Resolve(.env) returned error: %v", err)
	}
	if got != filepath.Join(cwd, ".env") {
		t.Errorf("Resolve(.env) = %q, want %q", got, filepath.Join(cwd, ".env"))
	}

	if _, err := Resolve("../outside"); !errors.Is(err, serrors.ErrInvalidPath) {
		t.Errorf("Resolve(../outside) = %v, want ErrInvalidPath", err)
	}
}
