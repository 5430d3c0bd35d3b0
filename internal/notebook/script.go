package notebook

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/notebook-tools/nbversion/internal/errors"
)

// scriptExtensions maps recognized script-language extensions to their
// line-comment prefix.
var scriptExtensions = map[string]string{
	".py": "#",
	".r":  "#",
	".R":  "#",
	".jl": "#",
}

// IsScript reports whether the filename carries a recognized
// script-language extension.
func IsScript(name string) bool {
	_, ok := scriptExtensions[filepath.Ext(name)]
	return ok
}

// ScriptHeader renders the banner as a comment block suitable for
// prepending to a script file.
func (b Banner) ScriptHeader(commentPrefix string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Version %s\n", commentPrefix, b.Label)
	fmt.Fprintf(&sb, "%s %s\n", commentPrefix, b.Description)
	fmt.Fprintf(&sb, "%s Created: %s\n", commentPrefix, b.CreatedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString("\n")
	return sb.String()
}

// PrependToScript inserts the banner comment block at the top of a script
// file, leaving the original content intact below it. Unrecognized
// extensions are rejected.
func (b Banner) PrependToScript(path string) error {
	prefix, ok := scriptExtensions[filepath.Ext(path)]
	if !ok {
		return errors.NewNotebookError(path, errors.Errorf("unrecognized script extension %q", filepath.Ext(path)))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.NewNotebookError(path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.NewNotebookError(path, err)
	}

	updated := append([]byte(b.ScriptHeader(prefix)), content...)
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return errors.NewNotebookError(path, err)
	}
	return nil
}

// FindScripts lists recognized script files directly inside dir (no
// recursion), sorted by name. A missing directory yields an empty list.
func FindScripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var scripts []string
	for _, e := range entries {
		if e.IsDir() || !IsScript(e.Name()) {
			continue
		}
		scripts = append(scripts, e.Name())
	}
	sort.Strings(scripts)
	return scripts, nil
}
