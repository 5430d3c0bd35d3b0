package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/notebook-tools/nbversion/internal/errors"
)

// Banner describes the version note inserted at the top of a copied
// notebook.
type Banner struct {
	Label       string
	Description string
	CreatedAt   time.Time
}

// NewBanner builds a Banner for the given label and description, stamped
// with the current time.
func NewBanner(label, description string) Banner {
	return Banner{
		Label:       label,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// SourceLines renders the banner as markdown source lines in the notebook
// cell format (every line except the last carries its own trailing newline).
func (b Banner) SourceLines() []string {
	return []string{
		fmt.Sprintf("# Version %s\n", b.Label),
		"\n",
		fmt.Sprintf("**%s**\n", b.Description),
		"\n",
		fmt.Sprintf("Created: %s\n", b.CreatedAt.Format("2006-01-02 15:04:05")),
		"\n",
		"Changes in this version:\n",
		fmt.Sprintf("- %s", b.Description),
	}
}

// markdownCell is the fixed shape of the prepended cell.
type markdownCell struct {
	CellType string          `json:"cell_type"`
	Metadata json.RawMessage `json:"metadata"`
	Source   []string        `json:"source"`
}

// Prepend inserts the banner as a new markdown cell at index 0 of the
// document's cell list and returns the re-serialized document.
//
// Every pre-existing cell and every other top-level value is carried through
// as raw bytes, unchanged. A document without a cells array gets one whose
// only entry is the banner. Malformed JSON is reported as ErrDocumentParse;
// the input is never modified in place.
func (b Banner) Prepend(doc []byte) ([]byte, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(doc, &top); err != nil {
		return nil, errors.Wrap(errors.ErrDocumentParse, err.Error())
	}
	if top == nil {
		top = make(map[string]json.RawMessage)
	}

	var cells []json.RawMessage
	if raw, ok := top["cells"]; ok {
		if err := json.Unmarshal(raw, &cells); err != nil {
			return nil, errors.Wrap(errors.ErrDocumentParse, "cells is not an array: "+err.Error())
		}
	}

	cell, err := json.Marshal(markdownCell{
		CellType: "markdown",
		Metadata: json.RawMessage("{}"),
		Source:   b.SourceLines(),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrDocumentParse, err.Error())
	}

	updated, err := json.Marshal(append([]json.RawMessage{cell}, cells...))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDocumentParse, err.Error())
	}
	top["cells"] = updated

	// Compact output: indentation would rewrite the raw bytes of the
	// untouched cells.
	out, err := json.Marshal(top)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDocumentParse, err.Error())
	}
	return append(out, '\n'), nil
}

// PrependToFile applies Prepend to a notebook file on disk. On any parse
// failure the file is left untouched and a NotebookError wrapping
// ErrDocumentParse is returned so the caller can skip the insertion and
// continue.
func (b Banner) PrependToFile(path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return errors.NewNotebookError(path, err)
	}

	updated, err := b.Prepend(doc)
	if err != nil {
		return errors.NewNotebookError(path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.NewNotebookError(path, err)
	}

	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return errors.NewNotebookError(path, err)
	}
	return nil
}
