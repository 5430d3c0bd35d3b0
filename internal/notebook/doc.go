// Package notebook edits version banners into copied artifacts.
//
// For Jupyter notebooks the contract is deliberately narrow: parse the
// document as JSON, prepend one markdown cell of a fixed shape to the cells
// array, re-serialize. Untouched cells and all other top-level fields are
// carried through as raw bytes. Malformed documents surface
// errors.ErrDocumentParse so the workflow can skip the insertion without
// failing the run.
//
// For plain script files (.py, .r, .R, .jl) the same banner is prepended as
// a line-comment block.
package notebook
