// Package pattern implements the notebook version naming core: the pattern
// detector that recognizes versioned notebook filenames, and the next-name
// composer that proposes the filename for the following version.
//
// The package is pure: it performs no prompting and no writes, so both
// halves are unit-testable without a terminal or a repository. DetectDir is
// the only function that touches the filesystem, and only to list a
// directory.
//
// # Conventions
//
// Six heterogeneous naming conventions are recognized, tried most-specific
// first; the first convention whose pattern matches a filename wins and
// later entries are never consulted for that file:
//
//  1. Name(v<N>).ext        e.g. Model(v3).ipynb
//  2. Name_v<N>.ext         e.g. Model_v3.ipynb
//  3. Name[Vv]<N>.ext       e.g. ModelV3.ipynb, Modelv3.ipynb
//  4. V<N>_<description>.ext e.g. V3_baseline.ipynb
//  5. v<N>_<description>.ext e.g. v3_baseline.ipynb
//  6. loose catch-all: "Model" substring plus a v-prefixed number anywhere
//
// A seventh per-file fallback treats a digitless base name starting with
// "model" as version 0.
//
// # Determinism
//
// Filenames are sorted before scanning and ties are broken by convention
// specificity, then by sorted filename order. Directory enumeration order
// therefore never influences the result.
package pattern
