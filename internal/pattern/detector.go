package pattern

import (
	"fmt"
	"os"
	"sort"
)

// VersionState is the immutable result of one detection pass: the highest
// version number found, the filename that produced it, and the convention
// that matched it. A zero VersionState (Found == false) means no file in the
// scan matched any convention.
type VersionState struct {
	Found      bool
	Version    int
	Filename   string
	Convention ConventionTag
}

// NextVersion returns the suggested next version number: highest found plus
// one, with a minimum of 1.
func (s VersionState) NextVersion() int {
	if !s.Found || s.Version < 0 {
		return 1
	}
	return s.Version + 1
}

// NextLabel returns the suggested next version label, e.g. "v4".
func (s VersionState) NextLabel() string {
	return fmt.Sprintf("v%d", s.NextVersion())
}

// Detect scans a set of filenames and returns the VersionState for the
// highest-versioned notebook among them.
//
// Filenames are sorted lexicographically before scanning so the result never
// depends on directory enumeration order. Each file independently picks its
// own convention via [Classify]; across files the highest version wins. Ties
// are broken deterministically: the more specific convention wins, and on
// equal specificity the lexicographically later filename wins.
func Detect(filenames []string) VersionState {
	sorted := make([]string, len(filenames))
	copy(sorted, filenames)
	sort.Strings(sorted)

	var state VersionState
	for _, name := range sorted {
		tag, version := Classify(name)
		if tag == ConvUnmatched {
			continue
		}

		if !state.Found {
			state = VersionState{Found: true, Version: version, Filename: name, Convention: tag}
			continue
		}

		switch {
		case version > state.Version:
			state = VersionState{Found: true, Version: version, Filename: name, Convention: tag}
		case version == state.Version && specificity(tag) <= specificity(state.Convention):
			// Equal version: prefer the more specific convention; at equal
			// specificity the later filename in sorted order wins.
			state = VersionState{Found: true, Version: version, Filename: name, Convention: tag}
		}
	}

	return state
}

// DetectDir reads the given directory and runs [Detect] over its regular
// file entries. A missing directory is treated as an empty set, not an
// error; any other read failure is returned.
func DetectDir(dir string) (VersionState, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return VersionState{}, nil
		}
		return VersionState{}, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}

	return Detect(names), nil
}
