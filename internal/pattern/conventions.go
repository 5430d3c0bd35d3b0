package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ConventionTag identifies one recognized notebook naming scheme.
type ConventionTag string

const (
	// ConvParenthesized matches Name(v<N>).ext, e.g. Model(v3).ipynb
	ConvParenthesized ConventionTag = "parenthesized"

	// ConvUnderscoreV matches Name_v<N>.ext, e.g. Model_v3.ipynb
	ConvUnderscoreV ConventionTag = "underscore-v"

	// ConvSuffixV matches Name[Vv]<N>.ext, e.g. ModelV3.ipynb or Modelv3.ipynb
	ConvSuffixV ConventionTag = "suffix-v"

	// ConvPrefixUpperV matches V<N>_<description>.ext, e.g. V3_baseline.ipynb
	ConvPrefixUpperV ConventionTag = "prefix-V"

	// ConvPrefixLowerV matches v<N>_<description>.ext, e.g. v3_baseline.ipynb
	ConvPrefixLowerV ConventionTag = "prefix-v"

	// ConvLoose matches any filename containing "Model" and a v-prefixed
	// number anywhere, e.g. final_Model_v3_notes.ipynb
	ConvLoose ConventionTag = "loose"

	// ConvBareModel matches a digitless base name starting with "model"
	// (case-insensitive); always version 0
	ConvBareModel ConventionTag = "bare-model"

	// ConvUnmatched marks a filename that matched no convention
	ConvUnmatched ConventionTag = "unmatched"
)

// Convention pairs a compiled pattern with an extraction function and a
// composition function. Conventions are evaluated in table order by
// [Classify]; first match wins and later entries are never tried.
type Convention struct {
	Tag     ConventionTag
	Pattern *regexp.Regexp

	// Extract pulls the version number out of a successful match.
	Extract func(matches []string) int

	// Compose builds the next filename from the matched source filename,
	// the new version number, and a short description token. description
	// is only consulted by the prefix conventions.
	Compose func(matches []string, version int, description string) string
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func extractGroup2(matches []string) int { return atoi(matches[2]) }
func extractGroup1(matches []string) int { return atoi(matches[1]) }

// --- Compiled convention patterns (order matters) ---

var (
	reParenthesized = regexp.MustCompile(
		`^(.+)\(v([0-9]+)\)(\.[^.]+)$`)

	reUnderscoreV = regexp.MustCompile(
		`^(.+)_v([0-9]+)(\.[^.]+)$`)

	reSuffixV = regexp.MustCompile(
		`^(.+?)[Vv]([0-9]+)(\.[^.]+)$`)

	rePrefixUpperV = regexp.MustCompile(
		`^V([0-9]+)_(.+)(\.[^.]+)$`)

	rePrefixLowerV = regexp.MustCompile(
		`^v([0-9]+)_(.+)(\.[^.]+)$`)

	reLooseVersion = regexp.MustCompile(
		`[vV]([0-9]+)`)

	reAnyDigit = regexp.MustCompile(`[0-9]`)
)

// Conventions is the ordered convention table. Most-specific first; a
// filename is never tested against a later entry once an earlier one
// matches.
var Conventions = []Convention{
	{
		Tag:     ConvParenthesized,
		Pattern: reParenthesized,
		Extract: extractGroup2,
		Compose: func(m []string, version int, _ string) string {
			return fmt.Sprintf("%s(v%d)%s", m[1], version, m[3])
		},
	},
	{
		Tag:     ConvUnderscoreV,
		Pattern: reUnderscoreV,
		Extract: extractGroup2,
		Compose: func(m []string, version int, _ string) string {
			return fmt.Sprintf("%s_v%d%s", m[1], version, m[3])
		},
	},
	{
		Tag:     ConvSuffixV,
		Pattern: reSuffixV,
		Extract: extractGroup2,
		// Output always normalizes to capital V regardless of source case.
		Compose: func(m []string, version int, _ string) string {
			return fmt.Sprintf("%sV%d%s", m[1], version, m[3])
		},
	},
	{
		Tag:     ConvPrefixUpperV,
		Pattern: rePrefixUpperV,
		Extract: extractGroup1,
		Compose: func(m []string, version int, description string) string {
			return fmt.Sprintf("V%d_%s%s", version, description, m[3])
		},
	},
	{
		Tag:     ConvPrefixLowerV,
		Pattern: rePrefixLowerV,
		Extract: extractGroup1,
		Compose: func(m []string, version int, description string) string {
			return fmt.Sprintf("v%d_%s%s", version, description, m[3])
		},
	},
}

// specificity returns the table index of a tag; lower is more specific.
// The two fallback tags sort after every table entry.
func specificity(tag ConventionTag) int {
	for i, c := range Conventions {
		if c.Tag == tag {
			return i
		}
	}
	switch tag {
	case ConvLoose:
		return len(Conventions)
	case ConvBareModel:
		return len(Conventions) + 1
	}
	return len(Conventions) + 2
}

// Classify tests a single filename against the convention table, then the
// loose catch-all, then the bare-model fallback. It returns the winning tag
// and extracted version. Unmatched filenames return (ConvUnmatched, 0).
func Classify(filename string) (ConventionTag, int) {
	for _, conv := range Conventions {
		if m := conv.Pattern.FindStringSubmatch(filename); m != nil {
			return conv.Tag, conv.Extract(m)
		}
	}

	// Loose catch-all: a literal "Model" substring plus a v-prefixed
	// decimal run anywhere in the name.
	if strings.Contains(filename, "Model") {
		if m := reLooseVersion.FindStringSubmatch(filename); m != nil {
			return ConvLoose, atoi(m[1])
		}
	}

	// Bare-model fallback: digitless base name starting with "model",
	// case-insensitively. Always version 0.
	base := filename
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if strings.HasPrefix(strings.ToLower(base), "model") && !reAnyDigit.MatchString(base) {
		return ConvBareModel, 0
	}

	return ConvUnmatched, 0
}
