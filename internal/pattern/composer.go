package pattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/notebook-tools/nbversion/internal/errors"
)

// DefaultDescription is used when a prefix-style convention needs a
// description token and the caller supplied none.
const DefaultDescription = "updated"

// DefaultExtension is used when composing a name with no prior notebook to
// inherit an extension from.
const DefaultExtension = ".ipynb"

var reLabel = regexp.MustCompile(`^v?([0-9]+)$`)

// NormalizeLabel canonicalizes a user-supplied version label: a leading "v"
// is added if absent ("2" becomes "v2"). The remainder must be a decimal
// integer of at least 1.
func NormalizeLabel(label string) (string, error) {
	m := reLabel.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return "", errors.NewConfigError("label", label,
			errors.Wrap(errors.ErrInvalidConfiguration, "version label must be a number, optionally prefixed with 'v'"))
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return "", errors.NewConfigError("label", label,
			errors.Wrap(errors.ErrInvalidConfiguration, "version number must be at least 1"))
	}
	return fmt.Sprintf("v%d", n), nil
}

// LabelVersion extracts the numeric version from a normalized label.
func LabelVersion(label string) (int, error) {
	m := reLabel.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, errors.NewConfigError("label", label,
			errors.Wrap(errors.ErrInvalidConfiguration, "version label must be a number, optionally prefixed with 'v'"))
	}
	return strconv.Atoi(m[1])
}

// Compose synthesizes the filename for the new version, reusing the naming
// convention of the detected source file. When no source file matched any
// convention (or the convention has no composer), the default output pattern
// V<N>_<description>.ipynb is used.
//
// Compose never overwrites: if the composed name equals the source filename,
// errors.ErrNameUnchanged is returned and the caller must treat the request
// as a no-op.
func Compose(state VersionState, label, description string) (string, error) {
	version, err := LabelVersion(label)
	if err != nil {
		return "", err
	}

	if description == "" {
		description = DefaultDescription
	}

	name := composeName(state, version, description)
	if state.Found && name == state.Filename {
		return "", errors.Wrapf(errors.ErrNameUnchanged, "composing %s from %s", label, state.Filename)
	}
	return name, nil
}

func composeName(state VersionState, version int, description string) string {
	if state.Found {
		for _, conv := range Conventions {
			if conv.Tag != state.Convention {
				continue
			}
			if m := conv.Pattern.FindStringSubmatch(state.Filename); m != nil {
				return conv.Compose(m, version, description)
			}
		}
	}

	// No prior versioned notebook, or the winning convention was one of the
	// fallbacks with no composition rule of its own.
	ext := DefaultExtension
	if state.Found {
		if i := strings.LastIndex(state.Filename, "."); i > 0 {
			ext = state.Filename[i:]
		}
	}
	return fmt.Sprintf("V%d_%s%s", version, description, ext)
}
