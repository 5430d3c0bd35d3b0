// Package config manages nbversion's configuration.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. Built-in defaults (New)
//  2. The optional .nbversion.yaml file in the repository root (LoadFromFile)
//  3. NBVERSION_* environment variables (LoadFromEnvironment)
//  4. Command-line flags, bound by the cli package
//
// Finalize validates the assembled configuration, resolves the repository
// path, and derives the default debug-log location following the XDG Base
// Directory Specification, keyed by a hash of the repository path so
// concurrent use against different repositories never shares a log file.
package config
