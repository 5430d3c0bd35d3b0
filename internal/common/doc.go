// Package common holds small shared interfaces used across nbversion's
// internal packages.
//
// Its main export is the Logger interface, which lives here rather than in
// the logger package so that packages like git and workflow can accept a
// Logger without importing the concrete implementation (and without creating
// an import cycle between logger and its consumers).
package common
