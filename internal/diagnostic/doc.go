// Package diagnostic provides structured warnings and errors produced by
// the mapping completeness check, and renders them for the command line.
//
// Key capabilities:
//   - Missing assignment warnings (fields a mapping function never assigns)
//   - Unknown exemption warnings with "did you mean" suggestions
//   - Configuration errors
//   - Text, JSON and YAML rendering
package diagnostic
