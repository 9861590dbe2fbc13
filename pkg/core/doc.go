// Package core defines the shared language of pinelint.
//
// This package contains:
//   - Severity levels for diagnostics
//   - Rule metadata DTOs used by tooling and documentation
//   - Lint configuration types shared by the CLI and the lint package
//
// pkg/core imports only the standard library.
// All other packages depend on core, not the reverse.
package core
