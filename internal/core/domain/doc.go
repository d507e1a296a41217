// Package domain defines the core entities for the TutorWise client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Session: The authenticated identity and bearer token
//   - Space: A named collection of uploaded documents plus chat context
//   - Content: An uploaded document and its processing status
//   - ChatMessage: One turn of a per-space transcript
//   - APIError: A classified backend call failure
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
