// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - StateStore: Named JSON record persistence (sessions, transcripts)
//   - SessionStore: The logged-in identity and its bearer token
//   - TranscriptStore: Per-space chat history
//   - Backend: The TutorWise HTTP API
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - UploadLedger: Watch-upload deduplication state. Only needed by the
//     watch service.
//   - DirWatcher: Filesystem event source for the watch service.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
