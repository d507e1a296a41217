package api

import "io"

// Payload is the tagged request body union. The encoding is decided at
// the call site by picking the concrete type, never inferred from the
// runtime shape of a value.
type Payload interface {
	isPayload()
}

// JSONPayload marshals Value as the JSON request body.
type JSONPayload struct {
	Value any
}

func (JSONPayload) isPayload() {}

// MultipartPayload streams a file as a multipart form body. The request
// must not carry the default JSON content type; the multipart encoder
// supplies its own boundary header.
type MultipartPayload struct {
	// FieldName is the form field the file is attached under.
	FieldName string
	// FileName is the client-side name reported to the server.
	FileName string
	// Reader supplies the file bytes.
	Reader io.Reader
	// Fields are additional plain form fields, if any.
	Fields map[string]string
}

func (MultipartPayload) isPayload() {}
