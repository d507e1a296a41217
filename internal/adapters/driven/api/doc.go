// Package api provides the request gateway and the typed client for the
// TutorWise backend.
//
// Every outbound call flows through Gateway.Do, the single chokepoint
// that merges headers, applies the session's bearer token, encodes the
// payload, classifies the response, and performs the forced logout on
// authorization failure. Client is the thin facade binding each backend
// operation to its endpoint shape; it adds no behaviour on top of the
// gateway.
package api
