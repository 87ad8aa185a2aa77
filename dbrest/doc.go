// Package dbrest is a thin HTTP client for the db.transport.rest API.
//
// The client issues parameterized GET requests against a fixed base URL and
// returns the decoded JSON body as an untyped value; depending on the
// endpoint the body may be a JSON array or a JSON object, so callers must
// handle both shapes.
package dbrest
