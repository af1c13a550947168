package collector

import "errors"

// The three user-visible failure categories. They must stay distinct: a
// connection problem, a server-side error status, and a response the client
// could not parse are different situations with different fixes.
var (
	ErrConnection = errors.New("could not connect to the prediction server")
	ErrHTTPStatus = errors.New("server returned an error status")
	ErrBadPayload = errors.New("failed to decode server response")
)
