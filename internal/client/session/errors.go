package session

import "errors"

// ErrNoSession is returned when a consumer looks for the Manager in a context
// that does not carry one. It signals a wiring bug; callers must not treat it
// as either an anonymous or an authenticated session.
var ErrNoSession = errors.New("session manager not available in context")
