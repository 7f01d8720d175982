package domain

import "errors"

// Token validation failures are kept distinct internally (for logging and
// tests) even though the HTTP layer collapses all of them into a single
// generic 401 response.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
