package http

import "errors"

// ErrEmptyAuthorizationHeader is returned for requests whose "Authorization"
// header is absent or is not a well-formed "Bearer <token>" value. Both cases
// read the same to the client: no usable token was presented.
var ErrEmptyAuthorizationHeader = errors.New("token required")
