package oauthmodel

import "errors"

var (
	ErrMissingClientID    = errors.New("clientId required")
	ErrMissingRedirectURI = errors.New("redirectUri required")
)
