package googleauth

import "golang.org/x/oauth2"

const (
	// AuthURL is Google's OAuth 2.0 authorization endpoint.
	AuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
	// TokenURL is the token endpoint used by code exchange.
	TokenURL = "https://www.googleapis.com/oauth2/v4/token"
	// EmailURL is the OpenID userinfo endpoint.
	EmailURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// Endpoint is Google's endpoint pair for use with an oauth2.Config.
var Endpoint = oauth2.Endpoint{
	AuthURL:  AuthURL,
	TokenURL: TokenURL,
}
