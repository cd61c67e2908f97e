package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/jrsteele09/go-google-signin/googleauth"
	"github.com/jrsteele09/go-google-signin/oauthmodel"
	"github.com/rs/zerolog/log"
)

// DefaultScope is requested when GOOGLE_SCOPE is not set.
var DefaultScope = strings.Join([]string{"openid", "email", "profile"}, " ")

type GoogleConfig interface {
	GetGoogleClientID() string
	GetGoogleRedirectURI() string
	GetGoogleScope() string
	GetGoogleIsWebApp() bool
	GetGoogleAccessTypeOffline() bool
	GetGoogleIncludeGrantedScopes() bool
	GetGooglePrompt() oauthmodel.Prompt
	GetAuthTransport() googleauth.TransportMode
}

// googleEnv holds raw env values for the Google sign in section.
type googleEnv struct {
	ClientID             string `env:"GOOGLE_CLIENT_ID"`
	RedirectURI          string `env:"GOOGLE_REDIRECT_URI"`
	Scope                string `env:"GOOGLE_SCOPE"`
	IsWebApp             bool   `env:"GOOGLE_WEB_APP"                envDefault:"true"`
	AccessTypeOffline    bool   `env:"GOOGLE_ACCESS_TYPE_OFFLINE"`
	IncludeGrantedScopes bool   `env:"GOOGLE_INCLUDE_GRANTED_SCOPES"`
	Prompt               string `env:"GOOGLE_PROMPT"`
	Transport            string `env:"GOOGLE_AUTH_TRANSPORT"         envDefault:"form_post"`
}

type Google struct {
	raw googleEnv
}

var _ GoogleConfig = Google{}

// LoadGoogle parses the Google section from the environment.
// The client id is not required here; a missing one is reported when sign in starts.
func LoadGoogle() (Google, error) {
	var raw googleEnv
	if err := env.Parse(&raw); err != nil {
		return Google{}, fmt.Errorf("[config LoadGoogle] parse env: %w", err)
	}

	switch googleauth.TransportMode(raw.Transport) {
	case googleauth.FormPostTransport, googleauth.RedirectTransport:
	default:
		return Google{}, fmt.Errorf("[config LoadGoogle] unknown GOOGLE_AUTH_TRANSPORT %q", raw.Transport)
	}

	if raw.Prompt != "" && !oauthmodel.Prompt(raw.Prompt).IsValid() {
		log.Warn().Str("prompt", raw.Prompt).Msg("GOOGLE_PROMPT is not one of none, consent, select_account")
	}
	if raw.ClientID == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID is not set, sign in requests will fail")
	}

	return Google{raw: raw}, nil
}

func (g Google) GetGoogleClientID() string {
	return g.raw.ClientID
}

// GetGoogleRedirectURI falls back to BASE_URL + /auth/google/callback.
func (g Google) GetGoogleRedirectURI() string {
	if g.raw.RedirectURI != "" {
		return g.raw.RedirectURI
	}
	return EnvVars{}.GetBaseURL() + "/auth/google/callback"
}

func (g Google) GetGoogleScope() string {
	if g.raw.Scope == "" {
		return DefaultScope
	}
	return g.raw.Scope
}

func (g Google) GetGoogleIsWebApp() bool {
	return g.raw.IsWebApp
}

func (g Google) GetGoogleAccessTypeOffline() bool {
	return g.raw.AccessTypeOffline
}

func (g Google) GetGoogleIncludeGrantedScopes() bool {
	return g.raw.IncludeGrantedScopes
}

func (g Google) GetGooglePrompt() oauthmodel.Prompt {
	return oauthmodel.Prompt(g.raw.Prompt)
}

func (g Google) GetAuthTransport() googleauth.TransportMode {
	return googleauth.TransportMode(g.raw.Transport)
}
