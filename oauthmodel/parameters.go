package oauthmodel

import "net/url"

// Authorization request field names as sent to Google.
const (
	FieldClientID             = "client_id"
	FieldRedirectURI          = "redirect_uri"
	FieldResponseType         = "response_type"
	FieldScope                = "scope"
	FieldAccessType           = "access_type"
	FieldState                = "state"
	FieldIncludeGrantedScopes = "include_granted_scopes"
	FieldLoginHint            = "login_hint"
	FieldPrompt               = "prompt"
)

// AuthorizationRequest holds the parameters of a single Google OAuth 2.0 authorization attempt.
// The zero value of every optional field means "leave it out of the request".
type AuthorizationRequest struct {
	// ClientID is the OAuth client identifier issued by Google.
	// Required: Yes
	// Example: "1234-abc.apps.googleusercontent.com"
	ClientID string

	// RedirectURI is where Google sends the user after consent.
	// Required: Yes
	// Validated against: the client's registered redirect URIs, by Google only
	RedirectURI string

	// IsWebApp selects response_type "code". When false response_type is sent empty.
	// Required: No (default false)
	IsWebApp bool

	// Scope is the space delimited list of scopes being requested.
	// Required: No (omitted when empty)
	// Example: "openid email profile"
	Scope string

	// IsAccessTypeOffline selects access_type "offline" instead of "online".
	// Required: No (default false)
	IsAccessTypeOffline bool

	// State is an opaque value Google echoes back to the redirect URI.
	// Required: No (omitted when empty)
	// Security: verification on callback is the caller's job
	State string

	// IsIncludeGrantedScopes sends include_granted_scopes=true for incremental authorization.
	// Required: No. The field is never sent as "false", it is left out instead.
	IsIncludeGrantedScopes bool

	// LoginHint pre-fills the email on Google's sign in page.
	// Required: No (omitted when empty)
	// Example: "user@example.com"
	LoginHint string

	// Prompt forces Google's consent or account chooser screens.
	// Required: No (omitted when empty)
	// Not checked locally, Google reports unknown values after navigation.
	Prompt Prompt
}

// Field is a single name/value pair of the authorization request.
type Field struct {
	Name  string
	Value string
}

// Validate checks the two required parameters. Nothing else is checked locally.
func (r AuthorizationRequest) Validate() error {
	if r.ClientID == "" {
		return ErrMissingClientID
	}
	if r.RedirectURI == "" {
		return ErrMissingRedirectURI
	}
	return nil
}

// Fields returns the ordered field set of the request.
// client_id, redirect_uri, response_type and access_type are always present.
func (r AuthorizationRequest) Fields() []Field {
	fields := []Field{
		{Name: FieldClientID, Value: r.ClientID},
		{Name: FieldRedirectURI, Value: r.RedirectURI},
		{Name: FieldResponseType, Value: string(ResponseTypeFor(r.IsWebApp))},
	}
	if r.Scope != "" {
		fields = append(fields, Field{Name: FieldScope, Value: r.Scope})
	}
	fields = append(fields, Field{Name: FieldAccessType, Value: string(AccessTypeFor(r.IsAccessTypeOffline))})
	if r.State != "" {
		fields = append(fields, Field{Name: FieldState, Value: r.State})
	}
	if r.IsIncludeGrantedScopes {
		fields = append(fields, Field{Name: FieldIncludeGrantedScopes, Value: "true"})
	}
	if r.LoginHint != "" {
		fields = append(fields, Field{Name: FieldLoginHint, Value: r.LoginHint})
	}
	if r.Prompt != "" {
		fields = append(fields, Field{Name: FieldPrompt, Value: string(r.Prompt)})
	}
	return fields
}

// Values returns the field set as url.Values.
func (r AuthorizationRequest) Values() url.Values {
	return FieldValues(r.Fields())
}

// FieldValues converts an ordered field set to url.Values.
func FieldValues(fields []Field) url.Values {
	v := url.Values{}
	for _, f := range fields {
		v.Set(f.Name, f.Value)
	}
	return v
}
