package oauthmodel

// Prompt is the Google specific prompt parameter.
// Controls which consent / account chooser screens Google shows the user.
type Prompt string

const (
	// PromptNone shows no authentication or consent screens.
	// Google returns an error if the user is not already signed in and consented.
	PromptNone Prompt = "none"

	// PromptConsent forces the consent screen, even for previously granted scopes.
	// Used when: a new refresh token is needed for an offline client
	PromptConsent Prompt = "consent"

	// PromptSelectAccount shows the account chooser.
	PromptSelectAccount Prompt = "select_account"
)

// IsValid reports whether p is one of the values Google documents.
func (p Prompt) IsValid() bool {
	switch p {
	case PromptNone, PromptConsent, PromptSelectAccount:
		return true
	}
	return false
}

// ResponseType is the OAuth 2.0 response_type sent to the authorization endpoint.
type ResponseType string

const (
	// CodeResponseType selects the authorization code flow (web applications).
	CodeResponseType ResponseType = "code"

	// EmptyResponseType is sent for non web app clients.
	// Google rejects it; it is kept as-is until the intended flow for these clients is settled.
	EmptyResponseType ResponseType = ""
)

// ResponseTypeFor returns the response type for a client.
func ResponseTypeFor(isWebApp bool) ResponseType {
	if isWebApp {
		return CodeResponseType
	}
	return EmptyResponseType
}

// AccessType is the Google specific access_type parameter.
type AccessType string

const (
	// OnlineAccessType issues no refresh token.
	OnlineAccessType AccessType = "online"

	// OfflineAccessType asks Google for a refresh token on the first code exchange.
	OfflineAccessType AccessType = "offline"
)

// AccessTypeFor returns the access type for the offline flag.
func AccessTypeFor(isOffline bool) AccessType {
	if isOffline {
		return OfflineAccessType
	}
	return OnlineAccessType
}
