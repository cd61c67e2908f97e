package googleauth

import (
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-google-signin/oauthmodel"
	"github.com/rs/zerolog/log"
)

// TransportMode selects how the authorization request reaches Google.
type TransportMode string

const (
	// FormPostTransport submits a hidden form with POST from the browser.
	FormPostTransport TransportMode = "form_post"
	// RedirectTransport redirects the browser with the fields in the query string.
	RedirectTransport TransportMode = "redirect"
)

// Navigator hands a built authorization form to the browser.
type Navigator interface {
	Navigate(form *AuthorizationForm) error
}

// StartAuth validates req, builds its form and navigates to Google.
// Nothing is written to the navigator when validation fails.
func StartAuth(nav Navigator, req oauthmodel.AuthorizationRequest) error {
	form, err := NewAuthorizationForm(req)
	if err != nil {
		return err
	}

	log.Debug().
		Str("client_id", req.ClientID).
		Int("fields", len(form.Fields)).
		Msg("Starting Google authorization")

	if err := nav.Navigate(form); err != nil {
		return fmt.Errorf("[StartAuth] navigate: %w", err)
	}
	return nil
}

// NavigatorFor returns the navigator for the transport mode. Unknown modes use form post.
func NavigatorFor(mode TransportMode, w http.ResponseWriter, r *http.Request) Navigator {
	if mode == RedirectTransport {
		return NewRedirectNavigator(w, r)
	}
	return NewFormPostNavigator(w)
}
