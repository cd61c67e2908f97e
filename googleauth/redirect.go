package googleauth

import (
	"net/http"

	"github.com/jrsteele09/go-google-signin/oauthmodel"
	"golang.org/x/oauth2"
)

// RedirectNavigator sends the browser to Google with a GET request,
// the way Google documents the authorization endpoint.
type RedirectNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

var _ Navigator = (*RedirectNavigator)(nil)

func NewRedirectNavigator(w http.ResponseWriter, r *http.Request) *RedirectNavigator {
	return &RedirectNavigator{w: w, r: r}
}

func (n *RedirectNavigator) Navigate(form *AuthorizationForm) error {
	http.Redirect(n.w, n.r, AuthCodeURL(form), http.StatusSeeOther)
	return nil
}

// AuthCodeURL builds the GET authorization URL carrying exactly the fields of form.
func AuthCodeURL(form *AuthorizationForm) string {
	clientID, _ := form.Get(oauthmodel.FieldClientID)
	redirectURI, _ := form.Get(oauthmodel.FieldRedirectURI)
	state, _ := form.Get(oauthmodel.FieldState)

	config := oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Endpoint:    oauth2.Endpoint{AuthURL: form.Action, TokenURL: TokenURL},
	}
	if scope, ok := form.Get(oauthmodel.FieldScope); ok {
		config.Scopes = []string{scope}
	}

	// AuthCodeURL always sets response_type=code; the form's value wins.
	var opts []oauth2.AuthCodeOption
	for _, f := range form.Fields {
		switch f.Name {
		case oauthmodel.FieldClientID, oauthmodel.FieldRedirectURI, oauthmodel.FieldScope, oauthmodel.FieldState:
			continue
		}
		opts = append(opts, oauth2.SetAuthURLParam(f.Name, f.Value))
	}
	return config.AuthCodeURL(state, opts...)
}
