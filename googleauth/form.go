package googleauth

import (
	"net/http"

	"github.com/jrsteele09/go-google-signin/oauthmodel"
)

// AuthorizationForm is the off-screen request document submitted to Google.
type AuthorizationForm struct {
	Action string
	Method string
	Fields []oauthmodel.Field
}

// NewAuthorizationForm validates the request and builds the form for it.
func NewAuthorizationForm(req oauthmodel.AuthorizationRequest) (*AuthorizationForm, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &AuthorizationForm{
		Action: AuthURL,
		Method: http.MethodPost,
		Fields: req.Fields(),
	}, nil
}

// Get returns the value of the named field and whether it is present.
func (f *AuthorizationForm) Get(name string) (string, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}
