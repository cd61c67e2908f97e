package errors

import (
	"errors"
	"fmt"

	"github.com/jrsteele09/go-google-signin/oauthmodel"
)

// IsConfigError reports whether err is one of the authorization request precondition failures.
// In the server both required values come from configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, oauthmodel.ErrMissingClientID) || errors.Is(err, oauthmodel.ErrMissingRedirectURI)
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
