package errors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/jrsteele09/go-google-signin/internal/errors"
	"github.com/jrsteele09/go-google-signin/oauthmodel"
	"github.com/stretchr/testify/require"
)

func TestIsConfigError(t *testing.T) {
	require.True(t, apperrors.IsConfigError(oauthmodel.ErrMissingClientID))
	require.True(t, apperrors.IsConfigError(fmt.Errorf("wrapped: %w", oauthmodel.ErrMissingRedirectURI)))
	require.False(t, apperrors.IsConfigError(errors.New("write failed")))
	require.False(t, apperrors.IsConfigError(nil))
}

func TestWrapf(t *testing.T) {
	require.NoError(t, apperrors.Wrapf(nil, "ignored"))

	base := errors.New("base")
	err := apperrors.Wrapf(base, "[%s] load", "config")
	require.ErrorIs(t, err, base)
	require.Equal(t, "[config] load: base", err.Error())
}
