package server

import (
	"net/http"

	apperrors "github.com/jrsteele09/go-google-signin/internal/errors"
	"github.com/jrsteele09/go-google-signin/googleauth"
	"github.com/jrsteele09/go-google-signin/oauthmodel"
	"github.com/rs/zerolog/log"
)

// GoogleSignInHandler starts the Google authorization flow (GET|POST /auth/google).
// login_hint, state, prompt and scope may be supplied per request, everything else comes from config.
func (s *Server) GoogleSignInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		req := s.authorizationRequest(r)
		tw := &trackingResponseWriter{ResponseWriter: w}
		nav := s.navigatorFor(s.config.GetAuthTransport(), tw, r)

		err := googleauth.StartAuth(nav, req)
		switch {
		case err == nil:
		case apperrors.IsConfigError(err):
			log.Err(err).Str("request_id", r.Header.Get(requestIDHeader)).Msg("Google sign in is not configured")
			http.Error(w, "Google sign in is not configured: "+err.Error(), http.StatusInternalServerError)
		default:
			logError(r.Method, r.URL.Path, err.Error())
			if !tw.written {
				http.Error(w, "Failed to start Google sign in", http.StatusInternalServerError)
			}
		}
	}
}

func (s *Server) authorizationRequest(r *http.Request) oauthmodel.AuthorizationRequest {
	req := oauthmodel.AuthorizationRequest{
		ClientID:               s.config.GetGoogleClientID(),
		RedirectURI:            s.config.GetGoogleRedirectURI(),
		IsWebApp:               s.config.GetGoogleIsWebApp(),
		Scope:                  s.config.GetGoogleScope(),
		IsAccessTypeOffline:    s.config.GetGoogleAccessTypeOffline(),
		IsIncludeGrantedScopes: s.config.GetGoogleIncludeGrantedScopes(),
		Prompt:                 s.config.GetGooglePrompt(),
		State:                  r.FormValue("state"),
		LoginHint:              r.FormValue("login_hint"),
	}
	if scope := r.FormValue("scope"); scope != "" {
		req.Scope = scope
	}
	if prompt := r.FormValue("prompt"); prompt != "" {
		req.Prompt = oauthmodel.Prompt(prompt)
	}
	return req
}

// trackingResponseWriter records whether a navigator started the response.
type trackingResponseWriter struct {
	http.ResponseWriter
	written bool
}

func (w *trackingResponseWriter) WriteHeader(statusCode int) {
	w.written = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *trackingResponseWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}
