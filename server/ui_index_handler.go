package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// IndexHandler renders the sign in page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"AppName":    s.config.GetAppName(),
			"SignInPath": RouteGoogleSignIn,
			"Configured": s.config.GetGoogleClientID() != "",
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render index template")
		}
	}
}
