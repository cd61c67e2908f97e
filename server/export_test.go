package server

import (
	"net/http"

	"github.com/jrsteele09/go-google-signin/googleauth"
)

func (s *Server) SetNavigatorFor(f func(googleauth.TransportMode, http.ResponseWriter, *http.Request) googleauth.Navigator) {
	s.navigatorFor = f
}
