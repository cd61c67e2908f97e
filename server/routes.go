package server

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteIndex+"{$}", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleWare()...))

	// Both verbs so the sign in button can be a link or a form
	s.RegisterRouteHandler("GET "+RouteGoogleSignIn, ChainMiddleware(s.GoogleSignInHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteGoogleSignIn, ChainMiddleware(s.GoogleSignInHandler(), s.HTMLMiddleWare()...))
}
