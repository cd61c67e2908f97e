package server

// Route path constants
const (
	RouteIndex        = "/"
	RouteGoogleSignIn = "/auth/google"
)
