package constvars

const (
	RoutePathCSRFToken    = "/csrf-token"
	RoutePathSignup       = "/signup"
	RoutePathLogin        = "/login"
	RoutePathLogout       = "/logout"
	RoutePathRefreshToken = "/refresh-token"
	RoutePathGoogleLogin  = "/login/google"
	RoutePathAuthorize    = "/authorize"
	RoutePathHealthz      = "/healthz"
	RoutePathUser         = "/user"
	RoutePathJournals     = "/journals"
	RoutePathEntries      = "/entries"
	RoutePathMoods        = "/moods"
	RoutePathAIPrompt     = "/ai-prompt"
)
