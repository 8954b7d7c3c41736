package webpath

const (
	Home    = "/"
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"

	Dashboard       = "/volunteer-dashboard"
	DashboardEnroll = Dashboard + "/enroll/:eventID"
	Matching        = "/volunteer"
	MatchingOpen    = Matching + "/open/:eventID"
	History         = "/volunteer-history"
	Notifications   = "/notifications"
	Admin           = "/admin"
	CompleteProfile = "/complete-profile"

	// bases for links built in templates
	DashboardEnrollBase = Dashboard + "/enroll/"
	MatchingOpenBase    = Matching + "/open/"
)

func Path() map[string]string {
	return map[string]string{
		"Home":                Home,
		"SignIn":              Signin,
		"SignUp":              Signup,
		"SignOut":             Signout,
		"Dashboard":           Dashboard,
		"Matching":            Matching,
		"History":             History,
		"Notifications":       Notifications,
		"Admin":               Admin,
		"CompleteProfile":     CompleteProfile,
		"DashboardEnrollBase": DashboardEnrollBase,
		"MatchingOpenBase":    MatchingOpenBase,
	}
}
