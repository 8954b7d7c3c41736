package sel

const (
	Logo = ".brand-logo"

	SignInFormEmail  = "#email"
	SignInFormPass   = "#password"
	SignInFormSubmit = "#login-button"

	SignUpFormEmail      = "#email"
	SignUpFormPass       = "#password"
	SignUpFormPassRepeat = "#password-repeat"
	SignUpFormSubmit     = "#register-button"

	DashboardNextEvent     = "#next-event"
	DashboardAllEvents     = "#all-events"
	DashboardPageInfo      = "#page-info"
	DashboardFilterSubmit  = "#apply-filters"
	DashboardEnrollButton  = "#enroll-button"
	DashboardEnrolledBadge = "#enrolled-badge"

	MatchingFindButton = "#find-matches"
	MatchingResults    = "#match-results"

	HistoryTable     = "#history-table"
	NotificationList = "#notification-list"
)
