package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// notices are the confirmations shown after a redirect, keyed by the
// notice query parameter.
var notices = map[string]string{
	"registered": "Your account has been created. Please log in.",
	"logged_out": "You have been logged out.",
	"voted":      "Your vote has been recorded.",
	"created":    "The nominee has been created.",
	"removed":    "The vote has been removed.",
}
