package common

import "time"

// AuthCookieName is the cookie carrying the signed session token.
const AuthCookieName = "pomo-auth"

// AuthCookieTTL is how long a successful login stays valid.
const AuthCookieTTL = 30 * 24 * time.Hour

// Default pomodoro targets, in minutes.
const (
	DefaultWorkDuration  = 25
	DefaultBreakDuration = 5
)
