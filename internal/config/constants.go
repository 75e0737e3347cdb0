package config

const (
	// DefaultGameTimezone is where the platform's betting windows live.
	DefaultGameTimezone = "Asia/Kolkata"

	// DefaultRolloverTime is when declared rounds reset for the next day.
	// Kept past the late-night result slots so early-morning results stay
	// visible for a while.
	DefaultRolloverTime = "06:00"
)
