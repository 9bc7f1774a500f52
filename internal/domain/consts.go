package domain

// Selection modes for the daily pick
const (
	ModePlain  = "plain"
	ModeOffset = "offset"
)

// Defaults used when the environment leaves them unset
const (
	DefaultSendTime = "09:00"
	DefaultTimezone = "Atlantic/Canary"
	DefaultMode     = ModeOffset
)

// UnknownSource is rendered when an imported problem carries no source label
const UnknownSource = "[source not specified]"
