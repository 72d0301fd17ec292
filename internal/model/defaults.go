package model

// Shared defaults used by both the service and TUI binaries.
const (
	DefaultSection      = "dashboard"
	DefaultSkin         = "default"
	DefaultCompactWidth = 100
	DefaultAPIPort      = 3000
	DefaultRegion       = "maharashtra"
)
