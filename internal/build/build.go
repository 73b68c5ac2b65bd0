package build

// Overridden at link time with -ldflags "-X ..."
var (
	ProjectVersion = "unknown"
	GitRef         = "unknown"
	BuildDate      = "unknown"
)

var (
	ShortVersion = ProjectVersion
	LongVersion  = ProjectVersion + " (" + GitRef + ") - " + BuildDate
)
