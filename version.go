package stratum

// Version is the library version. Overridden at release time via ldflags.
var Version = "0.1.0"
