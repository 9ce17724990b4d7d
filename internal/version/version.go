package version

// AppVersion is the devdoctor release version. Overridable at build time:
// -ldflags "-X devdoctor/internal/version.AppVersion=x.y.z"
var AppVersion = "0.1.0"
