package version

var (
	AppName     = "voicewarden"
	AppFullName = "Voicewarden Discord Bot"
	AppVersion  = "dev"
)
