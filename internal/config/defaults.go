package config

const (
	defaultDataDir        = "~/.local/share/dvrshelf"
	defaultLogDir         = "~/.local/share/dvrshelf/logs"
	defaultVideoExtension = ".ts"
	defaultMetaExtension  = ".ts.meta"
	defaultEITExtension   = ".eit"
	defaultPlayerCommand  = "vlc"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// defaultComponentExtensions lists every sidecar the receiver writes per
// recording. Drop-commit enumerates exactly this set.
var defaultComponentExtensions = []string{".eit", ".ts", ".ts.ap", ".ts.cuts", ".ts.meta", ".ts.sc"}

var defaultDownloadExtensions = []string{".mp4"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Files: Files{
			VideoExtension:      defaultVideoExtension,
			MetaExtension:       defaultMetaExtension,
			EITExtension:        defaultEITExtension,
			ComponentExtensions: append([]string(nil), defaultComponentExtensions...),
			DownloadExtensions:  append([]string(nil), defaultDownloadExtensions...),
		},
		Player: Player{
			Command: defaultPlayerCommand,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
