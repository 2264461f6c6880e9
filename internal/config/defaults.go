package config

const (
	defaultDataDir         = "~/.local/share/cinebob"
	defaultLogDir          = "~/.local/share/cinebob/logs"
	defaultTelegramBaseURL = "https://api.telegram.org"
	defaultPollTimeout     = 30
	defaultRequestTimeout  = 35
	defaultPopularCount    = 5
	defaultPopularMax      = 25
	defaultKeepAliveBind   = "127.0.0.1:3000"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Telegram: Telegram{
			BaseURL:        defaultTelegramBaseURL,
			PollTimeout:    defaultPollTimeout,
			RequestTimeout: defaultRequestTimeout,
		},
		Commands: Commands{
			PopularCount: defaultPopularCount,
			PopularMax:   defaultPopularMax,
		},
		KeepAlive: KeepAlive{
			Enabled: true,
			Bind:    defaultKeepAliveBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
