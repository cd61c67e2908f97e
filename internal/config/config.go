package config

type Config interface {
	EnvConfig
	GoogleConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Google
}

// New reads the environment once. A malformed Google section is returned as an error.
func New() (Config, error) {
	google, err := LoadGoogle()
	if err != nil {
		return nil, err
	}
	return mainConfig{Google: google}, nil
}
