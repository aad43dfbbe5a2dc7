package config

import (
	"strings"
)

// Environment is the deployment stage read from app.env.
type Environment string

const (
	EnvUndefined Environment = ""
	EnvLocal     Environment = "local"
	EnvDev       Environment = "dev"
	EnvUAT       Environment = "uat"
	EnvProd      Environment = "prod"
)

// ParseEnvironment is case insensitive; unknown stages map to EnvUndefined.
func ParseEnvironment(s string) Environment {
	switch e := Environment(strings.ToLower(strings.TrimSpace(s))); e {
	case EnvLocal, EnvDev, EnvUAT, EnvProd:
		return e
	default:
		return EnvUndefined
	}
}

func (e Environment) String() string {
	if e == EnvUndefined {
		return "undefined"
	}
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == EnvProd
}

// DebugLogging is only allowed on stages nobody else shares.
func (e Environment) DebugLogging() bool {
	return e == EnvLocal || e == EnvUndefined
}

// Environment is the parsed app.env.
func (c Config) Environment() Environment {
	return ParseEnvironment(c.App.Env)
}
