package env

import "audio-joiner/src/lib/werror"

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

func Parse(environment string) (Environment, error) {
	switch environment {
	case "", "production":
		return Production, nil
	case "development":
		return Development, nil
	default:
		return Production, werror.Wrapf(nil, "Invalid environment is set: %s", environment)
	}
}
