package config

import "go.uber.org/fx"

// Module provides the Config assembled from .env, environment and flags.
var Module = fx.Provide(Load)
