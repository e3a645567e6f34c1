package configs

// RateLimit configures the per-client token bucket applied to the API.
type RateLimit struct {
	Enabled bool    `env:"ENABLED" envDefault:"true"`
	RPS     float64 `env:"RPS" envDefault:"20"`
	Burst   int     `env:"BURST" envDefault:"40"`
}
