package configs

import "time"

// Auth configures bearer token verification. Tokens are HS256 JWTs issued
// by the account service; the subject claim carries the user id.
type Auth struct {
	Secret   string        `env:"JWT_SECRET,notEmpty"`
	Issuer   string        `env:"ISSUER"`
	Audience string        `env:"AUDIENCE"`
	Leeway   time.Duration `env:"LEEWAY" envDefault:"30s"`
}
