package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort           string   `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL        string   `env:"DATABASE_URL,required"`
	MongoURL           string   `env:"MONGO_URL"`
	MongoDB            string   `env:"MONGO_DB" envDefault:"myflix"`
	JWTSecret          string   `env:"JWT_SECRET,required"`
	JWTTTLHours        int      `env:"JWT_TTL_HOURS" envDefault:"24"`
	RedisAddr          string   `env:"REDIS_ADDR"`
	RedisPassword      string   `env:"REDIS_PASSWORD"`
	RedisDB            int      `env:"REDIS_DB" envDefault:"0"`
	LoginWindowMinutes int      `env:"LOGIN_WINDOW_MINUTES" envDefault:"10"`
	LoginMaxAttempts   int      `env:"LOGIN_MAX_ATTEMPTS" envDefault:"10"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
