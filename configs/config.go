package configs

import (
	"os"
)

// Config collects everything the server reads from the environment.
// MongoURI may be empty: the server then runs against the in-memory seed
// repository, which is the development default.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
	LogLevel  string
	LogPretty bool
	SeedData  bool
}

func Load() Config {
	cfg := Config{
		Port:      getenv("PORT", "3000"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    getenv("DB_NAME", "arcuspath"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogPretty: os.Getenv("LOG_PRETTY") == "true",
		SeedData:  os.Getenv("SEED_DATA") == "true",
	}
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
