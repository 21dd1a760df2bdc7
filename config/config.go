package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	MongoURI  string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	MongoDB   string `envconfig:"MONGODB_DB" default:"shopping_cart"`
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// MemoryDB switches persistence to the in-process store. Development only;
	// everything is lost on restart.
	MemoryDB bool `envconfig:"MEMORY_DB" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
