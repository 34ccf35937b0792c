package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port           int           `yaml:"port" env:"PORT, overwrite" validate:"required,min=1,max=65535"`
	LogLevel       string        `yaml:"log_level" env:"PUNCHCARDS_LOG_LEVEL, overwrite" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON        bool          `yaml:"log_json" env:"PUNCHCARDS_LOG_JSON, overwrite"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"PUNCHCARDS_ALLOWED_ORIGINS, overwrite"`
	SecureHeaders  bool          `yaml:"secure_headers"` // adds HSTS, enable behind https
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
	Pool           Pool          `yaml:"pool"`
	Limits         Limits        `yaml:"limits"`
}

// Pool configures the database/sql connection pool
type Pool struct {
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// Limits bounds user supplied text, counted in runes
type Limits struct {
	TitleMaxLen  int `yaml:"title_max_len" validate:"required,gt=0"`
	NameMaxLen   int `yaml:"name_max_len" validate:"required,gt=0"`
	ReasonMaxLen int `yaml:"reason_max_len" validate:"required,gt=0"`
	MaxCapacity  int `yaml:"max_capacity" validate:"required,gt=0"`
}

type Pg struct {
	Host     string `yaml:"host" env:"HOST, overwrite" validate:"required"`
	Port     int    `yaml:"port" env:"PORT, overwrite" validate:"required"`
	User     string `yaml:"user" env:"USER, overwrite" validate:"required"`
	Password string `yaml:"password" env:"PASSWORD, overwrite"`
	Dbname   string `yaml:"dbname" env:"DBNAME, overwrite" validate:"required"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE, overwrite"`
}

type Private struct {
	Pg Pg `yaml:"pg" env:",prefix=PUNCHCARDS_PG_"`
}

func Default() Public {
	return Public{
		Port:         8080,
		LogLevel:     "info",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		QueryTimeout: 5 * time.Second,
		Pool: Pool{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Limits: Limits{
			TitleMaxLen:  100,
			NameMaxLen:   100,
			ReasonMaxLen: 1000,
			MaxCapacity:  1000,
		},
	}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %v", configPath, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, then
// applies environment overrides (PORT, PUNCHCARDS_*). Values set nowhere
// keep their Default. It panics on any problem.
func MustLoad(configFolder string) *Config {
	public := Default()
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	if err := envconfig.Process(context.Background(), cfg); err != nil {
		panic(fmt.Sprintf("can't apply environment overrides: %v", err))
	}
	if cfg.Private.Pg.SSLMode == "" {
		cfg.Private.Pg.SSLMode = "disable"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}
