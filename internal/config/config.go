package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"prod"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	SQLServer  SQLServer  `yaml:"sql_server"`
	StoreSetup StoreSetup `yaml:"store_setup"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Minio      Minio      `yaml:"minio"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env-required:"true"`
	Port     string `yaml:"port" env-required:"true"`
	Username string `yaml:"username" env-required:"true"`
	Password string `yaml:"password" env-required:"true"`
	Database string `yaml:"database" env-required:"true"`
}

// SQLServer is the legacy setup database reachable through database/sql.
// Only the store_setup resource lives there.
type SQLServer struct {
	DSN string `yaml:"dsn"`
}

const (
	StoreSetupDriverPool = "pool"
	StoreSetupDriverSQL  = "sql"
)

// StoreSetup selects which persistence path serves the store_setup
// resource: "pool" (shared pgx pool) or "sql" (legacy SQL client).
type StoreSetup struct {
	Driver string `yaml:"driver" env-default:"pool"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	StaticURL        string        `yaml:"static_url" env-required:"true"`
}

type Minio struct {
	Endpoint        string `yaml:"endpoint" env-required:"true"`
	AccessKeyID     string `yaml:"access_key_id" env-required:"true"`
	SecretAccessKey string `yaml:"secret_access_key" env-required:"true"`
	UseSSL          bool   `yaml:"use_ssl"`
	ProductsBucket  string `yaml:"products_bucket" env-default:"products"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
