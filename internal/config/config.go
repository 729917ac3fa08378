package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultDSN = "host=localhost port=5432 dbname=core_ledger user=postgres password=postgres sslmode=disable"
const defaultListenAddr = ":8080"
const defaultMigrationsDir = "migrations"

type Config struct {
	DatabaseDSN    string
	MigrationsDir  string
	ListenAddr     string
	AuthUser       string
	AuthKey        string
	UseMemoryStore bool
}

func Load() (Config, error) {
	// Missing .env is fine; real deployments use plain environment variables.
	_ = godotenv.Load()

	dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if dsn == "" {
		dsn = defaultDSN
	}

	addr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if addr == "" {
		addr = defaultListenAddr
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = defaultMigrationsDir
	}

	useMemory, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("MEMORY_STORE")))

	return Config{
		DatabaseDSN:    dsn,
		MigrationsDir:  migrationsDir,
		ListenAddr:     addr,
		AuthUser:       strings.TrimSpace(os.Getenv("BASIC_AUTH_USER")),
		AuthKey:        strings.TrimSpace(os.Getenv("BASIC_AUTH_KEY")),
		UseMemoryStore: useMemory,
	}, nil
}
