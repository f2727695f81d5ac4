package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"browser-use/internal/application/port/output"
)

var _ output.ConfigPort = (*EnvService)(nil)

type EnvService struct {
	appEnv string
	loaded []string
}

// NewEnvService loads .env and then .env.$APP_ENV from the working directory.
func NewEnvService() *EnvService {
	return NewEnvServiceFrom(".")
}

// NewEnvServiceFrom loads the env files from dir. Missing files are not an error;
// values already present in the process environment win over .env, and .env.$APP_ENV
// overrides both.
func NewEnvServiceFrom(dir string) *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	svc := &EnvService{appEnv: appEnv}

	base := filepath.Join(dir, ".env")
	if err := godotenv.Load(base); err == nil {
		svc.loaded = append(svc.loaded, base)
	}

	envFile := filepath.Join(dir, fmt.Sprintf(".env.%s", appEnv))
	if err := godotenv.Overload(envFile); err == nil {
		svc.loaded = append(svc.loaded, envFile)
	}

	return svc
}

func (e *EnvService) AppEnv() string {
	return e.appEnv
}

// Loaded lists the env files that were found and applied.
func (e *EnvService) Loaded() []string {
	return e.loaded
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvService) MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("ENV %s is missing", key))
	}
	return val
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultValue
	}
	return val
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
