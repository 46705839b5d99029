package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable invalid")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	dbDriverEnvKey      = "DB_DRIVER"
	jwtSecretEnvKey     = "JWT_SECRET"
	sessionTTLEnvKey    = "SESSION_TTL_HOURS"
	logLevelEnvKey      = "LOG_LEVEL"
	cookieSecureEnvKey  = "COOKIE_SECURE"
	adminUsernameEnvKey = "ADMIN_USERNAME"
	adminEmailEnvKey    = "ADMIN_EMAIL"
	adminPasswordEnvKey = "ADMIN_PASSWORD"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Admin struct {
	Username string
	Email    string
	Password string
}

type App struct {
	Port            string
	DBDriver        string
	DBConnectionURL string
	JWTSecret       string
	SessionTTL      time.Duration
	LogLevel        string
	CookieSecure    bool
	// Admin is nil unless all three ADMIN_* variables are set.
	Admin *Admin
}

// NewApp loads the optional env files (".env" when none are given) and
// builds the application configuration from the environment.
func NewApp(envFiles ...string) (App, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load env file: %w", err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	driver := DriverPostgres
	if v, ok := os.LookupEnv(dbDriverEnvKey); ok {
		driver = strings.ToLower(strings.TrimSpace(v))
	}
	if driver != DriverPostgres && driver != DriverSQLite {
		return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, dbDriverEnvKey, driver)
	}

	ttl := 24 * time.Hour
	if v, ok := os.LookupEnv(sessionTTLEnvKey); ok {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, sessionTTLEnvKey, v)
		}
		ttl = time.Duration(hours) * time.Hour
	}

	logLevel := "info"
	if v, ok := os.LookupEnv(logLevelEnvKey); ok {
		logLevel = v
	}

	cookieSecure := false
	if v, ok := os.LookupEnv(cookieSecureEnvKey); ok {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return App{}, fmt.Errorf("%w: %s=%q", errEnvVarInvalid, cookieSecureEnvKey, v)
		}
		cookieSecure = secure
	}

	return App{
		Port:            port,
		DBDriver:        driver,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		SessionTTL:      ttl,
		LogLevel:        logLevel,
		CookieSecure:    cookieSecure,
		Admin:           lookupAdmin(),
	}, nil
}

func lookupAdmin() *Admin {
	username, okUser := os.LookupEnv(adminUsernameEnvKey)
	email, okEmail := os.LookupEnv(adminEmailEnvKey)
	password, okPass := os.LookupEnv(adminPasswordEnvKey)
	if !okUser || !okEmail || !okPass {
		return nil
	}
	return &Admin{
		Username: username,
		Email:    email,
		Password: password,
	}
}
