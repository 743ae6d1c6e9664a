package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings" // strings normalizes boolean-ish flags
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations.
type Config struct {
    Env          string // application environment (e.g. "dev", "prod")
    Port         string // HTTP port to listen on
    DBUser       string // database username (empty disables the SQL passthrough)
    DBPass       string // database password (optional)
    DBHost       string // database host address
    DBPort       string // database port number
    DBName       string // database name
    JWTSecret    string // secret used to sign JWTs
    AccessTTLMin int    // access token time‑to‑live in minutes
    TestMode     bool   // relaxes owner/admin checks for local demos
    ChatAPIKey   string // OpenRouter API key (empty disables the assistant)
    ChatModel    string // chat completion model identifier
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The database block
// is optional as a whole: when DB_USER is unset the server runs on the
// key-value store alone and the SQL passthrough stays off.
func Load() Config {
    return Config{
        Env:          must("APP_ENV"),                 // environment (dev/test/prod)
        Port:         must("APP_PORT"),                // port to bind the HTTP server
        DBUser:       os.Getenv("DB_USER"),            // database user (empty allowed)
        DBPass:       os.Getenv("DB_PASS"),            // database password (empty allowed)
        DBHost:       envOr("DB_HOST", "localhost"),   // database host
        DBPort:       envOr("DB_PORT", "3306"),        // database port
        DBName:       envOr("DB_NAME", "quickcourt"),  // database name
        JWTSecret:    must("JWT_SECRET"),              // secret used for signing JWTs
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
        TestMode:     boolEnv("TEST_MODE"),            // demo shortcut switches
        ChatAPIKey:   os.Getenv("OPENROUTER_API_KEY"), // assistant key (empty allowed)
        ChatModel:    envOr("CHAT_MODEL", "nvidia/nemotron-nano-9b-v2:free"),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// envOr returns the variable's value or a fallback when unset/empty.
func envOr(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}

// boolEnv treats "true" and "1" (case-insensitive) as on.
func boolEnv(key string) bool {
    v := os.Getenv(key)
    return strings.EqualFold(v, "true") || v == "1"
}
