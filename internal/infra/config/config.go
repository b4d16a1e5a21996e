// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration for the whole application.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	GCSBucket string
	GCPCreds  string

	// DATABASE_URL is optional; when empty the Postgres reporting read model
	// is skipped.
	DatabaseURL string

	// GeminiAPIKey wins when set; otherwise GeminiAPIKeySecret names a Secret
	// Manager secret to resolve at startup.
	GeminiAPIKey       string
	GeminiAPIKeySecret string
	GeminiModel        string

	SendGridAPIKey string
	MailFrom       string

	MapsBrowserKey    string
	CORSAllowedOrigin string

	// AuthDisabled short-circuits Firebase auth and runs every request as
	// the fixed development merchant. Never set in production.
	AuthDisabled bool
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "la-rete-del-borgo")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		GCSBucket: os.Getenv("GCS_BUCKET"),
		GCPCreds:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiAPIKeySecret: os.Getenv("GEMINI_API_KEY_SECRET"),
		GeminiModel:        os.Getenv("GEMINI_MODEL"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       getenvDefault("MAIL_FROM", "noreply@laretedelborgo.it"),

		MapsBrowserKey:    os.Getenv("MAPS_BROWSER_KEY"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),

		AuthDisabled: os.Getenv("AUTH_DISABLED") == "1",
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
