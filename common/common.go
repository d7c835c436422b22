package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

const (
	productionProject  = "me-doit-intl-com"
	developmentProject = "doitintl-cmp-dev"
)

var (
	// ProjectID is the GCP project backing Firestore and Cloud Logging.
	ProjectID string

	// Env is the logical environment name ("production" or "development").
	Env string

	// Production flag indicating if the service runs against the production backend.
	Production bool

	// IsLocalhost flag indicating if the service runs on localhost.
	IsLocalhost bool

	// GAEService and GAEVersion identify the App Engine deployment.
	GAEService string
	GAEVersion string

	// RedisAddr is the address of the credentials cache.
	RedisAddr string

	// RedisPassword is optional and empty for local development.
	RedisPassword string
)

func init() {
	initEnvVariables()
}

func initEnvVariables() {
	IsLocalhost = gin.Mode() != gin.ReleaseMode

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")

	if ProjectID == "" {
		if !IsLocalhost {
			log.Fatalln("environment variable GOOGLE_CLOUD_PROJECT is not set")
		}

		ProjectID = developmentProject
	}
	GAEService = GetEnv("GAE_SERVICE", "cmp-data-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	RedisAddr = GetEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = GetEnv("REDIS_PASSWORD", "")

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}

	if ProjectID == productionProject && !IsLocalhost {
		Env = "production"
		Production = true
	} else {
		Env = "development"
		Production = false
	}
}

// GetEnv returns the value of the environment variable named by key,
// or fallback when the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
