package common

import (
	"flag"
	"time"

	"github.com/google/uuid"
)

var Version = "v0.1.0"
var StartTime = time.Now().Unix()

var (
	Port          = flag.Int("port", 3000, "the listening port")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
)

var (
	SQLitePath = "data/article-hub.db"
	UploadPath = "upload"
)

// SessionSecret falls back to a random value, which means sessions do not
// survive a restart unless SESSION_SECRET is configured.
var SessionSecret = uuid.New().String()

var (
	JWTSecret        = ""
	JWTRefreshSecret = ""
	AccessTokenTTL   = 24 * time.Hour
	RefreshTokenTTL  = 7 * 24 * time.Hour
)

// Role constants
const (
	RoleCommonUser = 1
	RoleAdminUser  = 10
	RoleRootUser   = 100
)

// Status constants
const (
	UserStatusEnabled  = 1
	UserStatusDisabled = 2
)

var (
	GlobalApiRateLimitNum            = 180
	GlobalApiRateLimitDuration int64 = 3 * 60

	CriticalRateLimitNum            = 20
	CriticalRateLimitDuration int64 = 20 * 60

	RateLimitKeyExpirationDuration = 20 * time.Minute
)

func PrintHelp() {
	println("article-hub " + Version)
	println("Usage: article-hub [--port <port>] [--version] [--help]")
	println("Configuration is read from the environment and from ~/.config/article-hub/config.ini")
}
