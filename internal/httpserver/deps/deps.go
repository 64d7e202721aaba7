package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/schemehub/schemehub/internal/auth"
	"github.com/schemehub/schemehub/internal/bookmarks"
	"github.com/schemehub/schemehub/internal/catalog"
	"github.com/schemehub/schemehub/internal/chatbot"
	"github.com/schemehub/schemehub/internal/logger"
	"github.com/schemehub/schemehub/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	DefaultLang string // language used when a request omits ?lang

	Catalog       *catalog.Catalog   // in-memory scheme snapshot
	ReloadTrigger chan struct{}      // channel to trigger manual catalog reload
	Chatbot       *chatbot.Responder // chatbot over the catalog

	Users     store.UserStore    // user persistence
	Bookmarks *bookmarks.Service // bookmark operations over the store
	Tokens    *auth.TokenIssuer  // JWT issue/verify

	RedisClient *redis.Client // for readiness pings only

	RateLimitBurst  int  // token-bucket burst on auth endpoints
	RateLimitPerMin int  // refill per IP per minute
	TrustProxy      bool // true if running behind a trusted reverse proxy
}
