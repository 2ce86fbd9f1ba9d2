package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"pokelists-mcp/internal/logging"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds CORS configuration
type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string // List of allowed origins, or ["*"] for all
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int // Preflight cache duration in seconds
}

// NewCORSConfigFromEnv creates CORS config from environment variables
func NewCORSConfigFromEnv() *CORSConfig {
	enabled := getEnvBool("CORS_ENABLED", true)

	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "*")
	var origins []string
	if originsStr == "*" {
		origins = []string{"*"}
	} else {
		origins = parseCommaSeparated(originsStr)
	}

	methodsStr := getEnv("CORS_ALLOWED_METHODS", "GET,POST,DELETE,OPTIONS")
	methods := parseCommaSeparated(methodsStr)

	// MCP clients send session and identity headers on every call
	headersStr := getEnv("CORS_ALLOWED_HEADERS", "Origin,Content-Type,Accept,Mcp-Session-Id,Mcp-Protocol-Version,x-user-id")
	headers := parseCommaSeparated(headersStr)

	exposeStr := getEnv("CORS_EXPOSE_HEADERS", "Content-Length,Content-Type,Mcp-Session-Id")
	expose := parseCommaSeparated(exposeStr)

	allowCredentials := getEnvBool("CORS_ALLOW_CREDENTIALS", false)
	maxAge := getEnvInt("CORS_MAX_AGE", 3600) // 1 hour default

	return &CORSConfig{
		Enabled:          enabled,
		AllowedOrigins:   origins,
		AllowedMethods:   methods,
		AllowedHeaders:   headers,
		ExposeHeaders:    expose,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	}
}

// CORS middleware handles Cross-Origin Resource Sharing
func CORS(config *CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.Enabled {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")

		if origin != "" && isOriginAllowed(origin, config.AllowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)

			if config.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}

			if len(config.ExposeHeaders) > 0 {
				c.Header("Access-Control-Expose-Headers", strings.Join(config.ExposeHeaders, ", "))
			}

			// Handle preflight requests
			if c.Request.Method == "OPTIONS" {
				c.Header("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				c.Header("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				c.Header("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))

				logging.Logger.WithFields(map[string]interface{}{
					"client_ip": c.ClientIP(),
					"origin":    origin,
					"method":    c.Request.Method,
				}).Debug("CORS preflight request")

				c.AbortWithStatus(http.StatusNoContent)
				return
			}
		} else if origin != "" {
			logging.Logger.WithFields(map[string]interface{}{
				"client_ip": c.ClientIP(),
				"origin":    origin,
				"path":      c.Request.URL.Path,
			}).Warn("CORS request from disallowed origin")
		}

		c.Next()
	}
}

// isOriginAllowed checks if an origin is in the allowed list
func isOriginAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" {
			return true
		}
		if a == origin {
			return true
		}
		// Support wildcard subdomains like *.example.com
		if strings.HasPrefix(a, "*.") {
			domain := strings.TrimPrefix(a, "*.")
			if strings.HasSuffix(origin, domain) {
				return true
			}
		}
	}
	return false
}
