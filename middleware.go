package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const contextUserID = "user_id"

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5
)

// authRequired valida o bearer token e anexa a identidade do usuário ao
// contexto. Header ausente resulta em 401; token malformado, inválido ou
// expirado em 403.
func authRequired(tokens *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de acesso requerido"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token inválido"})
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token inválido"})
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(contextUserID)
}

// rateLimiter limita requisições por IP usando INCR/EXPIRE no Redis. Sem
// cliente configurado, ou com o Redis indisponível, o middleware deixa passar.
func rateLimiter(client *redis.Client, limit int64, period time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, period)
		}
		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Muitas requisições, tente novamente em instantes"})
			return
		}

		c.Next()
	}
}
