package security

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"assetdesk/pkg/models"
	"assetdesk/pkg/roles"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware validates the bearer token and stores the actor identity in
// the request context.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("userID", claims["userID"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// Authorize ensures the actor holds at least the required role. Role policy
// lives entirely at this gateway layer; core operations only see the
// resolved actor.
func Authorize(requiredRole roles.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}
		roleName, ok := roleValue.(string)
		if !ok || !roles.Role(roleName).IsValid() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid role"})
			c.Abort()
			return
		}

		if !roles.Role(roleName).HasPermission(requiredRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorFromContext resolves the authenticated actor set by JWTMiddleware.
func ActorFromContext(c *gin.Context) (models.Actor, error) {
	idValue, exists := c.Get("userID")
	if !exists {
		return models.Actor{}, fmt.Errorf("no authenticated user in context")
	}

	idString, ok := idValue.(string)
	if !ok {
		return models.Actor{}, fmt.Errorf("userID claim is not a string")
	}
	id, err := strconv.Atoi(idString)
	if err != nil {
		return models.Actor{}, fmt.Errorf("userID claim is not numeric: %w", err)
	}

	roleValue, _ := c.Get("role")
	roleName, ok := roleValue.(string)
	if !ok || !roles.Role(roleName).IsValid() {
		return models.Actor{}, fmt.Errorf("missing or invalid role claim")
	}

	return models.Actor{ID: id, Role: roles.Role(roleName)}, nil
}
