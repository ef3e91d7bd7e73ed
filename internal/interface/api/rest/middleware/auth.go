package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"zentrix-api/internal/domain/user"
	"zentrix-api/internal/infrastructure/jwt"
)

const (
	CtxUserRole = "userRole"
	CtxUserID   = "userID"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"message": "Token no proporcionado"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"message": "Formato de token inválido"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"message": "Token inválido o expirado"},
			)
			return
		}

		role, err := user.ParseRole(claims.Role)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"message": "Token inválido o expirado"},
			)
			return
		}
		id, err := strconv.ParseInt(claims.UserID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"message": "Token inválido o expirado"},
			)
			return
		}

		c.Set(CtxUserRole, role)
		c.Set(CtxUserID, user.ID(id))

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r, ok := CallerRole(c); !ok || r != role {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"message": "Acceso denegado"},
			)
			return
		}

		c.Next()
	}
}

// SelfOrAdmin lets admins through and everyone else only for their own id in param.
func SelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := CallerRole(c)
		if role == user.RoleAdmin {
			c.Next()
			return
		}

		id, ok := CallerID(c)
		target, err := strconv.ParseInt(c.Param(param), 10, 64)
		if !ok || err != nil || user.ID(target) != id {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"message": "Acceso denegado"},
			)
			return
		}

		c.Next()
	}
}

func CallerRole(c *gin.Context) (user.Role, bool) {
	v, ok := c.Get(CtxUserRole)
	if !ok {
		return "", false
	}
	r, ok := v.(user.Role)
	return r, ok
}

func CallerID(c *gin.Context) (user.ID, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(user.ID)
	return id, ok
}
