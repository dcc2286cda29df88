package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	basehandler "school_records/internal/api/base/handler"
	"school_records/internal/common"
	"school_records/internal/global"
)

// Claims là payload của token xác thực
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"` // teacher, admin
	jwt.RegisteredClaims
}

// Các role trong hệ thống
const (
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// AuthRequired kiểm tra token Bearer và gắn thông tin người dùng vào context
func AuthRequired() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return basehandler.HandleResponse(c, nil,
				common.NewError(common.ErrCodeAuthTokenInvalid, "Thiếu token xác thực", fiber.StatusUnauthorized, nil))
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil || !token.Valid {
			return basehandler.HandleResponse(c, nil,
				common.NewError(common.ErrCodeAuthTokenInvalid, "Token không hợp lệ hoặc đã hết hạn", fiber.StatusUnauthorized, nil))
		}

		c.Locals("userId", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RequireRole chỉ cho phép các role trong danh sách đi tiếp
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return basehandler.HandleResponse(c, nil, common.ErrPermission("", nil))
	}
}

// CurrentUserID lấy id người dùng đã xác thực từ context
func CurrentUserID(c fiber.Ctx) string {
	id, _ := c.Locals("userId").(string)
	return id
}
