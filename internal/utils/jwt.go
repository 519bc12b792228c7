package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	jwtSecret   []byte
	jwtLifetime = 240 * time.Hour
)

// InitJWT 設置簽名密鑰與有效期，必須在生成或解析 token 之前調用
func InitJWT(secret string, expireHours int) {
	jwtSecret = []byte(secret)
	if expireHours > 0 {
		jwtLifetime = time.Duration(expireHours) * time.Hour
	}
}

type Claims struct {
	UserID uint   `json:"user_id"`
	TapID  string `json:"tap_id"`
	jwt.StandardClaims
}

// GenerateToken 生成一個新的 JWT token
func GenerateToken(userID uint, tapID string) (string, error) {
	nowTime := time.Now()
	expireTime := nowTime.Add(jwtLifetime)

	claims := Claims{
		UserID: userID,
		TapID:  tapID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(jwtSecret)
}

// ParseToken 解析和驗證 JWT token
func ParseToken(token string) (*Claims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*Claims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	return nil, err
}
