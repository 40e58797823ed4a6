package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtCustomClaim is what the fleet API puts in its bearer tokens.
type JwtCustomClaim struct {
	UserID     string   `json:"sub_id"`
	Role       string   `json:"role"`
	ProjectIDs []string `json:"projects"`
	jwt.StandardClaims
}

// CanAccessProject reports whether the token grants the given project. Admin
// tokens see every project.
func (c *JwtCustomClaim) CanAccessProject(projectId string) bool {
	if c == nil {
		return false
	}
	if c.Role == "ADMIN" {
		return true
	}
	for _, id := range c.ProjectIDs {
		if id == projectId {
			return true
		}
	}
	return false
}

func jwtSecret() []byte {
	secret := os.Getenv("API_SECRET")
	if secret == "" {
		return []byte("FleetOps-Secret")
	}
	return []byte(secret)
}

func JwtGenerate(userID string, role string, projectIDs []string, lifespan time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &JwtCustomClaim{
		UserID:     userID,
		Role:       role,
		ProjectIDs: projectIDs,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(lifespan).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	token, err := t.SignedString(jwtSecret())
	if err != nil {
		return "", err
	}

	return token, nil
}

func JwtValidate(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &JwtCustomClaim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("there's a problem with the signing method")
		}
		return jwtSecret(), nil
	})
}
