package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

type Role string

const (
	// RoleCashier владелец кассы: открывает, пополняет и закрывает свою кассу.
	RoleCashier Role = "cashier"
	// RoleSupervisor согласует и отклоняет расхождения, проводит ручные корректировки.
	RoleSupervisor Role = "supervisor"
	// RoleIntegration внешние системы расходов и доходов, проводящие подтвержденные движения.
	RoleIntegration Role = "integration"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCashier, RoleSupervisor, RoleIntegration:
		return true
	default:
		return false
	}
}

type UserClaims struct {
	jwt.RegisteredClaims
	ID   int64
	Role Role
}

func GenerateUserJWT(id int64, role Role, expire time.Duration, key []byte) (string, error) {
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ID:   id,
		Role: role,
	}
	token, err := generateJWT(userClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %w", err)
	}
	return token, nil
}

// ValidateUserJWT проверяет подпись и срок действия токена. Токен с неизвестной ролью недействителен.
func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := validateJWT(tokenString, new(UserClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if claims.ID <= 0 || !claims.Role.IsValid() {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
