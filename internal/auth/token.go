package auth

import (
	"strconv"
	"time"

	"github.com/JuanDavidBarr/TalentoPlus/internal/config"
	"github.com/JuanDavidBarr/TalentoPlus/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs session tokens carrying the employee identity claims.
type TokenIssuer interface {
	Issue(empl *employee.Employee) (token string, expiresAt time.Time, err error)
}

type jwtIssuer struct {
	cfg config.JWTConfig
}

func NewTokenIssuer(cfg config.JWTConfig) TokenIssuer {
	return &jwtIssuer{cfg: cfg}
}

func (i *jwtIssuer) Issue(empl *employee.Employee) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(i.cfg.ExpirationHours) * time.Hour)

	claims := jwt.MapClaims{
		"sub":            strconv.FormatUint(uint64(empl.ID), 10),
		"email":          empl.Email,
		"documentNumber": empl.DocumentNumber,
		"fullName":       empl.FullName(),
		"jti":            uuid.NewString(),
		"iss":            i.cfg.Issuer,
		"aud":            i.cfg.Audience,
		"iat":            now.Unix(),
		"exp":            expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
