package middleware

import (
	"context"

	"booking-service/internal/domain"
	"booking-service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const subjectKey = "sub"

// TokenVerifier answers whether a bearer token is valid. Errors should be
// domain.UnauthorizedError carrying the reason.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}

// Auth rejects requests whose bearer token the verifier does not accept.
// Rejections are handed to onError so the envelope stays consistent.
func Auth(verifier TokenVerifier, onError func(c *gin.Context, err error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			onError(c, domain.UnauthorizedError{Msg: "No authorization header provided"})
			c.Abort()
			return
		}
		token := utils.BearerToken(header)
		if token == "" {
			onError(c, domain.UnauthorizedError{Msg: "Invalid token"})
			c.Abort()
			return
		}

		if err := verifier.VerifyToken(c.Request.Context(), token); err != nil {
			if !domain.IsUnauthorized(err) {
				err = domain.UnauthorizedError{Msg: "Error occurred during authentication", Err: err}
			}
			onError(c, err)
			c.Abort()
			return
		}

		sub := tokenSubject(token)
		c.Set(subjectKey, sub)
		c.Request = c.Request.WithContext(domain.WithSubject(c.Request.Context(), sub))
		c.Next()
	}
}

// tokenSubject reads the sub claim for logging only. The signature was
// already checked by the verifier, so the token is not re-validated here.
func tokenSubject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
