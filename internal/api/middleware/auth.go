package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portfolio-cms/portfolio-api/internal/core/domain"
	"github.com/portfolio-cms/portfolio-api/internal/core/ports"
)

// principalKey is the echo context key the verified principal is stored
// under. Handlers read it through GetPrincipal.
const principalKey = "auth.principal"

// Authenticator resolves a request's bearer token to a principal. Tokens
// are self-contained, but the subject is re-resolved against the user
// store on every authenticated request so that deleting a user invalidates
// outstanding tokens.
type Authenticator struct {
	codec ports.TokenCodec
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAuthenticator(codec ports.TokenCodec, users ports.UserRepository, log zerolog.Logger) *Authenticator {
	return &Authenticator{codec: codec, users: users, log: log}
}

// Principal extracts and verifies the bearer token. It returns (nil, nil)
// for an anonymous request (no Authorization header or no Bearer scheme),
// and a 401 *echo.HTTPError when a presented token fails verification or
// its subject no longer exists.
func (a *Authenticator) Principal(c echo.Context) (*domain.Principal, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, nil
	}

	claims, err := a.codec.Parse(parts[1], time.Now())
	if err != nil {
		// Malformed, bad signature and expired are logged apart but all
		// surface as the same 401.
		a.log.Debug().Err(err).Msg("bearer token rejected")
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	user, err := a.users.FindByUsername(c.Request().Context(), claims.Username)
	if err != nil {
		a.log.Debug().Str("subject", claims.Username).Msg("token subject no longer exists")
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	return &domain.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// Guard enforces the authorization policy: it authenticates the request
// when the matched rule demands it and stores the principal in the echo
// context. Public routes never fail on a bad token; the invalid header is
// treated as anonymous.
func Guard(policy *Policy, auth *Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := policy.Decide(c.Request().Method, c.Request().URL.Path)

			if rule.Access == AccessPublic {
				// Best-effort: attach a principal when a valid token is
				// present so public handlers can tailor output, but never
				// block the request.
				if principal, err := auth.Principal(c); err == nil && principal != nil {
					c.Set(principalKey, *principal)
				}
				return next(c)
			}

			principal, err := auth.Principal(c)
			if err != nil {
				return err
			}
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if rule.Access == AccessRole && principal.Role != rule.Role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			c.Set(principalKey, *principal)
			return next(c)
		}
	}
}

// GetPrincipal returns the principal attached by Guard, if any.
func GetPrincipal(c echo.Context) (domain.Principal, bool) {
	principal, ok := c.Get(principalKey).(domain.Principal)
	return principal, ok
}
