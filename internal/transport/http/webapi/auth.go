// Package webapi carries the JSON API services: authentication and the
// baseball roster endpoints.
package webapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dugout-server-go/internal/domain/auth"
	"dugout-server-go/internal/domain/auth/model"
	platformerrors "dugout-server-go/internal/platform/errors"
	"dugout-server-go/internal/platform/logging"
	httptransport "dugout-server-go/internal/transport/http"
)

const (
	// SessionCookie is the HttpOnly cookie that carries the session token
	// for server-rendered pages.
	SessionCookie = "dugout_session"

	// identityKey is the gin context key holding the resolved Identity.
	identityKey = "auth.identity"
)

// AuthService is the HTTP transport for credential login and sessions.
type AuthService struct {
	provider auth.Provider
	issuer   *auth.TokenIssuer
	logger   *logging.Logger
}

// NewAuthService creates the auth HTTP service.
func NewAuthService(provider auth.Provider, issuer *auth.TokenIssuer, logger *logging.Logger) (*AuthService, error) {
	if provider == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "webapi.auth", "auth provider is required")
	}
	if issuer == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "webapi.auth", "token issuer is required")
	}

	return &AuthService{
		provider: provider,
		issuer:   issuer,
		logger:   logger,
	}, nil
}

// Register mounts the auth routes. Login is public, the rest sit behind the
// session middleware.
func (s *AuthService) Register(ctx context.Context, public, secured *gin.RouterGroup) error {
	public.POST("/auth/login", s.handleLogin)
	secured.POST("/auth/logout", s.handleLogout)
	secured.GET("/auth/profile", s.handleProfile)

	if s.logger != nil {
		s.logger.InfoTag("HTTP", "auth routes registered")
	}
	return nil
}

// loginResponse is the payload returned on a successful login.
type loginResponse struct {
	Token string          `json:"token"`
	User  *model.Identity `json:"user"`
}

func (s *AuthService) handleLogin(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	identity, err := s.provider.Authenticate(c.Request.Context(), creds)
	if err != nil {
		if platformerrors.HasKind(err, platformerrors.KindStorage) {
			if s.logger != nil {
				s.logger.ErrorTag("AUTH", "credential store failure: %v", err)
			}
			httptransport.RespondError(c, http.StatusInternalServerError, "authentication unavailable", nil)
			return
		}
		// Deliberately the same message for unknown user and bad password.
		httptransport.RespondError(c, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}

	token, err := s.issuer.Issue(identity)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorTag("AUTH", "token issue failed for %s: %v", identity.Username, err)
		}
		httptransport.RespondError(c, http.StatusInternalServerError, "authentication unavailable", nil)
		return
	}

	maxAge := int(s.issuer.TTL().Seconds())
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)

	if s.logger != nil {
		s.logger.InfoTag("AUTH", "user %s signed in", identity.Username)
	}
	httptransport.RespondSuccess(c, http.StatusOK, loginResponse{Token: token, User: identity}, "signed in")
}

func (s *AuthService) handleLogout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	httptransport.RespondSuccess(c, http.StatusOK, nil, "signed out")
}

func (s *AuthService) handleProfile(c *gin.Context) {
	identity, ok := IdentityFrom(c)
	if !ok {
		httptransport.RespondError(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, identity, "")
}

// Middleware authenticates API requests from the Bearer header or the
// session cookie and stores the identity in the gin context.
func (s *AuthService) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := s.resolveRequest(c)
		if err != nil {
			httptransport.RespondError(c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// PageGuard authenticates server-rendered page requests from the session
// cookie, redirecting to the sign-in form instead of returning JSON.
func (s *AuthService) PageGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := s.resolveRequest(c)
		if err != nil {
			c.Redirect(http.StatusFound, "/signin")
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func (s *AuthService) resolveRequest(c *gin.Context) (*model.Identity, error) {
	token := bearerToken(c)
	if token == "" {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			return nil, model.ErrInvalidToken
		}
		token = cookie
	}
	if token == "" {
		return nil, model.ErrInvalidToken
	}
	return s.issuer.Resolve(token)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IdentityFrom returns the authenticated identity stored by the middleware.
func IdentityFrom(c *gin.Context) (*model.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*model.Identity)
	if !ok {
		return nil, false
	}
	return identity, true
}
