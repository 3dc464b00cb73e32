// Package pages serves the server-rendered HTML views: sign-in form, home
// with leaders summary, players table and player detail.
package pages

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dugout-server-go/internal/domain/roster"
	"dugout-server-go/internal/domain/scout"
	platformerrors "dugout-server-go/internal/platform/errors"
	"dugout-server-go/internal/platform/logging"
)

// Service renders the HTML pages. Everything except the sign-in form sits
// behind the session cookie guard.
type Service struct {
	roster *roster.Service
	scout  scout.Provider
	logger *logging.Logger
}

// NewService creates the pages service.
func NewService(rosterService *roster.Service, scoutProvider scout.Provider, logger *logging.Logger) (*Service, error) {
	if rosterService == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "pages.new", "roster service is required")
	}
	if scoutProvider == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "pages.new", "scout provider is required")
	}

	return &Service{
		roster: rosterService,
		scout:  scoutProvider,
		logger: logger,
	}, nil
}

// Register mounts the page routes. guard is the cookie-session middleware;
// the sign-in form stays public.
func (s *Service) Register(ctx context.Context, engine *gin.Engine, guard gin.HandlerFunc) error {
	engine.GET("/signin", s.handleSignin)

	protected := engine.Group("", guard)
	protected.GET("/", s.handleHome)
	protected.GET("/players", s.handlePlayers)
	protected.GET("/players/:name", s.handlePlayerDetail)

	if s.logger != nil {
		s.logger.InfoTag("HTTP", "page routes registered")
	}
	return nil
}

func (s *Service) handleSignin(c *gin.Context) {
	c.HTML(http.StatusOK, "signin.tmpl", gin.H{
		"Title": "Sign in",
	})
}

func (s *Service) handleHome(c *gin.Context) {
	leaders, err := s.roster.Leaders(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Title":   "Dugout",
		"Leaders": leaders,
	})
}

func (s *Service) handlePlayers(c *gin.Context) {
	sortParam := c.DefaultQuery("sort", string(roster.FieldHomeRuns))
	field, err := roster.ParseStatField(sortParam)
	if err != nil {
		field = roster.FieldHomeRuns
		sortParam = string(field)
	}

	players, err := s.roster.SortedPlayers(c.Request.Context(), field)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "players.tmpl", gin.H{
		"Title":   "Players",
		"Players": players,
		"Sort":    sortParam,
	})
}

func (s *Service) handlePlayerDetail(c *gin.Context) {
	name := c.Param("name")

	player, err := s.roster.PlayerByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, roster.ErrPlayerNotFound) {
			c.HTML(http.StatusNotFound, "error.tmpl", gin.H{
				"Title":   "Not found",
				"Message": "No player named " + name + ".",
			})
			return
		}
		s.renderError(c, err)
		return
	}

	description, err := s.scout.Describe(c.Request.Context(), *player)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorTag("SCOUT", "description failed for %s: %v", player.Name, err)
		}
		description = scout.FallbackDescription(*player)
	}

	c.HTML(http.StatusOK, "player_detail.tmpl", gin.H{
		"Title":       player.Name,
		"Player":      player,
		"Description": description,
	})
}

func (s *Service) renderError(c *gin.Context, err error) {
	if s.logger != nil {
		s.logger.ErrorTag("HTTP", "page render failed: %v", err)
	}
	status := http.StatusInternalServerError
	message := "Something went wrong."
	if platformerrors.HasKind(err, platformerrors.KindUpstream) {
		status = http.StatusBadGateway
		message = "The stats service is unavailable right now."
	}
	c.HTML(status, "error.tmpl", gin.H{
		"Title":   "Error",
		"Message": message,
	})
}
