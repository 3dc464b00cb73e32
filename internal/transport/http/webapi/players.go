package webapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dugout-server-go/internal/domain/roster"
	"dugout-server-go/internal/domain/scout"
	platformerrors "dugout-server-go/internal/platform/errors"
	"dugout-server-go/internal/platform/logging"
	httptransport "dugout-server-go/internal/transport/http"
)

// PlayersService is the HTTP transport for the roster and description
// endpoints.
type PlayersService struct {
	roster *roster.Service
	scout  scout.Provider
	logger *logging.Logger
}

// NewPlayersService creates the players HTTP service.
func NewPlayersService(rosterService *roster.Service, scoutProvider scout.Provider, logger *logging.Logger) (*PlayersService, error) {
	if rosterService == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "webapi.players", "roster service is required")
	}
	if scoutProvider == nil {
		return nil, platformerrors.New(platformerrors.KindConfig, "webapi.players", "scout provider is required")
	}

	return &PlayersService{
		roster: rosterService,
		scout:  scoutProvider,
		logger: logger,
	}, nil
}

// Register mounts the roster routes on the authenticated API group.
func (s *PlayersService) Register(ctx context.Context, secured *gin.RouterGroup) error {
	secured.GET("/baseball", s.handlePlayers)
	secured.GET("/baseball/leaders", s.handleLeaders)
	secured.GET("/players/:name/description", s.handleDescription)

	if s.logger != nil {
		s.logger.InfoTag("HTTP", "roster routes registered")
	}
	return nil
}

func (s *PlayersService) handlePlayers(c *gin.Context) {
	sortParam := c.DefaultQuery("sort", string(roster.FieldHomeRuns))
	field, err := roster.ParseStatField(sortParam)
	if err != nil {
		httptransport.RespondError(c, http.StatusBadRequest, "unknown sort field: "+sortParam, nil)
		return
	}

	players, err := s.roster.SortedPlayers(c.Request.Context(), field)
	if err != nil {
		s.respondRosterError(c, err)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, players, "")
}

func (s *PlayersService) handleLeaders(c *gin.Context) {
	leaders, err := s.roster.Leaders(c.Request.Context())
	if err != nil {
		s.respondRosterError(c, err)
		return
	}
	httptransport.RespondSuccess(c, http.StatusOK, leaders, "")
}

// descriptionResponse pairs a player with their generated description.
type descriptionResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *PlayersService) handleDescription(c *gin.Context) {
	name := c.Param("name")

	player, err := s.roster.PlayerByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, roster.ErrPlayerNotFound) {
			httptransport.RespondError(c, http.StatusNotFound, "player not found", nil)
			return
		}
		s.respondRosterError(c, err)
		return
	}

	description, err := s.scout.Describe(c.Request.Context(), *player)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorTag("SCOUT", "description failed for %s: %v", player.Name, err)
		}
		description = scout.FallbackDescription(*player)
	}

	httptransport.RespondSuccess(c, http.StatusOK, descriptionResponse{
		Name:        player.Name,
		Description: description,
	}, "")
}

func (s *PlayersService) respondRosterError(c *gin.Context, err error) {
	if s.logger != nil {
		s.logger.ErrorTag("ROSTER", "request failed: %v", err)
	}
	if platformerrors.HasKind(err, platformerrors.KindUpstream) {
		httptransport.RespondError(c, http.StatusBadGateway, "stats service unavailable", nil)
		return
	}
	httptransport.RespondError(c, http.StatusInternalServerError, "internal error", nil)
}
