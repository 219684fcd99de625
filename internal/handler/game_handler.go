package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"gamecatalog/backend/internal/catalog"
	"gamecatalog/backend/internal/metrics"
	"gamecatalog/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GameService is the catalog behaviour the game routes need.
type GameService interface {
	List() []models.Game
	Get(id int64) (models.Game, error)
	Create(in catalog.GameInput) (models.Game, error)
	Update(id int64, in catalog.GameInput) (models.Game, error)
	Delete(id int64) error
}

// GameHandler serves the /games routes.
type GameHandler struct {
	service GameService
	metrics *metrics.Metrics
}

// NewGameHandler creates a GameHandler. m may be nil.
func NewGameHandler(service GameService, m *metrics.Metrics) *GameHandler {
	return &GameHandler{service: service, metrics: m}
}

// parseID reads the :id path parameter. Anything that is not an integer
// can't name a record, so it is reported as not found.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, catalog.ErrNotFound
	}
	return id, nil
}

// bindInput decodes the request body. An empty body is an empty input; the
// body must hold exactly one JSON value.
func bindInput(c *gin.Context) (catalog.GameInput, error) {
	var input catalog.GameInput
	data, err := c.GetRawData()
	if err != nil {
		return catalog.GameInput{}, &catalog.MalformedError{Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return input, nil
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return catalog.GameInput{}, &catalog.MalformedError{Err: err}
	}
	return input, nil
}

// GetGames godoc
// @Summary      List games
// @Description  Returns every game, most recently created first.
// @Tags         games
// @Produce      json
// @Success      200  {array}   models.Game
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game ID"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, "get", err)
		return
	}

	game, err := h.service.Get(id)
	if err != nil {
		h.writeError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Validates the payload and stores it at the front of the catalog.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body      catalog.GameInput true "Game Info"
// @Success      201   {object}  models.Game
// @Failure      400   {object}  ValidationErrorResponse
// @Router       /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	input, err := bindInput(c)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}

	game, err := h.service.Create(input)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces only the fields present in the payload.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Game ID"
// @Param        input body      catalog.GameInput true  "Fields to change"
// @Success      200   {object}  models.Game
// @Failure      400   {object}  ValidationErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}

	// Existence is checked before the body so a missing game is always a 404.
	if _, err := h.service.Get(id); err != nil {
		h.writeError(c, "update", err)
		return
	}

	input, err := bindInput(c)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}

	game, err := h.service.Update(id, input)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Param        id path int true "Game ID"
// @Success      204
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeError(c, "delete", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.writeError(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}
