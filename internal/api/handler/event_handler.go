package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-platform/internal/api/metrics"
	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

// EventHandler handles event CRUD. Create, Update, and Delete sit behind the
// auth gate plus the admin check; Get and List are public.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Create(c.Request().Context(), ports.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		CreatedBy:   userID,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	metrics.EventWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "event created"})
}

// List handles GET /events.
//
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}  domain.Event
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	if events == nil {
		events = []domain.Event{}
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:id.
//
// @Summary      Get a single event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	event, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrEventNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, event)
}

// Update handles PUT /events/:id.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Event id"
// @Param        body  body      eventRequest  true  "Event details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Update(c.Request().Context(), id, ports.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrEventNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	metrics.EventWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "event updated"})
}

// Delete handles DELETE /events/:id.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrEventNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	metrics.EventWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "event deleted"})
}

// eventID parses the :id route parameter. The echo.HTTPError it returns is
// rendered by the central error handler.
func eventID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}
	return id, nil
}
