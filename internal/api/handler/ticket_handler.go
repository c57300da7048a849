package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-platform/internal/api/metrics"
	"github.com/eventhub/event-platform/internal/core/domain"
	"github.com/eventhub/event-platform/internal/core/ports"
)

// TicketHandler handles ticket registration and listing for the caller.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

type registerResponse struct {
	Message    string `json:"message"`
	TicketCode string `json:"ticketCode"`
}

// Register handles POST /events/:id/register.
//
// @Summary      Register for an event
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  registerResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id}/register [post]
func (h *TicketHandler) Register(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	ticket, err := h.service.Register(c.Request().Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrEventNotFound.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	metrics.TicketsIssuedTotal.Inc()
	return c.JSON(http.StatusOK, registerResponse{
		Message:    "registered successfully",
		TicketCode: ticket.TicketCode,
	})
}

// ListMine handles GET /tickets — the caller's own tickets.
//
// @Summary      List the caller's tickets
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Ticket
// @Failure      401  {object}  errorResponse
// @Router       /tickets [get]
func (h *TicketHandler) ListMine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tickets, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return c.JSON(http.StatusOK, tickets)
}
