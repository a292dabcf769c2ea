package handler

import (
	"log/slog"
	"net/http"
	"time"

	"revcart/internal/delivery/http/response"
	"revcart/internal/domain/entity"
	"revcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// agentView is the outward shape of a delivery agent, without the password hash.
type agentView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAgentView(agent *entity.DeliveryAgent) *agentView {
	if agent == nil {
		return nil
	}

	return &agentView{
		ID:        agent.ID.String(),
		Name:      agent.Name,
		Email:     agent.Email,
		Phone:     agent.Phone,
		Status:    agent.Status.String(),
		CreatedAt: agent.CreatedAt,
	}
}

// DeliveryHandler holds dependencies for courier-roster handlers.
type DeliveryHandler struct {
	uc     usecase.DeliveryUsecase
	logger *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(uc usecase.DeliveryUsecase, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAgents returns every registered agent. Admin only.
func (h *DeliveryHandler) ListAgents(c echo.Context) error {
	agents, err := h.uc.ListAgents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*agentView, 0, len(agents))
	for _, agent := range agents {
		views = append(views, toAgentView(agent))
	}

	return response.Success(c, http.StatusOK, views, "Agents retrieved successfully")
}

// RegisterAgent adds a new agent. Admin only.
func (h *DeliveryHandler) RegisterAgent(c echo.Context) error {
	var input usecase.RegisterAgentInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agent input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	agent, err := h.uc.RegisterAgent(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAgentView(agent), "Agent registered successfully")
}

// UpdateAgentStatus moves an agent between availability states. Admin only.
func (h *DeliveryHandler) UpdateAgentStatus(c echo.Context) error {
	agentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agent ID")
	}

	var input usecase.UpdateAgentStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateAgentStatus(c.Request().Context(), agentID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Agent status updated"}, "Agent status updated")
}
