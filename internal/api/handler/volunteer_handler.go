package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

// VolunteerHandler handles HTTP requests for volunteer operations.
type VolunteerHandler struct {
	service ports.VolunteerService
}

func NewVolunteerHandler(service ports.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{service: service}
}

// List handles GET /v1/volunteers.
//
// @Summary      List all volunteers
// @Tags         volunteers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   volunteerResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/volunteers [get]
func (h *VolunteerHandler) List(c echo.Context) error {
	volunteers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]volunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		resp = append(resp, toVolunteerResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// Register handles POST /v1/volunteers.
//
// @Summary      Register a new volunteer
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerVolunteerRequest  true  "Volunteer details"
// @Success      201   {object}  volunteerResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/volunteers [post]
func (h *VolunteerHandler) Register(c echo.Context) error {
	var req registerVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	v, err := h.service.Register(c.Request().Context(), ports.RegisterVolunteerInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Availability: req.Availability,
		Skills:       req.Skills,
		Type:         domain.VolunteerType(req.Type),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toVolunteerResponse(*v))
}
