package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/core/ports"
)

// DonationHandler handles HTTP requests for donation operations.
type DonationHandler struct {
	service ports.DonationService
}

func NewDonationHandler(service ports.DonationService) *DonationHandler {
	return &DonationHandler{service: service}
}

// List handles GET /v1/donations.
//
// @Summary      List donations with headline totals
// @Tags         donations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listDonationsResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/donations [get]
func (h *DonationHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]donationResponse, 0, len(list.Items))
	for _, d := range list.Items {
		data = append(data, toDonationResponse(d))
	}
	return c.JSON(http.StatusOK, listDonationsResponse{
		Data:          data,
		MonetaryTotal: list.MonetaryTotal,
		InKindCount:   list.InKindCount,
	})
}

// Create handles POST /v1/donations. An omitted date defaults to today.
//
// @Summary      Record a new donation
// @Tags         donations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDonationRequest  true  "Donation details"
// @Success      201   {object}  donationResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/donations [post]
func (h *DonationHandler) Create(c echo.Context) error {
	var req createDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
		}
		date = parsed
	}

	d, err := h.service.Create(c.Request().Context(), ports.CreateDonationInput{
		DonorName:   req.DonorName,
		Amount:      req.Amount,
		Description: req.Description,
		Type:        domain.DonationType(req.Type),
		Date:        date,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toDonationResponse(*d))
}
