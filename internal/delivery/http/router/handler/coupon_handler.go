package handler

import (
	"log/slog"
	"net/http"

	"revcart/internal/delivery/http/response"
	"revcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for promotional-code handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		uc:     uc,
		logger: logger,
	}
}

// ValidateCoupon checks a code against an order amount without consuming a use.
func (h *CouponHandler) ValidateCoupon(c echo.Context) error {
	var input usecase.ValidateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Validate(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Coupon is valid")
}

// CreateCoupon adds a promotional code. Admin only.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var input usecase.CreateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	coupon, err := h.uc.CreateCoupon(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created successfully")
}

// DeactivateCoupon turns a code off. Admin only.
func (h *CouponHandler) DeactivateCoupon(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Coupon code is required")
	}

	if err := h.uc.DeactivateCoupon(c.Request().Context(), code); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coupon deactivated"}, "Coupon deactivated")
}

// ListCoupons returns every coupon. Admin only.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	coupons, err := h.uc.ListCoupons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "Coupons retrieved successfully")
}
