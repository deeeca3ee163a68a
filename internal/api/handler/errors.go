package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/infrastructure/storage"
)

// messageResponse is the error envelope returned on all 4xx/5xx responses.
type messageResponse struct {
	Message string `json:"message"`
}

// respondError maps known domain errors to their HTTP status and user-facing
// message. Unknown errors are returned unchanged so the central error handler
// logs them and renders a 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields are required"})
	case errors.Is(err, domain.ErrUserExists):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "User already exists"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
	case errors.Is(err, domain.ErrSweetNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Sweet not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Insufficient stock"})
	case errors.Is(err, domain.ErrOutOfStock):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Out of stock"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Valid quantity is required"})
	case errors.Is(err, domain.ErrInvalidPrice):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Price must be zero or greater"})
	case errors.Is(err, storage.ErrImageTooLarge), errors.Is(err, storage.ErrUnsupportedImage):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, messageResponse{
			Message: "Database is not available. Please ensure MongoDB is running.",
		})
	}
	return err
}
