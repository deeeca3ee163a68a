package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// SweetHandler handles HTTP requests for inventory operations.
type SweetHandler struct {
	service ports.SweetService
	images  ports.ImageStore
}

func NewSweetHandler(service ports.SweetService, images ports.ImageStore) *SweetHandler {
	return &SweetHandler{service: service, images: images}
}

// List handles GET /api/sweets.
//
// @Summary      List all sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   sweetResponse
// @Failure      401  {object}  messageResponse
// @Failure      503  {object}  messageResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toSweetListResponse(sweets))
}

// Create handles POST /api/sweets (admin only, multipart form).
//
// @Summary      Create a new sweet
// @Tags         sweets
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name      formData  string  true   "Sweet name"
// @Param        category  formData  string  true   "Category"
// @Param        price     formData  number  true   "Price (>= 0)"
// @Param        quantity  formData  integer true   "Initial stock (>= 0)"
// @Param        image     formData  file    false  "Image (jpeg/png/gif/webp, max 5MB)"
// @Success      201  {object}  sweetResponse
// @Failure      400  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      503  {object}  messageResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields are required"})
	}

	imageRef, err := h.saveImage(c)
	if err != nil {
		return respondError(c, err)
	}

	sweet, err := h.service.Create(c.Request().Context(), toCreateInput(req, imageRef))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// Update handles PUT /api/sweets/:id (admin only, partial multipart form).
//
// @Summary      Update a sweet
// @Tags         sweets
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      string  true   "Sweet id"
// @Param        name      formData  string  false  "Sweet name"
// @Param        category  formData  string  false  "Category"
// @Param        price     formData  number  false  "Price (>= 0)"
// @Param        quantity  formData  integer false  "Stock (>= 0)"
// @Param        image     formData  file    false  "Replacement image"
// @Success      200  {object}  sweetResponse
// @Failure      404  {object}  messageResponse
// @Failure      503  {object}  messageResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	imageRef, err := h.saveImage(c)
	if err != nil {
		return respondError(c, err)
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req, imageRef))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /api/sweets/:id (admin only). Removal is permanent.
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      503  {object}  messageResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted"})
}

// Purchase handles POST /api/sweets/:id/purchase. Any authenticated user may
// purchase; quantity defaults to 1.
//
// @Summary      Purchase a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true   "Sweet id"
// @Param        body  body      purchaseRequest  false  "Quantity (default 1)"
// @Success      200  {object}  sweetResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      503  {object}  messageResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	sweet, err := h.service.Purchase(c.Request().Context(), c.Param("id"), quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Restock handles POST /api/sweets/:id/restock (admin only).
//
// @Summary      Restock a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sweet id"
// @Param        body  body      restockRequest  true  "Quantity to add (> 0)"
// @Success      200  {object}  sweetResponse
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      503  {object}  messageResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}

	sweet, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// saveImage stores the uploaded "image" file if one is attached and returns
// its public reference. Returns "" when the request carries no file.
func (h *SweetHandler) saveImage(c echo.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file attached; the form-level image field (if any) applies.
		return "", nil
	}
	return h.images.Save(file)
}
