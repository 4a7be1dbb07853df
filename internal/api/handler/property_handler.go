package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prsunet/realestate-api/internal/core/domain"
	"github.com/prsunet/realestate-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// Create handles POST /api/properties. The seller is always the
// authenticated caller; a seller field in the payload is ignored.
//
// @Summary      Publish a new property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	callerID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.service.Create(c.Request().Context(), toCreateInput(req, callerID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, property)
}

// List handles GET /api/properties — public, sellers resolved to {name, email}.
//
// @Summary      List all property listings
// @Tags         properties
// @Produce      json
// @Success      200  {array}   propertyResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	details, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(details))
}

// Get handles GET /api/properties/:id — public.
//
// @Summary      Get a property listing by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(detail))
}

// Update handles PUT /api/properties/:id. Only the fields present in the
// payload overwrite stored values; only the listing's seller may update.
//
// @Summary      Update a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to update"
// @Success      200   {object}  updatePropertyResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	callerID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("id"), callerID, toUpdateInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrNotOwner) {
			return echo.NewHTTPError(http.StatusForbidden, "Unauthorized to update this property")
		}
		return err
	}

	return c.JSON(http.StatusOK, updatePropertyResponse{
		Message:  "Property updated successfully",
		Property: property,
	})
}

// Delete handles DELETE /api/properties/:id. Only the listing's seller may
// delete.
//
// @Summary      Delete a property listing
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	callerID, _, err := callerIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, domain.ErrNotOwner) {
			return echo.NewHTTPError(http.StatusForbidden, "Unauthorized to delete this property")
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Property deleted successfully"})
}
