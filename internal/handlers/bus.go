package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	dom "github.com/zenithpay/travel-api/internal/domain"
	"github.com/zenithpay/travel-api/internal/dto"
	"github.com/zenithpay/travel-api/internal/service"
)

type BusHandler struct {
	svc *service.BusService
}

func NewBusHandler(svc *service.BusService) *BusHandler {
	return &BusHandler{svc: svc}
}

// List godoc
// @Summary      List all buses
// @Tags         buses
// @Produce      json
// @Success      200  {array}  dto.BusResponse
// @Router       /buses [get]
func (h *BusHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.BusResponse, len(list))
	for i, b := range list {
		out[i] = busToResponse(b)
	}
	c.JSON(http.StatusOK, out)
}

// GetByID godoc
// @Summary      Get a bus by ID
// @Tags         buses
// @Produce      json
// @Param        id   path      int  true  "Bus ID"
// @Success      200  {object}  dto.BusResponse
// @Failure      404  {object}  map[string]string
// @Router       /buses/{id} [get]
func (h *BusHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, busToResponse(b))
}

// Create godoc
// @Summary      Add a bus
// @Tags         buses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.BusRequest  true  "Bus body"
// @Success      201   {object}  dto.BusResponse
// @Failure      400   {object}  map[string]string
// @Router       /buses [post]
func (h *BusHandler) Create(c *gin.Context) {
	var req dto.BusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Create(c.Request.Context(), busFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, busToResponse(b))
}

// Update godoc
// @Summary      Update a bus
// @Tags         buses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Bus ID"
// @Param        body  body      dto.BusRequest  true  "Bus body"
// @Success      200   {object}  dto.BusResponse
// @Failure      404   {object}  map[string]string
// @Router       /buses/{id} [put]
func (h *BusHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.BusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Update(c.Request.Context(), id, busFromRequest(req))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, busToResponse(b))
}

// Delete godoc
// @Summary      Delete a bus
// @Tags         buses
// @Security     BearerAuth
// @Param        id   path  int  true  "Bus ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /buses/{id} [delete]
func (h *BusHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func busFromRequest(req dto.BusRequest) dom.Bus {
	return dom.Bus{
		BusName:  req.BusName,
		Route:    req.Route,
		BusType:  req.BusType,
		Capacity: req.Capacity,
	}
}

func busToResponse(b dom.Bus) dto.BusResponse {
	return dto.BusResponse{
		ID:       b.ID,
		BusName:  b.BusName,
		Route:    b.Route,
		BusType:  b.BusType,
		Capacity: b.Capacity,
	}
}

func respondCatalogError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
