package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dom "github.com/zenithpay/travel-api/internal/domain"
	"github.com/zenithpay/travel-api/internal/dto"
	"github.com/zenithpay/travel-api/internal/service"
)

type HotelHandler struct {
	svc *service.HotelService
}

func NewHotelHandler(svc *service.HotelService) *HotelHandler {
	return &HotelHandler{svc: svc}
}

// List godoc
// @Summary      List hotels, optionally filtered by location
// @Tags         hotels
// @Produce      json
// @Param        location  query     string  false  "Location filter"
// @Success      200       {array}   dto.HotelResponse
// @Router       /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("location"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.HotelResponse, len(list))
	for i, hotel := range list {
		out[i] = hotelToResponse(hotel)
	}
	c.JSON(http.StatusOK, out)
}

// GetByID godoc
// @Summary      Get a hotel by ID
// @Tags         hotels
// @Produce      json
// @Param        id   path      int  true  "Hotel ID"
// @Success      200  {object}  dto.HotelResponse
// @Failure      404  {object}  map[string]string
// @Router       /hotels/{id} [get]
func (h *HotelHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	hotel, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotelToResponse(hotel))
}

// Create godoc
// @Summary      Add a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.HotelRequest  true  "Hotel body"
// @Success      201   {object}  dto.HotelResponse
// @Failure      400   {object}  map[string]string
// @Router       /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req dto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hotel, err := h.svc.Create(c.Request.Context(), hotelFromRequest(req))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, hotelToResponse(hotel))
}

// Update godoc
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Hotel ID"
// @Param        body  body      dto.HotelRequest  true  "Hotel body"
// @Success      200   {object}  dto.HotelResponse
// @Failure      404   {object}  map[string]string
// @Router       /hotels/{id} [put]
func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hotel, err := h.svc.Update(c.Request.Context(), id, hotelFromRequest(req))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotelToResponse(hotel))
}

// Delete godoc
// @Summary      Delete a hotel
// @Tags         hotels
// @Security     BearerAuth
// @Param        id   path  int  true  "Hotel ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
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

func hotelFromRequest(req dto.HotelRequest) dom.Hotel {
	return dom.Hotel{
		Name:     req.Name,
		Location: req.Location,
		Price:    req.Price,
		Rating:   req.Rating,
	}
}

func hotelToResponse(h dom.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:       h.ID,
		Name:     h.Name,
		Location: h.Location,
		Price:    h.Price,
		Rating:   h.Rating,
	}
}
