package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	dom "github.com/zenithpay/travel-api/internal/domain"
	"github.com/zenithpay/travel-api/internal/dto"
	"github.com/zenithpay/travel-api/internal/service"
)

type TrainHandler struct {
	svc *service.TrainService
}

func NewTrainHandler(svc *service.TrainService) *TrainHandler {
	return &TrainHandler{svc: svc}
}

// List godoc
// @Summary      List all trains
// @Tags         trains
// @Produce      json
// @Success      200  {array}  dto.TrainResponse
// @Router       /trains [get]
func (h *TrainHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.TrainResponse, len(list))
	for i, t := range list {
		out[i] = trainToResponse(t)
	}
	c.JSON(http.StatusOK, out)
}

// GetByID godoc
// @Summary      Get a train by ID
// @Tags         trains
// @Produce      json
// @Param        id   path      int  true  "Train ID"
// @Success      200  {object}  dto.TrainResponse
// @Failure      404  {object}  map[string]string
// @Router       /trains/{id} [get]
func (h *TrainHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainToResponse(t))
}

// Create godoc
// @Summary      Add a train
// @Tags         trains
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.TrainRequest  true  "Train body"
// @Success      201   {object}  dto.TrainResponse
// @Failure      400   {object}  map[string]string
// @Router       /trains [post]
func (h *TrainHandler) Create(c *gin.Context) {
	var req dto.TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	train, err := trainFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), train)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, trainToResponse(t))
}

// Update godoc
// @Summary      Update a train
// @Tags         trains
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Train ID"
// @Param        body  body      dto.TrainRequest  true  "Train body"
// @Success      200   {object}  dto.TrainResponse
// @Failure      404   {object}  map[string]string
// @Router       /trains/{id} [put]
func (h *TrainHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	train, err := trainFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, train)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainToResponse(t))
}

// Delete godoc
// @Summary      Delete a train
// @Tags         trains
// @Security     BearerAuth
// @Param        id   path  int  true  "Train ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /trains/{id} [delete]
func (h *TrainHandler) Delete(c *gin.Context) {
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

func trainFromRequest(req dto.TrainRequest) (dom.Train, error) {
	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return dom.Train{}, err
	}
	return dom.Train{
		TrainName:          req.TrainName,
		TrainNumber:        req.TrainNumber,
		SourceStation:      req.SourceStation,
		DestinationStation: req.DestinationStation,
		DepartureTime:      req.DepartureTime,
		ArrivalTime:        req.ArrivalTime,
		TravelDate:         travelDate,
		Price:              req.Price,
		SeatsAvailable:     req.SeatsAvailable,
	}, nil
}

func trainToResponse(t dom.Train) dto.TrainResponse {
	return dto.TrainResponse{
		ID:                 t.ID,
		TrainName:          t.TrainName,
		TrainNumber:        t.TrainNumber,
		SourceStation:      t.SourceStation,
		DestinationStation: t.DestinationStation,
		DepartureTime:      t.DepartureTime,
		ArrivalTime:        t.ArrivalTime,
		TravelDate:         t.TravelDate,
		Price:              t.Price,
		SeatsAvailable:     t.SeatsAvailable,
	}
}
