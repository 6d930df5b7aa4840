package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type HeartController struct {
	Hearts *services.HeartService
}

func NewHeartController(hearts *services.HeartService) *HeartController {
	return &HeartController{Hearts: hearts}
}

func (hc *HeartController) Send(c *gin.Context) {
	var input services.HeartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	heart, err := hc.Hearts.Send(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, heart)
}

// ListForMember returns hearts the member in :id sent or received.
func (hc *HeartController) ListForMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	hearts, err := hc.Hearts.ListForMember(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hearts)
}

func (hc *HeartController) Confirm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	heart, err := hc.Hearts.Confirm(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, heart)
}

func (hc *HeartController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := hc.Hearts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Heart deleted successfully"})
}
