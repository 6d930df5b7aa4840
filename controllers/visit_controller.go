package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type VisitController struct {
	Visits *services.VisitService
}

func NewVisitController(visits *services.VisitService) *VisitController {
	return &VisitController{Visits: visits}
}

func (vc *VisitController) Create(c *gin.Context) {
	var input services.VisitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	visit, err := vc.Visits.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, visit)
}

// ListByVisitor returns all visits made by the member in :id.
func (vc *VisitController) ListByVisitor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	visits, err := vc.Visits.ListByVisitor(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, visits)
}

func (vc *VisitController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := vc.Visits.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visit deleted successfully"})
}
