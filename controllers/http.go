package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// memberKey is where the auth middleware parks the verified member.
const memberKey = "verifiedMember"

func SetCurrentMember(c *gin.Context, member *models.Member) {
	c.Set(memberKey, member)
}

// CurrentMember returns the member resolved by the auth middleware, nil on
// unprotected routes.
func CurrentMember(c *gin.Context) *models.Member {
	v, ok := c.Get(memberKey)
	if !ok {
		return nil
	}
	member, _ := v.(*models.Member)
	return member
}

// respondError turns any error into the single wire error kind. Unexpected
// errors become a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	var httpErr *models.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, httpErr)
		return
	}
	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError,
		models.NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred"))
}

// validationError converts gin binding failures into the 422 field list.
func validationError(err error) *models.HTTPError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, models.FieldError{
				Field:   fe.Field(),
				Message: "failed on " + fe.Tag(),
			})
		}
		return models.NewValidationError(fields)
	}
	return models.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondError(c, models.NewHTTPError(http.StatusBadRequest, "Invalid id"))
		return 0, false
	}
	return uint(id), true
}
