package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberController exposes the member lifecycle and the favorites edges.
type MemberController struct {
	Members   *services.MemberService
	UploadDir string
}

func NewMemberController(members *services.MemberService, uploadDir string) *MemberController {
	return &MemberController{Members: members, UploadDir: uploadDir}
}

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

type uploadedPhoto struct {
	data        []byte
	contentType string
}

// receivePhoto buffers the multipart photo field to the upload dir and reads
// it back. The transient file is removed on success and failure alike.
func (mc *MemberController) receivePhoto(c *gin.Context, required bool) (*uploadedPhoto, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if required {
			return nil, models.NewHTTPError(http.StatusUnprocessableEntity, "Photo is missing")
		}
		return nil, nil
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedPhotoTypes[contentType] {
		return nil, models.NewHTTPError(http.StatusUnprocessableEntity, "Unsupported photo type")
	}

	tmpPath := filepath.Join(mc.UploadDir, "photo-"+uuid.NewString())
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		return nil, err
	}
	defer utils.RemoveFile(tmpPath)

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, err
	}
	return &uploadedPhoto{data: data, contentType: contentType}, nil
}

func (mc *MemberController) Signup(c *gin.Context) {
	var input services.SignupInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	photo, err := mc.receivePhoto(c, true)
	if err != nil {
		respondError(c, err)
		return
	}

	member, err := mc.Members.Signup(c.Request.Context(), input, photo.data, photo.contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (mc *MemberController) List(c *gin.Context) {
	members, err := mc.Members.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (mc *MemberController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	member, err := mc.Members.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (mc *MemberController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	photo, err := mc.receivePhoto(c, false)
	if err != nil {
		respondError(c, err)
		return
	}

	var photoData []byte
	var contentType string
	if photo != nil {
		photoData = photo.data
		contentType = photo.contentType
	}

	member, err := mc.Members.Update(c.Request.Context(), CurrentMember(c), id, input, photoData, contentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (mc *MemberController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := mc.Members.Delete(c.Request.Context(), CurrentMember(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member was deleted"})
}

func (mc *MemberController) Distances(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	distances, err := mc.Members.Distances(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distances)
}

func (mc *MemberController) AddFavorite(c *gin.Context) {
	favoriteID, ok := parseID(c, "favoriteId")
	if !ok {
		return
	}

	member, err := mc.Members.AddFavorite(CurrentMember(c), favoriteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (mc *MemberController) RemoveFavorite(c *gin.Context) {
	favoriteID, ok := parseID(c, "favoriteId")
	if !ok {
		return
	}

	member, err := mc.Members.RemoveFavorite(CurrentMember(c), favoriteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
