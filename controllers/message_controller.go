package controllers

import (
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

func (mc *MessageController) Send(c *gin.Context) {
	var input services.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	message, err := mc.Messages.Send(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (mc *MessageController) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.MessageUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, validationError(err))
		return
	}

	message, err := mc.Messages.Edit(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (mc *MessageController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := mc.Messages.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

func (mc *MessageController) List(c *gin.Context) {
	messages, err := mc.Messages.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// ListBySender returns every message sent by the member in :id.
func (mc *MessageController) ListBySender(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	messages, err := mc.Messages.ListBySender(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (mc *MessageController) Inbox(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	threads, err := mc.Messages.Inbox(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

func (mc *MessageController) Outbox(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	threads, err := mc.Messages.Outbox(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, threads)
}

// ThreadMessages lists one directed thread, selected by sender and recipient
// query parameters.
func (mc *MessageController) ThreadMessages(c *gin.Context) {
	sender, err1 := strconv.ParseUint(c.Query("sender"), 10, 32)
	recipient, err2 := strconv.ParseUint(c.Query("recipient"), 10, 32)
	if err1 != nil || err2 != nil {
		respondError(c, models.NewHTTPError(http.StatusBadRequest, "Missing sender or recipient"))
		return
	}

	messages, err := mc.Messages.ThreadMessages(uint(sender), uint(recipient))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
