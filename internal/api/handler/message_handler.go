package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/response"
	"Agora/internal/pkg/util"
	"Agora/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageSvc service.MessageService
}

func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageSvc: messageSvc,
	}
}

func (s *MessageHandler) Send(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.MessageSendDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	msg, err := s.messageSvc.Send(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.CreatedAt(c, "", msg)
}

func (s *MessageHandler) Inbox(c *gin.Context) {
	userID := c.GetUint64("user_id")
	messages, err := s.messageSvc.Inbox(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *MessageHandler) Conversation(c *gin.Context) {
	userID := c.GetUint64("user_id")
	peerID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	messages, err := s.messageSvc.Conversation(c.Request.Context(), userID, peerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *MessageHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	messageID := c.Param("message_id")

	if err := s.messageSvc.MarkRead(c.Request.Context(), userID, messageID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
