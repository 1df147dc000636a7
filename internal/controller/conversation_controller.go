package controller

import (
	"openai-chatbot-be/internal/constant"
	"openai-chatbot-be/internal/pkg/apperrors"
	"openai-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type conversationController struct {
	conversationService service.IConversationService
}

func NewConversationController(conversationService service.IConversationService) IConversationController {
	return &conversationController{
		conversationService: conversationService,
	}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *conversationController) List(ctx *fiber.Ctx) error {
	// No auth yet; an absent userId means the sentinel default user.
	userUuid := constant.DefaultUserId
	if raw := ctx.Query("userId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return &apperrors.ValidationError{Fields: map[string]string{
				"userId": "must be a valid UUID",
			}}
		}
		userUuid = parsed
	}

	res, err := c.conversationService.ListForUser(ctx.Context(), userUuid)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *conversationController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return &apperrors.ValidationError{Fields: map[string]string{
			"id": "must be a valid UUID",
		}}
	}

	res, err := c.conversationService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
