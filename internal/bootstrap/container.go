package bootstrap

import (
	"openai-chatbot-be/internal/config"
	"openai-chatbot-be/internal/controller"
	"openai-chatbot-be/internal/pkg/logger"
	"openai-chatbot-be/internal/pkg/serverutils"
	"openai-chatbot-be/internal/repository/unitofwork"
	"openai-chatbot-be/internal/service"
	"openai-chatbot-be/pkg/llm/openai"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController         controller.IChatController
	ConversationController controller.IConversationController

	// Middleware that needs wired dependencies
	ErrorHandler fiber.Handler

	// Exposed for shutdown flushing
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	llmProvider := openai.NewOpenAIProvider(cfg.OpenAI.APIKey)

	conversationService := service.NewConversationService(uowFactory, sysLogger)
	chatService := service.NewChatService(
		conversationService,
		llmProvider,
		cfg.OpenAI.Model,
		sysLogger,
	)

	return &Container{
		ChatController:         controller.NewChatController(chatService),
		ConversationController: controller.NewConversationController(conversationService),
		ErrorHandler:           serverutils.ErrorHandlerMiddleware(sysLogger),
		Logger:                 sysLogger,
	}
}
