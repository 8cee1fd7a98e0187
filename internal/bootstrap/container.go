package bootstrap

import (
	"notes-softdelete/internal/config"
	"notes-softdelete/internal/controller"
	"notes-softdelete/internal/model"
	"notes-softdelete/internal/pkg/logger"
	"notes-softdelete/internal/repository/unitofwork"
	"notes-softdelete/internal/service"
	"notes-softdelete/pkg/softdelete"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NotebookController controller.INotebookController
	NoteController     controller.INoteController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	uowFactory := unitofwork.NewRepositoryFactory(db, model.Relations(),
		softdelete.WithLogger(sysLogger.Zap()),
		softdelete.WithTransaction(cfg.SoftDelete.AtomicCascade),
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.TrashTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.TrashTopic, sysLogger)
	notebookService := service.NewNotebookService(uowFactory, publisherService, sysLogger)
	noteService := service.NewNoteService(uowFactory, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		NotebookController: controller.NewNotebookController(notebookService),
		NoteController:     controller.NewNoteController(noteService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
