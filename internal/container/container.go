package container

import (
	app "recycle-bot/internal/application"
	"recycle-bot/internal/domain/mapper"
	"recycle-bot/internal/domain/port"
)

type Container struct {
	UserService           *app.UserService
	ClassificationService *app.ClassificationService
}

func New(userRepo port.UserRepository, classifier port.ImageClassifier, m *mapper.Mapper) *Container {
	userService := app.NewUserService(userRepo)
	classificationService := app.NewClassificationService(userService, classifier, m)

	return &Container{
		UserService:           userService,
		ClassificationService: classificationService,
	}
}
