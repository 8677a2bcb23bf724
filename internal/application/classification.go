package app

import (
	"context"
	"errors"
	"fmt"

	"recycle-bot/internal/domain/entity"
	"recycle-bot/internal/domain/mapper"
	"recycle-bot/internal/domain/port"
)

// errorLabelPrefix префикс метки, которой кодируется сбой распознавания
const errorLabelPrefix = "Error: "

var errClassifierNotConfigured = errors.New("classifier is not configured")

// ClassificationService связывает классификатор изображений и маппер категорий
type ClassificationService struct {
	users      *UserService
	classifier port.ImageClassifier
	mapper     *mapper.Mapper
}

// ClassificationOutput содержит результат и правило, по которому он получен.
type ClassificationOutput struct {
	Result  entity.ClassificationResult
	Rule    mapper.Rule // заполнено, если сработало ключевое слово
	Matched bool
}

// NewClassificationService создаёт сервис распознавания.
// Без маппера используется встроенный набор правил.
func NewClassificationService(users *UserService, classifier port.ImageClassifier, m *mapper.Mapper) *ClassificationService {
	if m == nil {
		m = mapper.NewDefault()
	}
	return &ClassificationService{
		users:      users,
		classifier: classifier,
		mapper:     m,
	}
}

// Mapper возвращает маппер, которым пользуется сервис
func (s *ClassificationService) Mapper() *mapper.Mapper {
	return s.mapper
}

// ClassifyLabel прогоняет готовую метку через маппер
func (s *ClassificationService) ClassifyLabel(label string, confidence float64) ClassificationOutput {
	return s.explain(s.mapper.Classify(label, confidence))
}

// explain восстанавливает ключевое слово, по которому получена категория
func (s *ClassificationService) explain(res entity.ClassificationResult) ClassificationOutput {
	out := ClassificationOutput{Result: res}
	if res.Category != entity.NotSure {
		out.Rule, out.Matched = s.mapper.Match(res.DetectedLabel)
	}
	return out
}

// Predict запускает классификатор. Сбой превращается в метку "Error: ..." с нулевой уверенностью.
func (s *ClassificationService) Predict(ctx context.Context, photo []byte) entity.Prediction {
	if s.classifier == nil {
		return errorPrediction(errClassifierNotConfigured)
	}

	pred, err := s.classifier.Classify(ctx, photo)
	if err != nil {
		return errorPrediction(err)
	}
	if pred == nil {
		return errorPrediction(errors.New("empty prediction"))
	}
	return *pred
}

// ProcessPhoto распознаёт фото, сохраняет результат у пользователя и возвращает его в главное меню.
// Ошибки распознавания не всплывают, ошибкой считается только сбой хранилища.
func (s *ClassificationService) ProcessPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*entity.User, ClassificationOutput, error) {
	if err := s.users.MarkProcessing(ctx, userID, chatID); err != nil {
		return nil, ClassificationOutput{}, err
	}

	pred := s.Predict(ctx, photo)
	out := s.ClassifyLabel(pred.Label, pred.Confidence)

	user, err := s.users.Update(ctx, userID, chatID, func(u *entity.User) {
		u.SetResult(out.Result)
		u.SetState(entity.StateMainMenu)
	})
	if err != nil {
		return nil, ClassificationOutput{}, fmt.Errorf("store result: %w", err)
	}

	return user, out, nil
}

// LastResult возвращает последний результат пользователя вместе с ключевым словом, nil если его нет
func (s *ClassificationService) LastResult(ctx context.Context, userID, chatID int64) (*ClassificationOutput, error) {
	user, err := s.users.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if user.LastResult == nil {
		return nil, nil
	}
	out := s.explain(*user.LastResult)
	return &out, nil
}

// ClearResult сбрасывает последний результат пользователя
func (s *ClassificationService) ClearResult(ctx context.Context, userID, chatID int64) error {
	_, err := s.users.Update(ctx, userID, chatID, func(u *entity.User) {
		u.ClearResult()
	})
	return err
}

func errorPrediction(err error) entity.Prediction {
	return entity.Prediction{Label: errorLabelPrefix + err.Error(), Confidence: 0}
}
