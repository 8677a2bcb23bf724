package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recycle-bot/internal/container"
)

const (
	msgStart = `👋 Привет! Я помогу понять, куда выбросить предмет.

📸 Отправьте фото предмета, и я скажу: в переработку, в обычный мусор или не уверен.

📋 Команды:
/check — распознать предмет
/last — последний результат
/rules — порог и ключевые слова
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото предмета
2️⃣ Бот распознает, что на снимке
3️⃣ Вы получите категорию, уверенность и подсказку

💡 Рекомендации:
• Один предмет в кадре
• Хорошее освещение
• Однотонный фон

📋 Команды:
/check — распознать предмет
/last — последний результат
/clear — забыть последний результат
/rules — порог и ключевые слова
/rules recyclable — ключевые слова одной категории
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото предмета."
	msgCancelled       = "❌ Операция отменена. Отправьте /check для новой проверки."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото предмета."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Распознаю изображение..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgNoResult        = "Пока нет результатов. Отправьте фото предмета."
	msgCleared         = "🧹 Последний результат удалён."
	msgInternalError   = "⚠️ Что-то пошло не так, попробуйте ещё раз."
	msgUnknownCategory = "❓ Неизвестная категория. Доступны: recyclable, landfill, not_sure."
)

// Bot представляет Telegram-бота
type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api: api,
		app: app,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	users := b.app.UserService
	classification := b.app.ClassificationService

	switch msg.Command() {
	case "start":
		if _, err := users.Cancel(ctx, userID, chatID); err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "check":
		if _, err := users.BeginCheck(ctx, userID, chatID); err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendMessage(chatID, msgAwaitingPhoto)

	case "cancel":
		if _, err := users.Cancel(ctx, userID, chatID); err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendMessage(chatID, msgCancelled)

	case "last":
		res, err := classification.LastResult(ctx, userID, chatID)
		if err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendMessage(chatID, renderLastResult(res))

	case "clear":
		if err := classification.ClearResult(ctx, userID, chatID); err != nil {
			b.replyError(chatID, err)
			return
		}
		b.sendMessage(chatID, msgCleared)

	case "rules":
		categories, err := parseRulesArgs(msg.CommandArguments())
		if err != nil {
			b.sendMessage(chatID, msgUnknownCategory)
			return
		}
		b.sendMessage(chatID, renderRules(classification.Mapper(), categories...))

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handlePhoto скачивает фото, распознаёт его и отправляет результат
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	b.sendMessage(chatID, msgProcessing)

	// Берём файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(chatID, msgProcessingError)
		if _, err := b.app.UserService.Cancel(ctx, userID, chatID); err != nil {
			log.Printf("Error resetting user state: %v", err)
		}
		return
	}

	_, out, err := b.app.ClassificationService.ProcessPhoto(ctx, userID, chatID, imageData)
	if err != nil {
		b.replyError(chatID, err)
		return
	}

	log.Printf("Classified photo from user %d: label=%q confidence=%.2f category=%s",
		userID, out.Result.DetectedLabel, out.Result.Confidence, out.Result.Category)

	b.sendMessage(chatID, renderResult(out))
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// replyError логирует ошибку и отправляет пользователю общее сообщение
func (b *Bot) replyError(chatID int64, err error) {
	log.Printf("Error handling chat %d: %v", chatID, err)
	b.sendMessage(chatID, msgInternalError)
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
