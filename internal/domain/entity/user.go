package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото предмета
	StateProcessing    UserState = "processing"     // Распознавание изображения
)

// User представляет пользователя бота
type User struct {
	ID         int64                 // Telegram User ID
	ChatID     int64                 // Telegram Chat ID
	State      UserState             // Текущее состояние пользователя
	LastResult *ClassificationResult // Последний результат, nil если его нет
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// SetResult заменяет последний результат новым
func (u *User) SetResult(result ClassificationResult) {
	u.LastResult = &result
}

// ClearResult сбрасывает последний результат
func (u *User) ClearResult() {
	u.LastResult = nil
}
