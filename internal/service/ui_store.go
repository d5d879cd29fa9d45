package service

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dongmunseodap/internal/models"
)

// DefaultToastDuration - время показа уведомления до автоматического скрытия
const DefaultToastDuration = 3 * time.Second

// UIState - временное состояние интерфейса
type UIState struct {
	IsLoading         bool             `json:"isLoading"`
	LoadingMessage    string           `json:"loadingMessage"`
	CurrentLocation   *models.Location `json:"currentLocation"`
	IsLocationLoading bool             `json:"isLocationLoading"`
	LocationError     string           `json:"locationError,omitempty"`
	ActiveSheet       string           `json:"activeSheet,omitempty"`
	ShowSafetyModal   bool             `json:"showSafetyModal"`
	ToastMessage      string           `json:"toastMessage,omitempty"`
}

// UIStore хранит состояние интерфейса. Автоскрытие уведомления - отменяемый
// таймер: новое уведомление или HideToast отменяют предыдущий
type UIStore struct {
	mu    sync.Mutex
	state UIState

	clock         clockwork.Clock
	toastDuration time.Duration
	toastTimer    clockwork.Timer
	toastSeq      uint64
}

func NewUIStore(clock clockwork.Clock, toastDuration time.Duration) *UIStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if toastDuration <= 0 {
		toastDuration = DefaultToastDuration
	}
	return &UIStore{
		clock:         clock,
		toastDuration: toastDuration,
	}
}

func (u *UIStore) SetLoading(loading bool, message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.IsLoading = loading
	u.state.LoadingMessage = message
}

// SetCurrentLocation сохраняет позицию и сбрасывает ошибку геолокации
func (u *UIStore) SetCurrentLocation(location *models.Location) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if location == nil {
		u.state.CurrentLocation = nil
	} else {
		l := *location
		u.state.CurrentLocation = &l
	}
	u.state.LocationError = ""
}

func (u *UIStore) SetLocationLoading(loading bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.IsLocationLoading = loading
}

// SetLocationError сохраняет ошибку геолокации и завершает ожидание позиции
func (u *UIStore) SetLocationError(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.LocationError = message
	u.state.IsLocationLoading = false
}

func (u *UIStore) SetActiveSheet(sheet string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.ActiveSheet = sheet
}

func (u *UIStore) SetSafetyModal(show bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.ShowSafetyModal = show
}

// ShowToast показывает уведомление и планирует его скрытие
func (u *UIStore) ShowToast(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.cancelToastLocked()
	u.state.ToastMessage = message
	seq := u.toastSeq
	u.toastTimer = u.clock.AfterFunc(u.toastDuration, func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		// таймер мог быть заменен более новым уведомлением
		if u.toastSeq != seq {
			return
		}
		u.state.ToastMessage = ""
		u.toastTimer = nil
	})
}

// HideToast скрывает уведомление и отменяет запланированное скрытие
func (u *UIStore) HideToast() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cancelToastLocked()
	u.state.ToastMessage = ""
}

// Snapshot возвращает копию состояния
func (u *UIStore) Snapshot() UIState {
	u.mu.Lock()
	defer u.mu.Unlock()
	snap := u.state
	if u.state.CurrentLocation != nil {
		l := *u.state.CurrentLocation
		snap.CurrentLocation = &l
	}
	return snap
}

// Reset сбрасывает временное состояние. Позиция и ошибка геолокации сохраняются
func (u *UIStore) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cancelToastLocked()
	u.state.IsLoading = false
	u.state.LoadingMessage = ""
	u.state.ActiveSheet = ""
	u.state.ShowSafetyModal = false
	u.state.ToastMessage = ""
}

func (u *UIStore) cancelToastLocked() {
	u.toastSeq++
	if u.toastTimer != nil {
		u.toastTimer.Stop()
		u.toastTimer = nil
	}
}
