package service

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toastMessage(u *UIStore) func() string {
	return func() string { return u.Snapshot().ToastMessage }
}

func TestUIStore_ToastAutoHides(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ui := NewUIStore(clock, 0)

	ui.ShowToast("제보가 완료되었습니다!")
	assert.Equal(t, "제보가 완료되었습니다!", ui.Snapshot().ToastMessage)

	clock.Advance(DefaultToastDuration - time.Millisecond)
	assert.Equal(t, "제보가 완료되었습니다!", ui.Snapshot().ToastMessage)

	clock.Advance(time.Millisecond)
	assert.Eventually(t, func() bool { return toastMessage(ui)() == "" }, time.Second, 5*time.Millisecond)
}

func TestUIStore_NewToastCancelsPreviousTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ui := NewUIStore(clock, 3*time.Second)

	ui.ShowToast("첫 번째")
	clock.Advance(2 * time.Second)
	ui.ShowToast("두 번째")

	// Таймер первого уведомления не должен скрыть второе
	clock.Advance(1500 * time.Millisecond)
	assert.Never(t, func() bool { return toastMessage(ui)() != "두 번째" }, 50*time.Millisecond, 5*time.Millisecond)

	clock.Advance(1500 * time.Millisecond)
	assert.Eventually(t, func() bool { return toastMessage(ui)() == "" }, time.Second, 5*time.Millisecond)
}

func TestUIStore_HideToastCancelsTimer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ui := NewUIStore(clock, time.Second)

	ui.ShowToast("위치를 입력해주세요.")
	ui.HideToast()
	assert.Empty(t, ui.Snapshot().ToastMessage)

	ui.ShowToast("버스 노선번호를 입력해주세요.")
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, "버스 노선번호를 입력해주세요.", ui.Snapshot().ToastMessage)
}

func TestUIStore_Location(t *testing.T) {
	ui := NewUIStore(clockwork.NewFakeClock(), 0)

	ui.SetLocationLoading(true)
	ui.SetLocationError("위치 권한이 거부되었습니다.")
	state := ui.Snapshot()
	assert.False(t, state.IsLocationLoading)
	assert.Equal(t, "위치 권한이 거부되었습니다.", state.LocationError)

	location := &models.Location{Lat: 37.5665, Lng: 126.9780, Address: "서울시청"}
	ui.SetCurrentLocation(location)
	location.Address = "changed"

	state = ui.Snapshot()
	require.NotNil(t, state.CurrentLocation)
	assert.Equal(t, "서울시청", state.CurrentLocation.Address)
	assert.Empty(t, state.LocationError)
}

func TestUIStore_Reset(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ui := NewUIStore(clock, time.Second)

	ui.SetLoading(true, "제보 중...")
	ui.SetActiveSheet("report")
	ui.SetSafetyModal(true)
	ui.SetCurrentLocation(&models.Location{Lat: 37.5, Lng: 127.0})
	ui.ShowToast("제보 중 오류가 발생했습니다.")

	ui.Reset()

	state := ui.Snapshot()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.LoadingMessage)
	assert.Empty(t, state.ActiveSheet)
	assert.False(t, state.ShowSafetyModal)
	assert.Empty(t, state.ToastMessage)
	assert.NotNil(t, state.CurrentLocation)
}
