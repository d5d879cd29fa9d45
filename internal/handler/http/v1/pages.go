package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/dongmunseodap/internal/models"
)

// Сообщения, которые страницы показывают пользователю
const (
	ToastLocationUnknown      = "위치 정보를 확인할 수 없습니다."
	ToastBusRouteRequired     = "버스 노선번호를 입력해주세요."
	ToastAddressRequired      = "위치를 입력해주세요."
	ToastCurrentLocationUnset = "현재 위치를 확인할 수 없습니다. 직접 위치를 입력해주세요."
	ToastReportSubmitted      = "제보가 완료되었습니다!"
	ToastPostReportSubmitted  = "사후 제보가 완료되었습니다!"
	ToastReportFailed         = "제보 중 오류가 발생했습니다."
	ToastInvalidInput         = "입력값을 확인해주세요."
)

// Сообщение задним числом по умолчанию относится к моменту 30 минут назад
const defaultObservedOffset = 30 * time.Minute

var seoulTime = time.FixedZone("KST", 9*60*60)

var driverDefaults = map[int]string{
	1: "교통이 원활합니다",
	2: "약간 서행하고 있습니다",
	3: "지체되고 있습니다",
	4: "정체가 발생했습니다",
	5: "극심한 정체입니다",
}

var transitDefaults = map[int]string{
	1: "%s번 버스가 정시 운행중입니다",
	2: "%s번 버스가 약간 지연되고 있습니다",
	3: "%s번 버스 운행에 지체가 있습니다",
	4: "%s번 버스가 많이 지연되고 있습니다",
	5: "%s번 버스 운행이 매우 어려운 상황입니다",
}

var postDefaults = map[int]string{
	1: "%s에 교통이 원활했습니다",
	2: "%s에 약간 서행했습니다",
	3: "%s에 지체가 있었습니다",
	4: "%s에 정체가 발생했습니다",
	5: "%s에 극심한 정체가 있었습니다",
}

func driverDescription(level int) string {
	return driverDefaults[level]
}

func transitDescription(level int, route string) string {
	return fmt.Sprintf(transitDefaults[level], route)
}

func postDescription(level int, observedAt time.Time) string {
	return fmt.Sprintf(postDefaults[level], formatKoreanTime(observedAt))
}

// formatKoreanTime форматирует время в корейской локали: "2026. 10. 14. 오후 3:05:00"
func formatKoreanTime(t time.Time) string {
	t = t.In(seoulTime)
	period := "오전"
	if t.Hour() >= 12 {
		period = "오후"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d. %d. %d. %s %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), period, hour, t.Minute(), t.Second())
}

// validationToast подбирает сообщение для первой ошибки валидации формы
func validationToast(reportType models.ReportType, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ToastInvalidInput
	}
	switch verrs[0].StructField() {
	case "Location", "Lat", "Lng":
		if reportType == models.ReportTypePost {
			return ToastCurrentLocationUnset
		}
		return ToastLocationUnknown
	case "BusRoute":
		return ToastBusRouteRequired
	case "Address":
		return ToastAddressRequired
	default:
		return ToastInvalidInput
	}
}
