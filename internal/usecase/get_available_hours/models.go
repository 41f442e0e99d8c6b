package get_available_hours

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/pkg/types"
)

// Request модель запроса доступных часов
type Request struct {
	Date    time.Time          // Календарная дата (без времени, в зоне сервиса)
	Package domain.PackageCode // Код пакета — определяет длительность сервиса
}

// Response модель ответа со списком предлагаемых стартовых часов
type Response struct {
	Date    time.Time
	Package domain.PackageCode

	// Hours стартовые часы, для которых бронирование прошло бы допуск.
	// Пустой список — день закрыт, исчерпан по дневному лимиту или все часы заняты.
	Hours []Hour
}

// Hour один предлагаемый стартовый час
type Hour struct {
	StartTime      types.TimeString // Например, "14:00"
	WindowStart    types.TimeString // Начало операционного окна (с подготовкой)
	WindowEnd      types.TimeString // Конец операционного окна (с уборкой)
	AvailableSpots int              // Свободные параллельные места в окне
	TotalSpots     int
}
