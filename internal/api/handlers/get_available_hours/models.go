package get_available_hours

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	getAvailableHours "github.com/m04kA/SMC-CateringService/internal/usecase/get_available_hours"
)

// AvailableHoursResponse HTTP response model
type AvailableHoursResponse struct {
	Date    string      `json:"date"`
	Package string      `json:"package"`
	Hours   []HourEntry `json:"hours"`
}

// HourEntry один предлагаемый стартовый час
type HourEntry struct {
	StartTime      string `json:"startTime"`
	WindowStart    string `json:"windowStart"`
	WindowEnd      string `json:"windowEnd"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
}

// ToUseCaseRequest конвертирует query-параметры в модель use case
func ToUseCaseRequest(dateStr, packageStr string) (*getAvailableHours.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableHours.Request{
		Date:    date,
		Package: domain.PackageCode(packageStr),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableHours.Response) *AvailableHoursResponse {
	hours := make([]HourEntry, len(resp.Hours))
	for i, h := range resp.Hours {
		hours[i] = HourEntry{
			StartTime:      h.StartTime.String(),
			WindowStart:    h.WindowStart.String(),
			WindowEnd:      h.WindowEnd.String(),
			AvailableSpots: h.AvailableSpots,
			TotalSpots:     h.TotalSpots,
		}
	}

	return &AvailableHoursResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Package: string(resp.Package),
		Hours:   hours,
	}
}
