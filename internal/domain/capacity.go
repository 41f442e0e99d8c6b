package domain

import "fmt"

// AdmissionDecision is the terminal value returned by capacity evaluation.
// Never mutated after creation.
type AdmissionDecision struct {
	Admitted bool
	Reason   OutcomeCode
	Detail   string
}

// CountActiveOnDay подсчитывает активные бронирования, чей спан пересекается
// с границами календарного дня. Отменённые бронирования не занимают ёмкость.
func CountActiveOnDay(bookings []*ExistingBooking, day DayBounds) int {
	count := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Start.Before(day.End) && booking.End.After(day.Start) {
			count++
		}
	}
	return count
}

// CountOverlapping подсчитывает активные бронирования, реально пересекающиеся
// с операционным окном. Граничные случаи пересечением не считаются:
// бронирование, заканчивающееся ровно в начале окна, не учитывается.
func CountOverlapping(bookings []*ExistingBooking, window OperationalWindow) int {
	count := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if window.Overlaps(booking.Start, booking.End) {
			count++
		}
	}
	return count
}

// Evaluate решает вопрос о допуске нового бронирования по подсчитанной загрузке.
// Дневной лимит проверяется ПЕРЕД лимитом пересечений: если исчерпаны оба,
// причиной отказа будет именно дневной лимит.
func (p BookingPolicy) Evaluate(dayCount, overlapCount int) AdmissionDecision {
	if dayCount >= p.MaxPerDay {
		return AdmissionDecision{
			Admitted: false,
			Reason:   OutcomeDayCapacityExceeded,
			Detail:   fmt.Sprintf("%d of %d bookings already scheduled for this day", dayCount, p.MaxPerDay),
		}
	}

	if overlapCount >= p.MaxPerSlot {
		return AdmissionDecision{
			Admitted: false,
			Reason:   OutcomeOverlapCapacityExceeded,
			Detail:   fmt.Sprintf("%d of %d concurrent bookings already occupy this window", overlapCount, p.MaxPerSlot),
		}
	}

	return AdmissionDecision{Admitted: true}
}
