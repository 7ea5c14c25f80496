package pricing

import (
	"time"

	"pirouette/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// buildContext validates the raw request fields and assembles the
// PricingContext rules are evaluated against. Duration is the wall-clock
// minute difference between end and start; a non-positive duration is a
// caller error, not something to silently correct.
func buildContext(req models.QuoteRequest, svc *models.Service, now time.Time) (models.PricingContext, error) {
	var details []FieldError

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		details = append(details, FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	startMin, err := parseClock(req.StartTime)
	if err != nil {
		details = append(details, FieldError{Field: "startTime", Message: "must be HH:MM"})
	}
	endMin, err := parseClock(req.EndTime)
	if err != nil {
		details = append(details, FieldError{Field: "endTime", Message: "must be HH:MM"})
	}
	if len(details) == 0 && endMin <= startMin {
		details = append(details, FieldError{Field: "endTime", Message: "must be after startTime"})
	}
	if req.AdvanceBookingDays != nil && *req.AdvanceBookingDays < 0 {
		details = append(details, FieldError{Field: "advanceBookingDays", Message: "must be non-negative"})
	}
	if len(details) > 0 {
		return models.PricingContext{}, &ValidationError{Details: details}
	}

	advance := 0
	if req.AdvanceBookingDays != nil {
		advance = *req.AdvanceBookingDays
	} else {
		advance = daysUntil(now, date)
	}

	return models.PricingContext{
		ServiceID:          req.ServiceID,
		EventID:            req.EventID,
		Date:               date,
		StartMinute:        startMin,
		EndMinute:          endMin,
		Duration:           endMin - startMin,
		AdvanceBookingDays: advance,
		BasePrice:          svc.BasePrice,
	}, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// daysUntil returns the floored whole-day count from now to the booking
// date, never below zero. Bookings for today or the past count as zero days
// in advance.
func daysUntil(now time.Time, date time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(date.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
