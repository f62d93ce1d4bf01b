package domain

import "time"

// DateLayout is the calendar-date format used for holiday bounds. Dates carry
// no time component and are compared as UTC calendar days.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Holiday is an absence period for a doctor. DoctorName is derived from the
// doctors table on read and is empty on write paths.
type Holiday struct {
	ID         int64  `json:"id"`
	DoctorID   int64  `json:"doctorId"`
	DoctorName string `json:"doctorName,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}
