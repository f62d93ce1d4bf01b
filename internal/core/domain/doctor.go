package domain

// Doctor is a practitioner profile shown on the public site. ImageRef is the
// raw storage reference (a filename or an inline data URI, depending on the
// configured image store) and is never exposed to API callers directly.
type Doctor struct {
	ID        int64
	Firstname string
	Lastname  string
	Email     string
	Phone     string
	AgendaURL string
	ImageRef  string
}

// DoctorHolidays pairs a doctor with their holiday entries, ordered by start
// date ascending. The slice may be empty but is never nil for a doctor that
// exists.
type DoctorHolidays struct {
	Doctor   Doctor
	Holidays []Holiday
}
