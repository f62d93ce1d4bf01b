package domain

// Site block identifiers. Each one is a singleton row with fixed id 1.
const (
	BlockWelcome = "welcome"
	BlockUrgency = "urgency"
)

// SiteBlock is one editable HTML fragment of the public site.
type SiteBlock struct {
	ID   int64  `json:"id"`
	HTML string `json:"html"`
}
