package notifications

// TargetAll marks a broadcast notification visible to every session.
const TargetAll = "all"

// Notification is one entry in the append-only message log.
type Notification struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Date       string `json:"date"`
	Read       bool   `json:"read"`
	TargetUser string `json:"targetUser"`
}

// VisibleTo reports whether the notification should appear for uid.
func (n Notification) VisibleTo(uid string) bool {
	return n.TargetUser == TargetAll || n.TargetUser == uid
}
