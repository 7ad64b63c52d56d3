package mail

// EventType discriminates mail events on the wire.
type EventType string

const (
	EventVerification EventType = "verification"
	EventUserApproved EventType = "user_approved"
	EventUserRejected EventType = "user_rejected"
	EventBroadcast    EventType = "broadcast"
)

// Event is the message published to the mail topic. To always holds resolved
// recipient addresses; recipient-group expansion happens before publishing.
type Event struct {
	Type    EventType `json:"type"`
	To      []string  `json:"to"`
	Name    string    `json:"name,omitempty"`
	OTP     string    `json:"otp,omitempty"`
	Subject string    `json:"subject,omitempty"`
	Message string    `json:"message,omitempty"`
	Reason  string    `json:"reason,omitempty"`
	CTAText string    `json:"cta_text,omitempty"`
	CTAURL  string    `json:"cta_url,omitempty"`
}
