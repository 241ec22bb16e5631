package models

// BookingConfirmation is the user-facing payload built after a successful
// calendar commit. Start and End are already humanized for display.
type BookingConfirmation struct {
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Organizer string `json:"organizer,omitempty"`
	Link      string `json:"link,omitempty"`
}
