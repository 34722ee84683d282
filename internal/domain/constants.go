package domain

import "errors"

// RSVPStatus is the persisted attendance intent. Only Going and Interested
// are ever stored; "not_going" and the empty string are request-side aliases
// for clearing the entry.
type RSVPStatus string

const (
	RSVPGoing      RSVPStatus = "going"
	RSVPInterested RSVPStatus = "interested"
)

// RSVPNone is the cleared state reported to clients.
const RSVPNone = "not_going"

var ErrInvalidRSVPStatus = errors.New("invalid rsvp status")

// ParseRSVPStatus maps a request value to a stored status. remove=true means
// any existing entry should be cleared.
func ParseRSVPStatus(s string) (status RSVPStatus, remove bool, err error) {
	switch s {
	case string(RSVPGoing):
		return RSVPGoing, false, nil
	case string(RSVPInterested):
		return RSVPInterested, false, nil
	case RSVPNone, "":
		return "", true, nil
	default:
		return "", false, ErrInvalidRSVPStatus
	}
}

// EventCategories is the closed set of event categories.
var EventCategories = []string{
	"music",
	"sports",
	"arts",
	"food",
	"education",
	"technology",
	"community",
	"family",
	"other",
}

const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeSuccess = "success"
	NotificationTypeError   = "error"
)

const (
	NotificationPriorityLow    = "low"
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
)

const (
	NotificationTargetAll      = "all"
	NotificationTargetAdmins   = "admins"
	NotificationTargetSpecific = "specific"
)
