// Package entity contains the core business objects of the project.
package entity

import "fmt"

// StatusKind is the lifecycle state of a piece of equipment.
type StatusKind string

const (
	// StatusNotApplicable marks the state before registration. It only ever appears
	// as the before-status of the first checkpoint.
	StatusNotApplicable StatusKind = "N/A"
	// StatusInStock indicates the equipment is in the default stock room.
	StatusInStock StatusKind = "IN_STOCK"
	// StatusInTransit indicates the equipment was checked out and not yet received.
	StatusInTransit StatusKind = "IN_TRANSIT"
	// StatusInUse indicates the equipment was received in a room.
	StatusInUse StatusKind = "IN_USE"
)

// String returns the string representation of the StatusKind.
func (k StatusKind) String() string {
	return string(k)
}

// IsValid checks if the StatusKind is a valid value.
func (k StatusKind) IsValid() bool {
	switch k {
	case StatusNotApplicable, StatusInStock, StatusInTransit, StatusInUse:
		return true
	default:
		return false
	}
}

// Status is a tagged status value. RoomID is only set for StatusInUse.
type Status struct {
	Kind   StatusKind `json:"kind"`
	RoomID *uint      `json:"room_id,omitempty"`
}

// NotApplicableStatus returns the pre-registration marker.
func NotApplicableStatus() Status {
	return Status{Kind: StatusNotApplicable}
}

// InStockStatus returns the in-stock status.
func InStockStatus() Status {
	return Status{Kind: StatusInStock}
}

// InTransitStatus returns the in-transit status.
func InTransitStatus() Status {
	return Status{Kind: StatusInTransit}
}

// InUseStatus returns the in-use status for the given room.
func InUseStatus(roomID uint) Status {
	return Status{Kind: StatusInUse, RoomID: &roomID}
}

// Is reports whether the status has the given kind.
func (s Status) Is(kind StatusKind) bool {
	return s.Kind == kind
}

// Equal compares kind and room.
func (s Status) Equal(other Status) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.RoomID == nil || other.RoomID == nil {
		return s.RoomID == nil && other.RoomID == nil
	}

	return *s.RoomID == *other.RoomID
}

// Label renders the status for display. roomName resolves the room of an in-use
// status and may be nil, in which case the room id is shown.
func (s Status) Label(roomName func(id uint) (string, bool)) string {
	switch s.Kind {
	case StatusInStock:
		return "InStock"
	case StatusInTransit:
		return "InTransit"
	case StatusInUse:
		if s.RoomID == nil {
			return "InUse"
		}
		if roomName != nil {
			if name, ok := roomName(*s.RoomID); ok {
				return fmt.Sprintf("InUse(%s)", name)
			}
		}

		return fmt.Sprintf("InUse(#%d)", *s.RoomID)
	default:
		return "N/A"
	}
}
