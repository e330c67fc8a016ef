// Package registration implements the client-side core of the booking flow:
// the typed order draft accumulator and the step wizard that drives it.
package registration

import (
	"errors"

	"roomblock/internal/domain"
)

// Sentinel errors for draft operations.
var (
	ErrRoomNotFound     = errors.New("room not found in draft")
	ErrOccupantNotFound = errors.New("occupant not found in draft")
	ErrRoomOccupied     = errors.New("room with occupants cannot be removed")
)

// FieldOp is one update to an in-progress order draft. The set of operations
// is closed: every legal field and its value type is enumerable here, in place
// of a stringly-typed setOrderProp(field, value).
type FieldOp interface {
	apply(d *domain.OrderDraft) error
}

// SetContact sets the contact fields contributed by the contact step.
type SetContact struct {
	FirstName string
	LastName  string
	Email     string
	Cell      string
}

func (op SetContact) apply(d *domain.OrderDraft) error {
	d.ContactFirstName = op.FirstName
	d.ContactLastName = op.LastName
	d.ContactEmail = op.Email
	d.ContactCell = op.Cell
	return nil
}

// SetBilling sets the billing address fields contributed by the billing step.
type SetBilling struct {
	Addressee string
	Street1   string
	Street2   string
	City      string
	State     string
	Zip       string
	Country   string
}

func (op SetBilling) apply(d *domain.OrderDraft) error {
	d.BillingAddressee = op.Addressee
	d.BillingStreet1 = op.Street1
	d.BillingStreet2 = op.Street2
	d.BillingCity = op.City
	d.BillingState = op.State
	d.BillingZip = op.Zip
	d.BillingCountry = op.Country
	return nil
}

// SetTransportation sets the transportation preference flags.
type SetTransportation struct {
	RequiresBusParking     bool
	RequiresTransitToVenue bool
}

func (op SetTransportation) apply(d *domain.OrderDraft) error {
	d.RequiresBusParking = op.RequiresBusParking
	d.RequiresTransitToVenue = op.RequiresTransitToVenue
	return nil
}

// SetHotelSelection records the chosen hotel offering and optional rewards number.
type SetHotelSelection struct {
	ConferenceHotelID string
	RewardsNumber     string
}

func (op SetHotelSelection) apply(d *domain.OrderDraft) error {
	d.SelectedHotel = op.ConferenceHotelID
	d.RewardsNumber = op.RewardsNumber
	return nil
}

// SetPaperwork records the hotel paperwork step: terms acceptance and notes.
type SetPaperwork struct {
	TermsAccepted bool
	NotesForHotel string
}

func (op SetPaperwork) apply(d *domain.OrderDraft) error {
	d.TermsAccepted = op.TermsAccepted
	d.NotesForHotel = op.NotesForHotel
	return nil
}

// AddRoom appends a room to the draft. The room must carry a draft-unique ID.
type AddRoom struct {
	Room domain.DraftRoom
}

func (op AddRoom) apply(d *domain.OrderDraft) error {
	d.Rooms = append(d.Rooms, op.Room)
	return nil
}

// UpdateRoom updates fields of the room with the given ID. Nil fields are left unchanged.
type UpdateRoom struct {
	RoomID        string
	Type          *domain.RoomType
	ArrivalDate   *string
	DepartureDate *string
}

func (op UpdateRoom) apply(d *domain.OrderDraft) error {
	for i := range d.Rooms {
		if d.Rooms[i].ID != op.RoomID {
			continue
		}
		if op.Type != nil {
			d.Rooms[i].Type = *op.Type
		}
		if op.ArrivalDate != nil {
			d.Rooms[i].ArrivalDate = *op.ArrivalDate
		}
		if op.DepartureDate != nil {
			d.Rooms[i].DepartureDate = *op.DepartureDate
		}
		return nil
	}
	return ErrRoomNotFound
}

// RemoveRoom deletes the room with the given ID. A room that still has
// occupants is refused; occupants must be removed first.
type RemoveRoom struct {
	RoomID string
}

func (op RemoveRoom) apply(d *domain.OrderDraft) error {
	for i := range d.Rooms {
		if d.Rooms[i].ID != op.RoomID {
			continue
		}
		if len(d.Rooms[i].Occupants) > 0 {
			return ErrRoomOccupied
		}
		d.Rooms = append(d.Rooms[:i], d.Rooms[i+1:]...)
		return nil
	}
	return ErrRoomNotFound
}

// AddOccupant appends an occupant to the room with the given ID.
// The occupant must carry a draft-unique ID.
type AddOccupant struct {
	RoomID   string
	Occupant domain.DraftOccupant
}

func (op AddOccupant) apply(d *domain.OrderDraft) error {
	for i := range d.Rooms {
		if d.Rooms[i].ID == op.RoomID {
			d.Rooms[i].Occupants = append(d.Rooms[i].Occupants, op.Occupant)
			return nil
		}
	}
	return ErrRoomNotFound
}

// UpdateOccupant updates name fields of an occupant. Nil fields are left unchanged.
type UpdateOccupant struct {
	RoomID     string
	OccupantID string
	FirstName  *string
	LastName   *string
}

func (op UpdateOccupant) apply(d *domain.OrderDraft) error {
	for i := range d.Rooms {
		if d.Rooms[i].ID != op.RoomID {
			continue
		}
		for j := range d.Rooms[i].Occupants {
			if d.Rooms[i].Occupants[j].ID != op.OccupantID {
				continue
			}
			if op.FirstName != nil {
				d.Rooms[i].Occupants[j].FirstName = *op.FirstName
			}
			if op.LastName != nil {
				d.Rooms[i].Occupants[j].LastName = *op.LastName
			}
			return nil
		}
		return ErrOccupantNotFound
	}
	return ErrRoomNotFound
}

// RemoveOccupant deletes an occupant from a room.
type RemoveOccupant struct {
	RoomID     string
	OccupantID string
}

func (op RemoveOccupant) apply(d *domain.OrderDraft) error {
	for i := range d.Rooms {
		if d.Rooms[i].ID != op.RoomID {
			continue
		}
		occupants := d.Rooms[i].Occupants
		for j := range occupants {
			if occupants[j].ID == op.OccupantID {
				d.Rooms[i].Occupants = append(occupants[:j], occupants[j+1:]...)
				return nil
			}
		}
		return ErrOccupantNotFound
	}
	return ErrRoomNotFound
}

// Apply returns a new draft with the operation applied. The input draft is
// never modified; a failed operation returns the input unchanged along with
// the error. Different wizard steps own disjoint operations, so updates from
// different steps never collide.
func Apply(d domain.OrderDraft, op FieldOp) (domain.OrderDraft, error) {
	next := cloneDraft(d)
	if err := op.apply(&next); err != nil {
		return d, err
	}
	return next, nil
}

func cloneDraft(d domain.OrderDraft) domain.OrderDraft {
	next := d
	if d.Rooms != nil {
		next.Rooms = make([]domain.DraftRoom, len(d.Rooms))
		copy(next.Rooms, d.Rooms)
		for i := range next.Rooms {
			if next.Rooms[i].Occupants != nil {
				occupants := make([]domain.DraftOccupant, len(next.Rooms[i].Occupants))
				copy(occupants, next.Rooms[i].Occupants)
				next.Rooms[i].Occupants = occupants
			}
		}
	}
	return next
}
