package domain

import (
	"context"
	"time"
)

// RoomType identifies who a requested room is for.
type RoomType string

const (
	RoomTypeStudent   RoomType = "student"
	RoomTypeChaperone RoomType = "chaperone"
)

// OrderStatusReceived is the lifecycle status assigned to every newly submitted order.
// Later transitions (staff review, confirmation with the hotel) happen outside this service.
const OrderStatusReceived = "received"

// DraftOccupant is one named person assigned to a draft room.
type DraftOccupant struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DraftRoom is one requested hotel room in an order draft. IDs are client-side
// identities used by the draft accumulator; they are not persisted.
// Dates are calendar dates in YYYY-MM-DD form with no time component.
type DraftRoom struct {
	ID            string          `json:"id,omitempty"`
	Type          RoomType        `json:"type"`
	ArrivalDate   string          `json:"arrivalDate"`
	DepartureDate string          `json:"departureDate"`
	Occupants     []DraftOccupant `json:"order_room_occupants"`
}

// OrderDraft is the client-accumulated, not-yet-persisted order record.
// Field names on the wire match the public submission API.
type OrderDraft struct {
	ContactFirstName string `json:"contactFirstName,omitempty"`
	ContactLastName  string `json:"contactLastName,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	ContactCell      string `json:"contactCell,omitempty"`

	BillingAddressee string `json:"billingAddressee,omitempty"`
	BillingStreet1   string `json:"billingStreet1,omitempty"`
	BillingStreet2   string `json:"billingStreet2,omitempty"`
	BillingCity      string `json:"billingCity,omitempty"`
	BillingState     string `json:"billingState,omitempty"`
	BillingZip       string `json:"billingZip,omitempty"`
	BillingCountry   string `json:"billingCountry,omitempty"`

	RequiresBusParking     bool `json:"requiresBusParking"`
	RequiresTransitToVenue bool `json:"requiresTransitToVenue"`

	SelectedHotel string `json:"selectedHotel,omitempty"`
	RewardsNumber string `json:"rewardsNumber,omitempty"`
	TermsAccepted bool   `json:"termsAccepted"`
	NotesForHotel string `json:"notesForHotel,omitempty"`

	Rooms []DraftRoom `json:"order_rooms,omitempty"`
}

// RoomCount returns the number of rooms in the draft.
func (d OrderDraft) RoomCount() int {
	return len(d.Rooms)
}

// OccupantCount returns the total number of occupants across all draft rooms.
func (d OrderDraft) OccupantCount() int {
	n := 0
	for _, r := range d.Rooms {
		n += len(r.Occupants)
	}
	return n
}

// OrderRoomOccupant is a persisted occupant row referencing its room.
type OrderRoomOccupant struct {
	ID          string `json:"id"`
	OrderRoomID string `json:"orderRoom"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// OrderRoom is a persisted room row referencing its order.
type OrderRoom struct {
	ID            string               `json:"id"`
	OrderID       string               `json:"order"`
	Type          RoomType             `json:"type"`
	ArrivalDate   string               `json:"arrivalDate"`
	DepartureDate string               `json:"departureDate"`
	Occupants     []*OrderRoomOccupant `json:"order_room_occupants,omitempty"`
}

// Order is the persisted root aggregate for one registration. Once created it
// is immutable here except for status transitions performed by staff tooling.
// swagger:model Order
type Order struct {
	ID string `json:"id"`

	ContactFirstName string `json:"contactFirstName,omitempty"`
	ContactLastName  string `json:"contactLastName,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	ContactCell      string `json:"contactCell,omitempty"`

	BillingAddressee string `json:"billingAddressee,omitempty"`
	BillingStreet1   string `json:"billingStreet1,omitempty"`
	BillingStreet2   string `json:"billingStreet2,omitempty"`
	BillingCity      string `json:"billingCity,omitempty"`
	BillingState     string `json:"billingState,omitempty"`
	BillingZip       string `json:"billingZip,omitempty"`
	BillingCountry   string `json:"billingCountry,omitempty"`

	RequiresBusParking     bool `json:"requiresBusParking"`
	RequiresTransitToVenue bool `json:"requiresTransitToVenue"`

	ConferenceHotelID string `json:"conference_hotel,omitempty"`
	RewardsNumber     string `json:"rewardsNumber,omitempty"`
	TermsAccepted     bool   `json:"termsAccepted"`
	NotesForHotel     string `json:"notesForHotel,omitempty"`

	OrderStatus   string `json:"orderStatus"`
	Confirmation  string `json:"confirmation"`
	RoomCount     int    `json:"roomCount"`
	OccupantCount int    `json:"occupantCount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rooms []*OrderRoom `json:"order_rooms,omitempty"`
}

// OrderRepository defines storage operations for orders and their nested rows.
type OrderRepository interface {
	// Submit persists the order header, its rooms, and their occupants inside a
	// single transaction, in the order supplied. On success the generated IDs
	// are set on the order and its children; on failure nothing is persisted.
	Submit(ctx context.Context, order *Order) error
	// GetByID returns the order with rooms and occupants populated.
	GetByID(ctx context.Context, id string) (*Order, error)
	// List returns a page of orders, newest first, without nested rows,
	// plus the total order count.
	List(ctx context.Context, params PaginationParams) ([]*Order, int, error)
}

// OrderService defines the order submission workflow.
type OrderService interface {
	// Submit atomically persists the draft as a new order and returns the
	// persisted order carrying its identity and confirmation code. Submit is
	// not idempotent: submitting the same draft twice creates two orders.
	Submit(ctx context.Context, draft *OrderDraft) (*Order, error)
	// GetOrder returns a persisted order with rooms and occupants.
	GetOrder(ctx context.Context, id string) (*Order, error)
	// ListOrders returns a page of orders plus the total count.
	ListOrders(ctx context.Context, params PaginationParams) ([]*Order, int, error)
}
