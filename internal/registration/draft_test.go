package registration

import (
	"errors"
	"testing"

	"roomblock/internal/domain"
)

func TestApply_FieldsFromDifferentStepsAccumulate(t *testing.T) {
	draft := domain.OrderDraft{}

	draft, err := Apply(draft, SetContact{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Cell: "5551234567"})
	if err != nil {
		t.Fatalf("set contact: %v", err)
	}
	draft, err = Apply(draft, SetBilling{Addressee: "Jane Doe", Street1: "1 Main St", City: "Boston", State: "MA", Zip: "02134", Country: "US"})
	if err != nil {
		t.Fatalf("set billing: %v", err)
	}
	draft, err = Apply(draft, SetTransportation{RequiresBusParking: true})
	if err != nil {
		t.Fatalf("set transportation: %v", err)
	}
	draft, err = Apply(draft, SetHotelSelection{ConferenceHotelID: "ch-1", RewardsNumber: "RW-9"})
	if err != nil {
		t.Fatalf("set hotel selection: %v", err)
	}
	draft, err = Apply(draft, SetPaperwork{TermsAccepted: true, NotesForHotel: "late arrival"})
	if err != nil {
		t.Fatalf("set paperwork: %v", err)
	}

	if draft.ContactFirstName != "Jane" || draft.ContactEmail != "jane@x.com" {
		t.Fatalf("contact fields lost: %+v", draft)
	}
	if draft.BillingZip != "02134" {
		t.Fatalf("billing fields lost: %+v", draft)
	}
	if !draft.RequiresBusParking || draft.RequiresTransitToVenue {
		t.Fatalf("transportation flags wrong: %+v", draft)
	}
	if draft.SelectedHotel != "ch-1" || !draft.TermsAccepted || draft.NotesForHotel != "late arrival" {
		t.Fatalf("hotel/paperwork fields lost: %+v", draft)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	original := domain.OrderDraft{
		Rooms: []domain.DraftRoom{
			{ID: "r1", Type: domain.RoomTypeStudent, Occupants: []domain.DraftOccupant{{ID: "o1", FirstName: "A"}}},
		},
	}

	first := "Z"
	updated, err := Apply(original, UpdateOccupant{RoomID: "r1", OccupantID: "o1", FirstName: &first})
	if err != nil {
		t.Fatalf("update occupant: %v", err)
	}
	if original.Rooms[0].Occupants[0].FirstName != "A" {
		t.Fatal("input draft was mutated")
	}
	if updated.Rooms[0].Occupants[0].FirstName != "Z" {
		t.Fatal("returned draft missing the update")
	}
}

func TestApply_RoomOps(t *testing.T) {
	draft := domain.OrderDraft{}

	draft, err := Apply(draft, AddRoom{Room: domain.DraftRoom{ID: "r1", Type: domain.RoomTypeStudent, ArrivalDate: "2025-06-01", DepartureDate: "2025-06-03"}})
	if err != nil {
		t.Fatalf("add room: %v", err)
	}
	draft, err = Apply(draft, AddRoom{Room: domain.DraftRoom{ID: "r2", Type: domain.RoomTypeChaperone}})
	if err != nil {
		t.Fatalf("add second room: %v", err)
	}
	if len(draft.Rooms) != 2 || draft.Rooms[0].ID != "r1" || draft.Rooms[1].ID != "r2" {
		t.Fatalf("rooms out of order: %+v", draft.Rooms)
	}

	departure := "2025-06-04"
	draft, err = Apply(draft, UpdateRoom{RoomID: "r1", DepartureDate: &departure})
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if draft.Rooms[0].DepartureDate != "2025-06-04" || draft.Rooms[0].ArrivalDate != "2025-06-01" {
		t.Fatalf("partial room update wrong: %+v", draft.Rooms[0])
	}

	if _, err := Apply(draft, UpdateRoom{RoomID: "missing"}); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}

	draft, err = Apply(draft, RemoveRoom{RoomID: "r2"})
	if err != nil {
		t.Fatalf("remove room: %v", err)
	}
	if len(draft.Rooms) != 1 || draft.Rooms[0].ID != "r1" {
		t.Fatalf("wrong room removed: %+v", draft.Rooms)
	}
}

func TestApply_RemoveRoomWithOccupantsRefused(t *testing.T) {
	draft := domain.OrderDraft{
		Rooms: []domain.DraftRoom{
			{ID: "r1", Occupants: []domain.DraftOccupant{{ID: "o1", FirstName: "A", LastName: "B"}}},
		},
	}

	result, err := Apply(draft, RemoveRoom{RoomID: "r1"})
	if !errors.Is(err, ErrRoomOccupied) {
		t.Fatalf("expected ErrRoomOccupied, got %v", err)
	}
	if len(result.Rooms) != 1 {
		t.Fatal("draft changed despite refused removal")
	}

	// After removing the occupant the room can go.
	draft, err = Apply(draft, RemoveOccupant{RoomID: "r1", OccupantID: "o1"})
	if err != nil {
		t.Fatalf("remove occupant: %v", err)
	}
	draft, err = Apply(draft, RemoveRoom{RoomID: "r1"})
	if err != nil {
		t.Fatalf("remove emptied room: %v", err)
	}
	if len(draft.Rooms) != 0 {
		t.Fatalf("room not removed: %+v", draft.Rooms)
	}
}

func TestApply_OccupantOps(t *testing.T) {
	draft := domain.OrderDraft{Rooms: []domain.DraftRoom{{ID: "r1"}}}

	draft, err := Apply(draft, AddOccupant{RoomID: "r1", Occupant: domain.DraftOccupant{ID: "o1", FirstName: "A", LastName: "B"}})
	if err != nil {
		t.Fatalf("add occupant: %v", err)
	}
	draft, err = Apply(draft, AddOccupant{RoomID: "r1", Occupant: domain.DraftOccupant{ID: "o2", FirstName: "C", LastName: "D"}})
	if err != nil {
		t.Fatalf("add second occupant: %v", err)
	}
	if draft.OccupantCount() != 2 {
		t.Fatalf("occupant count = %d, want 2", draft.OccupantCount())
	}

	last := "Davis"
	draft, err = Apply(draft, UpdateOccupant{RoomID: "r1", OccupantID: "o2", LastName: &last})
	if err != nil {
		t.Fatalf("update occupant: %v", err)
	}
	if draft.Rooms[0].Occupants[1].LastName != "Davis" || draft.Rooms[0].Occupants[1].FirstName != "C" {
		t.Fatalf("partial occupant update wrong: %+v", draft.Rooms[0].Occupants[1])
	}

	if _, err := Apply(draft, AddOccupant{RoomID: "missing"}); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if _, err := Apply(draft, UpdateOccupant{RoomID: "r1", OccupantID: "missing"}); !errors.Is(err, ErrOccupantNotFound) {
		t.Fatalf("expected ErrOccupantNotFound, got %v", err)
	}

	draft, err = Apply(draft, RemoveOccupant{RoomID: "r1", OccupantID: "o1"})
	if err != nil {
		t.Fatalf("remove occupant: %v", err)
	}
	if len(draft.Rooms[0].Occupants) != 1 || draft.Rooms[0].Occupants[0].ID != "o2" {
		t.Fatalf("wrong occupant removed: %+v", draft.Rooms[0].Occupants)
	}
}
