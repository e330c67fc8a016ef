package registration

import (
	"context"
	"errors"
	"fmt"

	"roomblock/internal/domain"
	"roomblock/internal/validate"
)

// Step identifies one wizard step. Steps are visited strictly in order.
type Step int

const (
	StepContact Step = iota
	StepBilling
	StepOccupantsAndRooms
	StepTransportation
	StepHotelSelection
	StepHotelPaperwork
	StepReview
)

// String returns the step's display label.
func (s Step) String() string {
	switch s {
	case StepContact:
		return "Contact Information"
	case StepBilling:
		return "Billing Information"
	case StepOccupantsAndRooms:
		return "Occupants & Rooms"
	case StepTransportation:
		return "Transportation"
	case StepHotelSelection:
		return "Hotel Selection"
	case StepHotelPaperwork:
		return "Hotel Paperwork"
	case StepReview:
		return "Review & Confirm"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

const lastStep = StepReview

// Sentinel errors for wizard actions.
var (
	ErrInvalidPasscode    = errors.New("invalid passcode")
	ErrNotOnReview        = errors.New("submit is only available on the review step")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrAlreadyConfirmed   = errors.New("order already confirmed")
	ErrConferenceNotFound = errors.New("no conference matches the passcode")
)

// ConferenceLookup resolves conferences. Reads are side-effect free and may be
// retried on failure.
type ConferenceLookup interface {
	GetConferenceByPasscode(ctx context.Context, passcode string) (*domain.Conference, error)
	GetConferenceByID(ctx context.Context, id string) (*domain.Conference, error)
}

// HotelLookup lists hotel offerings. Reads are side-effect free and may be
// retried on failure.
type HotelLookup interface {
	ListHotelsForConference(ctx context.Context, conferenceID string, filters domain.HotelFilters) ([]*domain.ConferenceHotel, error)
	GetHotelByID(ctx context.Context, id string) (*domain.ConferenceHotel, error)
}

// OrderSubmitter submits a completed draft. Submission is NOT idempotent:
// each call creates a new order with a new confirmation code.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error)
}

// Wizard sequences the registration steps, accumulates the order draft, and
// triggers the final submission. It is driven by one user session and is not
// safe for concurrent use.
type Wizard struct {
	conferences ConferenceLookup
	hotels      HotelLookup
	submitter   OrderSubmitter

	conference *domain.Conference
	draft      domain.OrderDraft
	step       Step
	confirmed  bool
	order      *domain.Order

	submitting bool
	seq        int
}

// NewWizard returns a wizard positioned on the first step with an empty draft.
func NewWizard(conferences ConferenceLookup, hotels HotelLookup, submitter OrderSubmitter) *Wizard {
	return &Wizard{
		conferences: conferences,
		hotels:      hotels,
		submitter:   submitter,
		step:        StepContact,
	}
}

// Start resolves the raw passcode input to a conference and resets the wizard
// to the first step with a fresh draft. The input is filtered to the canonical
// passcode form before validation and lookup.
func (w *Wizard) Start(ctx context.Context, rawPasscode string) (*domain.Conference, error) {
	code := validate.FilterPasscode(rawPasscode)
	if !validate.IsPasscode(code) {
		return nil, ErrInvalidPasscode
	}
	conf, err := w.conferences.GetConferenceByPasscode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrConferenceNotFound
		}
		return nil, fmt.Errorf("get conference by passcode: %w", err)
	}
	w.conference = conf
	w.draft = domain.OrderDraft{}
	w.step = StepContact
	w.confirmed = false
	w.order = nil
	w.seq = 0
	return conf, nil
}

// Conference returns the resolved conference, or nil before Start succeeds.
func (w *Wizard) Conference() *domain.Conference { return w.conference }

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Confirmed reports whether the draft was submitted successfully.
func (w *Wizard) Confirmed() bool { return w.confirmed }

// Order returns the persisted order after a successful submission, else nil.
func (w *Wizard) Order() *domain.Order { return w.order }

// Draft returns a copy of the accumulated draft for display.
func (w *Wizard) Draft() domain.OrderDraft { return cloneDraft(w.draft) }

// Apply merges one field operation into the draft. Previously set fields from
// other steps are preserved.
func (w *Wizard) Apply(op FieldOp) error {
	next, err := Apply(w.draft, op)
	if err != nil {
		return err
	}
	w.draft = next
	return nil
}

// Next advances to the following step. It clamps at the review step and is
// otherwise unconditional; the field validators stay advisory.
func (w *Wizard) Next() {
	if w.step < lastStep {
		w.step++
	}
}

// Previous moves back one step, clamping at the first.
func (w *Wizard) Previous() {
	if w.step > StepContact {
		w.step--
	}
}

// NewRoom appends a room seeded with the conference's default arrival and
// departure dates and returns it.
func (w *Wizard) NewRoom() (domain.DraftRoom, error) {
	room := domain.DraftRoom{
		ID:   w.nextID("room"),
		Type: domain.RoomTypeStudent,
	}
	if w.conference != nil {
		room.ArrivalDate = w.conference.DefaultArrivalDate
		room.DepartureDate = w.conference.DefaultDepartureDate
	}
	if err := w.Apply(AddRoom{Room: room}); err != nil {
		return domain.DraftRoom{}, err
	}
	return room, nil
}

// NewOccupant appends an empty occupant to the given room and returns it.
func (w *Wizard) NewOccupant(roomID string) (domain.DraftOccupant, error) {
	occupant := domain.DraftOccupant{ID: w.nextID("occupant")}
	if err := w.Apply(AddOccupant{RoomID: roomID, Occupant: occupant}); err != nil {
		return domain.DraftOccupant{}, err
	}
	return occupant, nil
}

// HotelChoices lists the hotel offerings for the resolved conference, filtered
// by the draft's transportation flags: a required capability narrows the list,
// an unneeded one does not.
func (w *Wizard) HotelChoices(ctx context.Context) ([]*domain.ConferenceHotel, error) {
	if w.conference == nil {
		return nil, ErrConferenceNotFound
	}
	yes := true
	var filters domain.HotelFilters
	if w.draft.RequiresBusParking {
		filters.HasBusParking = &yes
	}
	if w.draft.RequiresTransitToVenue {
		filters.HasTransitToVenue = &yes
	}
	hotels, err := w.hotels.ListHotelsForConference(ctx, w.conference.ID, filters)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

// Submit sends the accumulated draft, whole, to the submission service. It is
// legal only on the review step, and only one submission may be in flight at a
// time. On success the wizard enters the confirmed pseudo-state; on failure it
// stays on review and the caller may retry, which creates a brand-new order.
func (w *Wizard) Submit(ctx context.Context) (*domain.Order, error) {
	if w.confirmed {
		return nil, ErrAlreadyConfirmed
	}
	if w.step != StepReview {
		return nil, ErrNotOnReview
	}
	if w.submitting {
		return nil, ErrSubmissionInFlight
	}
	w.submitting = true
	defer func() { w.submitting = false }()

	draft := cloneDraft(w.draft)
	order, err := w.submitter.SubmitOrder(ctx, &draft)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	w.confirmed = true
	w.order = order
	return order, nil
}

func (w *Wizard) nextID(prefix string) string {
	w.seq++
	return fmt.Sprintf("%s-%d", prefix, w.seq)
}
