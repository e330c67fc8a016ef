package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"roomblock/internal/domain"
)

type orderService struct {
	orderRepo      domain.OrderRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewOrderService creates an OrderService. emailService may be nil, in which
// case no confirmation email is sent.
func NewOrderService(orderRepo domain.OrderRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.OrderService {
	return &orderService{
		orderRepo:      orderRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

const confirmationLength = 8

var confirmationAlphabet = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// generateConfirmation draws 8 characters uniformly from [A-Z0-9]. Codes are
// not checked for uniqueness against existing orders; with 36^8 possibilities
// the collision risk is accepted, matching the original system's behavior.
func generateConfirmation() (string, error) {
	b := make([]rune, confirmationLength)
	max := big.NewInt(int64(len(confirmationAlphabet)))
	for i := 0; i < confirmationLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = confirmationAlphabet[n.Int64()]
	}
	return string(b), nil
}

// Submit persists the draft as a new order in a single transaction and returns
// the persisted order. Each call creates a new order with a fresh confirmation
// code; retries after a reported failure produce a brand-new order.
func (s *orderService) Submit(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if draft == nil {
		return nil, domain.ErrInvalidInput
	}

	confirmation, err := generateConfirmation()
	if err != nil {
		return nil, fmt.Errorf("generate confirmation: %w", err)
	}

	now := time.Now()
	order := &domain.Order{
		ContactFirstName: draft.ContactFirstName,
		ContactLastName:  draft.ContactLastName,
		ContactEmail:     draft.ContactEmail,
		ContactCell:      draft.ContactCell,

		BillingAddressee: draft.BillingAddressee,
		BillingStreet1:   draft.BillingStreet1,
		BillingStreet2:   draft.BillingStreet2,
		BillingCity:      draft.BillingCity,
		BillingState:     draft.BillingState,
		BillingZip:       draft.BillingZip,
		BillingCountry:   draft.BillingCountry,

		RequiresBusParking:     draft.RequiresBusParking,
		RequiresTransitToVenue: draft.RequiresTransitToVenue,

		ConferenceHotelID: draft.SelectedHotel,
		RewardsNumber:     draft.RewardsNumber,
		TermsAccepted:     draft.TermsAccepted,
		NotesForHotel:     draft.NotesForHotel,

		OrderStatus:   domain.OrderStatusReceived,
		Confirmation:  confirmation,
		RoomCount:     draft.RoomCount(),
		OccupantCount: draft.OccupantCount(),

		CreatedAt: now,
		UpdatedAt: now,
	}
	// Rooms and occupants are persisted in the order the client supplied them.
	for _, r := range draft.Rooms {
		room := &domain.OrderRoom{
			Type:          r.Type,
			ArrivalDate:   r.ArrivalDate,
			DepartureDate: r.DepartureDate,
		}
		for _, o := range r.Occupants {
			room.Occupants = append(room.Occupants, &domain.OrderRoomOccupant{
				FirstName: o.FirstName,
				LastName:  o.LastName,
			})
		}
		order.Rooms = append(order.Rooms, room)
	}

	if err := s.orderRepo.Submit(ctx, order); err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}

	// The order is committed; a failed confirmation email must not fail the submission.
	if s.emailService != nil && order.ContactEmail != "" {
		data := &domain.OrderConfirmationEmailData{
			Email:         order.ContactEmail,
			FirstName:     order.ContactFirstName,
			Confirmation:  order.Confirmation,
			RoomCount:     order.RoomCount,
			OccupantCount: order.OccupantCount,
		}
		if err := s.emailService.SendOrderConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "confirmation email failed", "order_id", order.ID, "err", err)
		}
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, params domain.PaginationParams) ([]*domain.Order, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return orders, total, nil
}
