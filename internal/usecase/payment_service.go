package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/payment"
	"github.com/teamtally/clubdesk/internal/domain/user"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreatePaymentInput is the incoming payload for a membership fee.
type CreatePaymentInput struct {
	UserID      string
	AmountCents int64
	Currency    string
	DueAt       time.Time
}

type PaymentService struct {
	paymentRepo payment.Repository
	userRepo    user.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewPaymentService(paymentRepo payment.Repository, userRepo user.Repository, idGen idgen.Generator) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *PaymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (payment.Payment, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))

	if input.UserID == "" {
		return payment.Payment{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.AmountCents <= 0 {
		return payment.Payment{}, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	if input.DueAt.IsZero() {
		return payment.Payment{}, fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return payment.Payment{}, fmt.Errorf("get user: %w", err)
	} else if !exists {
		return payment.Payment{}, notFound("User")
	}

	paymentID, err := s.idGen.NewID()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("generate payment id: %w", err)
	}

	now := s.now().UTC()
	p := payment.Payment{
		ID:          paymentID,
		UserID:      input.UserID,
		AmountCents: input.AmountCents,
		Currency:    input.Currency,
		DueAt:       input.DueAt,
		Status:      payment.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := p.Validate(); err != nil {
		return payment.Payment{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.paymentRepo.Create(ctx, p)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("create payment: %w", err)
	}

	return created, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id string) (payment.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return payment.Payment{}, fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}

	p, exists, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("get payment: %w", err)
	}
	if !exists {
		return payment.Payment{}, notFound("Payment")
	}

	return p, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, f payment.Filter) ([]payment.Payment, error) {
	if f.Status != "" {
		if _, ok := payment.AllStatuses[f.Status]; !ok {
			return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, f.Status)
		}
	}

	payments, err := s.paymentRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id string, p payment.Patch) (payment.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return payment.Payment{}, fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}
	if p.AmountCents != nil && *p.AmountCents <= 0 {
		return payment.Payment{}, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	if p.Status != nil {
		if _, ok := payment.AllStatuses[*p.Status]; !ok {
			return payment.Payment{}, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, *p.Status)
		}
	}

	updated, exists, err := s.paymentRepo.Update(ctx, id, p)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("update payment: %w", err)
	}
	if !exists {
		return payment.Payment{}, notFound("Payment")
	}

	return updated, nil
}

// MarkPaid stamps the payment with the pay time and flips its status.
func (s *PaymentService) MarkPaid(ctx context.Context, id string) (payment.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return payment.Payment{}, fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}

	paidAt := s.now().UTC()
	status := payment.StatusPaid
	updated, exists, err := s.paymentRepo.Update(ctx, id, payment.Patch{
		PaidAt: &paidAt,
		Status: &status,
	})
	if err != nil {
		return payment.Payment{}, fmt.Errorf("mark payment paid: %w", err)
	}
	if !exists {
		return payment.Payment{}, notFound("Payment")
	}

	return updated, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	return nil
}
