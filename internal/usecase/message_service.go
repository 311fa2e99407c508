package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/teamtally/clubdesk/internal/domain/message"
	"github.com/teamtally/clubdesk/internal/domain/player"
	"github.com/teamtally/clubdesk/internal/domain/team"
	"github.com/teamtally/clubdesk/internal/domain/user"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
	"github.com/teamtally/clubdesk/internal/platform/logging"
)

const defaultBroadcastWorkers = 8

// CreateMessageInput is the incoming payload for a team announcement.
type CreateMessageInput struct {
	SenderUserID string
	TeamID       string
	Subject      string
	Body         string
}

// BroadcastResult summarizes one send fan-out.
type BroadcastResult struct {
	Message    message.Message
	Recipients int
	Failed     int
}

type MessageService struct {
	messageRepo      message.Repository
	teamRepo         team.Repository
	playerRepo       player.Repository
	userRepo         user.Repository
	idGen            idgen.Generator
	logger           *logging.Logger
	broadcastWorkers int
	now              func() time.Time
}

func NewMessageService(
	messageRepo message.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	userRepo user.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
	broadcastWorkers int,
) *MessageService {
	if logger == nil {
		logger = logging.Default()
	}
	if broadcastWorkers <= 0 {
		broadcastWorkers = defaultBroadcastWorkers
	}

	return &MessageService{
		messageRepo:      messageRepo,
		teamRepo:         teamRepo,
		playerRepo:       playerRepo,
		userRepo:         userRepo,
		idGen:            idGen,
		logger:           logger,
		broadcastWorkers: broadcastWorkers,
		now:              time.Now,
	}
}

func (s *MessageService) CreateMessage(ctx context.Context, input CreateMessageInput) (message.Message, error) {
	input.SenderUserID = strings.TrimSpace(input.SenderUserID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	input.Subject = strings.TrimSpace(input.Subject)

	if input.SenderUserID == "" {
		return message.Message{}, fmt.Errorf("%w: sender user id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return message.Message{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if input.Subject == "" {
		return message.Message{}, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Body) == "" {
		return message.Message{}, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, input.SenderUserID); err != nil {
		return message.Message{}, fmt.Errorf("get sender: %w", err)
	} else if !exists {
		return message.Message{}, notFound("User")
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return message.Message{}, fmt.Errorf("get team: %w", err)
	} else if !exists {
		return message.Message{}, notFound("Team")
	}

	messageID, err := s.idGen.NewID()
	if err != nil {
		return message.Message{}, fmt.Errorf("generate message id: %w", err)
	}

	now := s.now().UTC()
	m := message.Message{
		ID:           messageID,
		SenderUserID: input.SenderUserID,
		TeamID:       input.TeamID,
		Subject:      input.Subject,
		Body:         input.Body,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.Validate(); err != nil {
		return message.Message{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.messageRepo.Create(ctx, m)
	if err != nil {
		return message.Message{}, fmt.Errorf("create message: %w", err)
	}

	return created, nil
}

// Broadcast fans a drafted message out to every active player on the team's
// roster, one recipient row per delivery, then stamps the message sent. A
// message that already went out is not sent twice.
func (s *MessageService) Broadcast(ctx context.Context, messageID string) (BroadcastResult, error) {
	ctx, span := startUsecaseSpan(ctx, "MessageService.Broadcast")
	defer span.End()

	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return BroadcastResult{}, fmt.Errorf("%w: message id is required", ErrInvalidInput)
	}

	m, exists, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("get message: %w", err)
	}
	if !exists {
		return BroadcastResult{}, notFound("Message")
	}
	if m.SentAt != nil {
		return BroadcastResult{}, fmt.Errorf("%w: message already sent", ErrInvalidInput)
	}

	active := true
	roster, err := s.playerRepo.List(ctx, player.Filter{TeamID: m.TeamID, Active: &active})
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("list roster: %w", err)
	}

	deliveredAt := s.now().UTC()
	var delivered, failed int
	var mu sync.Mutex

	workers, err := ants.NewPool(s.broadcastWorkers)
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("create broadcast pool: %w", err)
	}
	defer workers.Release()

	var wg sync.WaitGroup
	for _, p := range roster {
		p := p
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()

			deliverErr := s.messageRepo.AddRecipient(ctx, message.Recipient{
				MessageID:   m.ID,
				PlayerID:    p.ID,
				DeliveredAt: deliveredAt,
			})

			mu.Lock()
			if deliverErr != nil {
				failed++
			} else {
				delivered++
			}
			mu.Unlock()

			if deliverErr != nil {
				s.logger.WarnContext(ctx, "message delivery failed",
					"message_id", m.ID, "player_id", p.ID, "error", deliverErr.Error())
			}
		}); err != nil {
			wg.Done()
			mu.Lock()
			failed++
			mu.Unlock()
		}
	}
	wg.Wait()

	sent, exists, err := s.messageRepo.MarkSent(ctx, m.ID, deliveredAt)
	if err != nil {
		return BroadcastResult{}, fmt.Errorf("mark message sent: %w", err)
	}
	if !exists {
		return BroadcastResult{}, notFound("Message")
	}

	s.logger.InfoContext(ctx, "message broadcast",
		"message_id", m.ID, "team_id", m.TeamID, "delivered", delivered, "failed", failed)

	return BroadcastResult{
		Message:    sent,
		Recipients: delivered,
		Failed:     failed,
	}, nil
}

func (s *MessageService) GetMessage(ctx context.Context, id string) (message.Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return message.Message{}, fmt.Errorf("%w: message id is required", ErrInvalidInput)
	}

	m, exists, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return message.Message{}, fmt.Errorf("get message: %w", err)
	}
	if !exists {
		return message.Message{}, notFound("Message")
	}

	return m, nil
}

func (s *MessageService) ListMessages(ctx context.Context, f message.Filter) ([]message.Message, error) {
	messages, err := s.messageRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	return messages, nil
}

func (s *MessageService) ListRecipients(ctx context.Context, messageID string) ([]message.Recipient, error) {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return nil, fmt.Errorf("%w: message id is required", ErrInvalidInput)
	}

	if _, exists, err := s.messageRepo.GetByID(ctx, messageID); err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	} else if !exists {
		return nil, notFound("Message")
	}

	recipients, err := s.messageRepo.ListRecipients(ctx, messageID)
	if err != nil {
		return nil, fmt.Errorf("list message recipients: %w", err)
	}

	return recipients, nil
}

// UpdateMessage edits the draft. A sent message is immutable.
func (s *MessageService) UpdateMessage(ctx context.Context, id string, p message.Patch) (message.Message, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return message.Message{}, fmt.Errorf("%w: message id is required", ErrInvalidInput)
	}
	if p.Subject != nil && strings.TrimSpace(*p.Subject) == "" {
		return message.Message{}, fmt.Errorf("%w: subject cannot be empty", ErrInvalidInput)
	}
	if p.Body != nil && strings.TrimSpace(*p.Body) == "" {
		return message.Message{}, fmt.Errorf("%w: body cannot be empty", ErrInvalidInput)
	}

	current, exists, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return message.Message{}, fmt.Errorf("get message: %w", err)
	}
	if !exists {
		return message.Message{}, notFound("Message")
	}
	if current.SentAt != nil {
		return message.Message{}, fmt.Errorf("%w: message already sent", ErrInvalidInput)
	}

	updated, exists, err := s.messageRepo.Update(ctx, id, p)
	if err != nil {
		return message.Message{}, fmt.Errorf("update message: %w", err)
	}
	if !exists {
		return message.Message{}, notFound("Message")
	}

	return updated, nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: message id is required", ErrInvalidInput)
	}

	if err := s.messageRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}
