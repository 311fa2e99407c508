package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/message"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
	"github.com/teamtally/clubdesk/internal/platform/logging"
)

func newMessageServiceFixture() (*MessageService, *memory.MessageRepository) {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo)
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	messageRepo := memory.NewMessageRepository(nil)

	service := NewMessageService(
		messageRepo,
		teamRepo,
		playerRepo,
		userRepo,
		&sequenceIDGenerator{prefix: "msg"},
		logging.NewNop(),
		4,
	)

	return service, messageRepo
}

func TestMessageService_Broadcast(t *testing.T) {
	service, _ := newMessageServiceFixture()

	sentAt := time.Date(2026, 8, 21, 18, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return sentAt }

	draft, err := service.CreateMessage(t.Context(), CreateMessageInput{
		SenderUserID: memory.UserIDDemoCoach,
		TeamID:       "team-falcons-u17",
		Subject:      "Saturday fixture",
		Body:         "Meet at the clubhouse at noon.",
	})
	if err != nil {
		t.Fatalf("create message failed: %v", err)
	}

	result, err := service.Broadcast(t.Context(), draft.ID)
	if err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}

	// The seeded U17 roster has four active players.
	if result.Recipients != 4 {
		t.Fatalf("expected 4 recipients, got %d", result.Recipients)
	}
	if result.Failed != 0 {
		t.Fatalf("expected no failures, got %d", result.Failed)
	}
	if result.Message.SentAt == nil || !result.Message.SentAt.Equal(sentAt) {
		t.Fatalf("expected sent_at %v, got %v", sentAt, result.Message.SentAt)
	}

	recipients, err := service.ListRecipients(t.Context(), draft.ID)
	if err != nil {
		t.Fatalf("list recipients failed: %v", err)
	}
	if len(recipients) != 4 {
		t.Fatalf("expected 4 recipient rows, got %d", len(recipients))
	}
}

func TestMessageService_Broadcast_AlreadySent(t *testing.T) {
	service, _ := newMessageServiceFixture()

	draft, err := service.CreateMessage(t.Context(), CreateMessageInput{
		SenderUserID: memory.UserIDDemoCoach,
		TeamID:       "team-falcons-u17",
		Subject:      "Training moved",
		Body:         "Tuesday session starts an hour later.",
	})
	if err != nil {
		t.Fatalf("create message failed: %v", err)
	}

	if _, err := service.Broadcast(t.Context(), draft.ID); err != nil {
		t.Fatalf("first broadcast failed: %v", err)
	}

	_, err = service.Broadcast(t.Context(), draft.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for repeat broadcast, got %v", err)
	}
}

func TestMessageService_UpdateMessage_SentIsImmutable(t *testing.T) {
	service, _ := newMessageServiceFixture()

	draft, err := service.CreateMessage(t.Context(), CreateMessageInput{
		SenderUserID: memory.UserIDDemoCoach,
		TeamID:       "team-falcons-u17",
		Subject:      "Kit order",
		Body:         "Sizes due by Friday.",
	})
	if err != nil {
		t.Fatalf("create message failed: %v", err)
	}

	if _, err := service.Broadcast(t.Context(), draft.ID); err != nil {
		t.Fatalf("broadcast failed: %v", err)
	}

	subject := "Kit order (updated)"
	if _, err := service.UpdateMessage(t.Context(), draft.ID, message.Patch{Subject: &subject}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input editing a sent message, got %v", err)
	}
}

func TestMessageService_CreateMessage_SenderMissing(t *testing.T) {
	service, _ := newMessageServiceFixture()

	_, err := service.CreateMessage(t.Context(), CreateMessageInput{
		SenderUserID: "usr-ghost",
		TeamID:       "team-falcons-u17",
		Subject:      "Hello",
		Body:         "World",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "User not found" {
		t.Fatalf("expected exact message, got %q", err.Error())
	}
}
