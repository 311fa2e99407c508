package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/teamtally/clubdesk/internal/domain/report"
	"github.com/teamtally/clubdesk/internal/domain/user"
	reportmock "github.com/teamtally/clubdesk/internal/mocks/domain/report"
	usermock "github.com/teamtally/clubdesk/internal/mocks/domain/user"
)

func TestReportService_CreateReport_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reportRepo := reportmock.NewRepository(t)
	userRepo := usermock.NewRepository(t)

	service := NewReportService(reportRepo, userRepo, &sequenceIDGenerator{prefix: "rep"})

	authorID := "usr-coach"
	userRepo.
		On("GetByID", mock.Anything, authorID).
		Return(user.User{ID: authorID, Role: user.RoleCoach}, true, nil).
		Once()
	reportRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(r report.Report) bool {
			return r.AuthorUserID == authorID && r.Kind == report.KindMatch && r.Title == "Derby debrief"
		})).
		Return(func(_ context.Context, r report.Report) report.Report { return r }, nil).
		Once()

	created, err := service.CreateReport(ctx, CreateReportInput{
		AuthorUserID: authorID,
		Kind:         report.KindMatch,
		Title:        "  Derby debrief  ",
		Body:         "Strong second half, sloppy buildup before the break.",
	})
	if err != nil {
		t.Fatalf("create report: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated report id")
	}
	if created.Title != "Derby debrief" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
}

func TestReportService_CreateReport_AuthorMissingUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reportRepo := reportmock.NewRepository(t)
	userRepo := usermock.NewRepository(t)

	service := NewReportService(reportRepo, userRepo, &sequenceIDGenerator{prefix: "rep"})

	userRepo.
		On("GetByID", mock.Anything, "usr-ghost").
		Return(user.User{}, false, nil).
		Once()

	_, err := service.CreateReport(ctx, CreateReportInput{
		AuthorUserID: "usr-ghost",
		Kind:         report.KindTraining,
		Title:        "Tuesday drills",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "User not found" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestReportService_UpdateReport_UnknownKindUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reportRepo := reportmock.NewRepository(t)
	userRepo := usermock.NewRepository(t)

	service := NewReportService(reportRepo, userRepo, &sequenceIDGenerator{prefix: "rep"})

	bogus := report.Kind("gossip")
	_, err := service.UpdateReport(ctx, "rep-1", report.Patch{Kind: &bogus})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
