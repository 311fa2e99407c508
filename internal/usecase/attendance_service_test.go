package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/attendance"
	"github.com/teamtally/clubdesk/internal/domain/match"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
	"github.com/teamtally/clubdesk/internal/platform/logging"
)

func newAttendanceServiceFixture(t *testing.T) (*AttendanceService, *memory.AttendanceRepository) {
	t.Helper()

	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo)
	matchRepo := memory.NewMatchRepository([]match.Match{{
		ID:        "match-01",
		TeamID:    "team-falcons-u17",
		Opponent:  "Rovers U17",
		KickoffAt: time.Date(2026, 9, 5, 14, 0, 0, 0, time.UTC),
		Venue:     match.VenueHome,
		Status:    match.StatusScheduled,
	}})
	attendanceRepo := memory.NewAttendanceRepository(nil)

	service := NewAttendanceService(
		attendanceRepo,
		matchRepo,
		playerRepo,
		&sequenceIDGenerator{prefix: "att"},
		logging.NewNop(),
	)

	return service, attendanceRepo
}

func TestAttendanceService_RecordBulk(t *testing.T) {
	service, _ := newAttendanceServiceFixture(t)

	created, err := service.RecordBulk(t.Context(), "match-01", []RecordAttendanceInput{
		{PlayerID: "ply-01", Status: attendance.StatusPresent},
		{PlayerID: "ply-02", Status: attendance.StatusAbsent, Note: "injured"},
		{PlayerID: "ply-03", Status: attendance.StatusExcused},
	})
	if err != nil {
		t.Fatalf("record bulk failed: %v", err)
	}

	if len(created) != 3 {
		t.Fatalf("expected 3 records, got %d", len(created))
	}
	for i := 1; i < len(created); i++ {
		if created[i-1].PlayerID >= created[i].PlayerID {
			t.Fatalf("expected records ordered by player id, got %v before %v", created[i-1].PlayerID, created[i].PlayerID)
		}
	}

	listed, err := service.ListAttendance(t.Context(), attendance.Filter{MatchID: "match-01"})
	if err != nil {
		t.Fatalf("list attendance failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 stored records, got %d", len(listed))
	}
}

func TestAttendanceService_RecordBulk_DuplicatePlayer(t *testing.T) {
	service, _ := newAttendanceServiceFixture(t)

	_, err := service.RecordBulk(t.Context(), "match-01", []RecordAttendanceInput{
		{PlayerID: "ply-01", Status: attendance.StatusPresent},
		{PlayerID: "ply-01", Status: attendance.StatusAbsent},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for duplicate player, got %v", err)
	}
}

func TestAttendanceService_RecordBulk_MatchMissing(t *testing.T) {
	service, _ := newAttendanceServiceFixture(t)

	_, err := service.RecordBulk(t.Context(), "match-missing", []RecordAttendanceInput{
		{PlayerID: "ply-01", Status: attendance.StatusPresent},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Match not found" {
		t.Fatalf("expected exact message, got %q", err.Error())
	}
}

func TestAttendanceService_RecordBulk_UnknownPlayerAborts(t *testing.T) {
	service, _ := newAttendanceServiceFixture(t)

	_, err := service.RecordBulk(t.Context(), "match-01", []RecordAttendanceInput{
		{PlayerID: "ply-01", Status: attendance.StatusPresent},
		{PlayerID: "ply-ghost", Status: attendance.StatusPresent},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown player, got %v", err)
	}
}

func TestAttendanceService_RecordAttendance_UnknownStatus(t *testing.T) {
	service, _ := newAttendanceServiceFixture(t)

	_, err := service.RecordAttendance(t.Context(), "match-01", RecordAttendanceInput{
		PlayerID: "ply-01",
		Status:   attendance.Status("maybe"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown status, got %v", err)
	}
}
