package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/teamtally/clubdesk/internal/domain/attendance"
	"github.com/teamtally/clubdesk/internal/domain/match"
	"github.com/teamtally/clubdesk/internal/domain/player"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
	"github.com/teamtally/clubdesk/internal/platform/logging"
)

const bulkRecordWorkers = 8

// RecordAttendanceInput is one player's mark for a match.
type RecordAttendanceInput struct {
	PlayerID string
	Status   attendance.Status
	Note     string
}

type AttendanceService struct {
	attendanceRepo attendance.Repository
	matchRepo      match.Repository
	playerRepo     player.Repository
	idGen          idgen.Generator
	logger         *logging.Logger
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *AttendanceService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		matchRepo:      matchRepo,
		playerRepo:     playerRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *AttendanceService) RecordAttendance(ctx context.Context, matchID string, input RecordAttendanceInput) (attendance.Record, error) {
	matchID = strings.TrimSpace(matchID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)

	if matchID == "" {
		return attendance.Record{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return attendance.Record{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return attendance.Record{}, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return attendance.Record{}, notFound("Match")
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return attendance.Record{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return attendance.Record{}, notFound("Player")
	}

	recordID, err := s.idGen.NewID()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("generate attendance id: %w", err)
	}

	now := s.now().UTC()
	rec := attendance.Record{
		ID:        recordID,
		PlayerID:  input.PlayerID,
		MatchID:   matchID,
		Status:    input.Status,
		Note:      strings.TrimSpace(input.Note),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := rec.Validate(); err != nil {
		return attendance.Record{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.attendanceRepo.Create(ctx, rec)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("create attendance: %w", err)
	}

	return created, nil
}

// RecordBulk marks attendance for a whole roster in one call. Inputs are
// validated up front; the inserts then run concurrently and the first failure
// aborts the remainder.
func (s *AttendanceService) RecordBulk(ctx context.Context, matchID string, inputs []RecordAttendanceInput) ([]attendance.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "AttendanceService.RecordBulk")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one attendance record is required", ErrInvalidInput)
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	} else if !exists {
		return nil, notFound("Match")
	}

	seen := make(map[string]struct{}, len(inputs))
	for i := range inputs {
		inputs[i].PlayerID = strings.TrimSpace(inputs[i].PlayerID)
		if inputs[i].PlayerID == "" {
			return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
		}
		if _, dup := seen[inputs[i].PlayerID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %s", ErrInvalidInput, inputs[i].PlayerID)
		}
		seen[inputs[i].PlayerID] = struct{}{}
		if _, ok := attendance.AllStatuses[inputs[i].Status]; !ok {
			return nil, fmt.Errorf("%w: unknown attendance status %q", ErrInvalidInput, inputs[i].Status)
		}
	}

	now := s.now().UTC()
	var mu sync.Mutex
	created := make([]attendance.Record, 0, len(inputs))

	workers := pool.New().WithErrors().WithMaxGoroutines(bulkRecordWorkers)
	for _, input := range inputs {
		input := input
		workers.Go(func() error {
			if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
				return fmt.Errorf("get player: %w", err)
			} else if !exists {
				return notFound("Player")
			}

			recordID, err := s.idGen.NewID()
			if err != nil {
				return fmt.Errorf("generate attendance id: %w", err)
			}

			rec, err := s.attendanceRepo.Create(ctx, attendance.Record{
				ID:        recordID,
				PlayerID:  input.PlayerID,
				MatchID:   matchID,
				Status:    input.Status,
				Note:      strings.TrimSpace(input.Note),
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("create attendance: %w", err)
			}

			mu.Lock()
			created = append(created, rec)
			mu.Unlock()
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		s.logger.WarnContext(ctx, "bulk attendance aborted", "match_id", matchID, "error", err.Error())
		return nil, err
	}

	sort.Slice(created, func(i, j int) bool { return created[i].PlayerID < created[j].PlayerID })

	return created, nil
}

func (s *AttendanceService) GetAttendance(ctx context.Context, id string) (attendance.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return attendance.Record{}, fmt.Errorf("%w: attendance id is required", ErrInvalidInput)
	}

	rec, exists, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("get attendance: %w", err)
	}
	if !exists {
		return attendance.Record{}, notFound("Attendance")
	}

	return rec, nil
}

func (s *AttendanceService) ListAttendance(ctx context.Context, f attendance.Filter) ([]attendance.Record, error) {
	if f.Status != "" {
		if _, ok := attendance.AllStatuses[f.Status]; !ok {
			return nil, fmt.Errorf("%w: unknown attendance status %q", ErrInvalidInput, f.Status)
		}
	}

	records, err := s.attendanceRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	return records, nil
}

func (s *AttendanceService) UpdateAttendance(ctx context.Context, id string, p attendance.Patch) (attendance.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return attendance.Record{}, fmt.Errorf("%w: attendance id is required", ErrInvalidInput)
	}
	if p.Status != nil {
		if _, ok := attendance.AllStatuses[*p.Status]; !ok {
			return attendance.Record{}, fmt.Errorf("%w: unknown attendance status %q", ErrInvalidInput, *p.Status)
		}
	}

	updated, exists, err := s.attendanceRepo.Update(ctx, id, p)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("update attendance: %w", err)
	}
	if !exists {
		return attendance.Record{}, notFound("Attendance")
	}

	return updated, nil
}

func (s *AttendanceService) DeleteAttendance(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: attendance id is required", ErrInvalidInput)
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	return nil
}
