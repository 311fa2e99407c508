package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/report"
	"github.com/teamtally/clubdesk/internal/domain/user"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreateReportInput is the incoming payload for a coach write-up.
type CreateReportInput struct {
	AuthorUserID string
	Kind         report.Kind
	Title        string
	Body         string
}

type ReportService struct {
	reportRepo report.Repository
	userRepo   user.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewReportService(reportRepo report.Repository, userRepo user.Repository, idGen idgen.Generator) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *ReportService) CreateReport(ctx context.Context, input CreateReportInput) (report.Report, error) {
	input.AuthorUserID = strings.TrimSpace(input.AuthorUserID)
	input.Title = strings.TrimSpace(input.Title)

	if input.AuthorUserID == "" {
		return report.Report{}, fmt.Errorf("%w: author user id is required", ErrInvalidInput)
	}
	if input.Title == "" {
		return report.Report{}, fmt.Errorf("%w: report title is required", ErrInvalidInput)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, input.AuthorUserID); err != nil {
		return report.Report{}, fmt.Errorf("get author: %w", err)
	} else if !exists {
		return report.Report{}, notFound("User")
	}

	reportID, err := s.idGen.NewID()
	if err != nil {
		return report.Report{}, fmt.Errorf("generate report id: %w", err)
	}

	now := s.now().UTC()
	rep := report.Report{
		ID:           reportID,
		AuthorUserID: input.AuthorUserID,
		Kind:         input.Kind,
		Title:        input.Title,
		Body:         input.Body,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := rep.Validate(); err != nil {
		return report.Report{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.reportRepo.Create(ctx, rep)
	if err != nil {
		return report.Report{}, fmt.Errorf("create report: %w", err)
	}

	return created, nil
}

func (s *ReportService) GetReport(ctx context.Context, id string) (report.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return report.Report{}, fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}

	rep, exists, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.Report{}, fmt.Errorf("get report: %w", err)
	}
	if !exists {
		return report.Report{}, notFound("Report")
	}

	return rep, nil
}

func (s *ReportService) ListReports(ctx context.Context, f report.Filter) ([]report.Report, error) {
	if f.Kind != "" {
		if _, ok := report.AllKinds[f.Kind]; !ok {
			return nil, fmt.Errorf("%w: unknown report kind %q", ErrInvalidInput, f.Kind)
		}
	}

	reports, err := s.reportRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	return reports, nil
}

func (s *ReportService) UpdateReport(ctx context.Context, id string, p report.Patch) (report.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return report.Report{}, fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return report.Report{}, fmt.Errorf("%w: report title cannot be empty", ErrInvalidInput)
	}
	if p.Kind != nil {
		if _, ok := report.AllKinds[*p.Kind]; !ok {
			return report.Report{}, fmt.Errorf("%w: unknown report kind %q", ErrInvalidInput, *p.Kind)
		}
	}

	updated, exists, err := s.reportRepo.Update(ctx, id, p)
	if err != nil {
		return report.Report{}, fmt.Errorf("update report: %w", err)
	}
	if !exists {
		return report.Report{}, notFound("Report")
	}

	return updated, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}

	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	return nil
}
