package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/platform/cache"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
)

// CreateDivisionInput is the incoming payload for a new division.
type CreateDivisionInput struct {
	Name     string
	Gender   division.Gender
	Category string
	AgeMin   int
	AgeMax   int
}

// DivisionService caches single-division reads; divisions change rarely but
// are consulted on every team registration.
type DivisionService struct {
	divisionRepo division.Repository
	cache        *cache.Store
	idGen        idgen.Generator
	now          func() time.Time
}

func NewDivisionService(divisionRepo division.Repository, store *cache.Store, idGen idgen.Generator) *DivisionService {
	return &DivisionService{
		divisionRepo: divisionRepo,
		cache:        store,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *DivisionService) CreateDivision(ctx context.Context, input CreateDivisionInput) (division.Division, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)

	if input.Name == "" {
		return division.Division{}, fmt.Errorf("%w: division name is required", ErrInvalidInput)
	}

	divisionID, err := s.idGen.NewID()
	if err != nil {
		return division.Division{}, fmt.Errorf("generate division id: %w", err)
	}

	now := s.now().UTC()
	d := division.Division{
		ID:        divisionID,
		Name:      input.Name,
		Gender:    input.Gender,
		Category:  input.Category,
		AgeMin:    input.AgeMin,
		AgeMax:    input.AgeMax,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := d.Validate(); err != nil {
		return division.Division{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	created, err := s.divisionRepo.Create(ctx, d)
	if err != nil {
		return division.Division{}, fmt.Errorf("create division: %w", err)
	}

	return created, nil
}

func (s *DivisionService) GetDivision(ctx context.Context, id string) (division.Division, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return division.Division{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}

	value, err := s.cache.GetOrLoad(ctx, divisionCacheKey(id), func(ctx context.Context) (any, error) {
		d, exists, err := s.divisionRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get division: %w", err)
		}
		if !exists {
			return nil, notFound("Division")
		}
		return d, nil
	})
	if err != nil {
		return division.Division{}, err
	}

	d, ok := value.(division.Division)
	if !ok {
		return division.Division{}, fmt.Errorf("unexpected cached value for division %s", id)
	}

	return d, nil
}

func (s *DivisionService) ListDivisions(ctx context.Context, f division.Filter) ([]division.Division, error) {
	if f.Gender != "" {
		if _, ok := division.AllGenders[f.Gender]; !ok {
			return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, f.Gender)
		}
	}

	divisions, err := s.divisionRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}

	return divisions, nil
}

func (s *DivisionService) UpdateDivision(ctx context.Context, id string, p division.Patch) (division.Division, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return division.Division{}, fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return division.Division{}, fmt.Errorf("%w: division name cannot be empty", ErrInvalidInput)
	}
	if p.Gender != nil {
		if _, ok := division.AllGenders[*p.Gender]; !ok {
			return division.Division{}, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, *p.Gender)
		}
	}

	// Merge the patch over the current row so cross-field bounds can be
	// checked before anything is written.
	current, exists, err := s.divisionRepo.GetByID(ctx, id)
	if err != nil {
		return division.Division{}, fmt.Errorf("get division: %w", err)
	}
	if !exists {
		return division.Division{}, notFound("Division")
	}
	merged := current
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Gender != nil {
		merged.Gender = *p.Gender
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.AgeMin != nil {
		merged.AgeMin = *p.AgeMin
	}
	if p.AgeMax != nil {
		merged.AgeMax = *p.AgeMax
	}
	if err := merged.Validate(); err != nil {
		return division.Division{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	updated, exists, err := s.divisionRepo.Update(ctx, id, p)
	if err != nil {
		return division.Division{}, fmt.Errorf("update division: %w", err)
	}
	if !exists {
		return division.Division{}, notFound("Division")
	}

	s.cache.Delete(ctx, divisionCacheKey(id))

	return updated, nil
}

func (s *DivisionService) DeleteDivision(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: division id is required", ErrInvalidInput)
	}

	if err := s.divisionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete division: %w", err)
	}
	s.cache.Delete(ctx, divisionCacheKey(id))

	return nil
}

func divisionCacheKey(id string) string {
	return "division:" + id
}
