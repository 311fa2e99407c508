package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
	"github.com/teamtally/clubdesk/internal/platform/cache"
)

func newDivisionServiceFixture() (*DivisionService, *memory.DivisionRepository, *cache.Store) {
	divisionRepo := memory.NewDivisionRepository(memory.SeedDivisions())
	store := cache.NewStore(time.Minute)
	service := NewDivisionService(divisionRepo, store, &sequenceIDGenerator{prefix: "div"})

	return service, divisionRepo, store
}

func TestDivisionService_GetDivision_Caches(t *testing.T) {
	service, _, store := newDivisionServiceFixture()

	first, err := service.GetDivision(t.Context(), memory.DivisionIDU17Boys)
	if err != nil {
		t.Fatalf("get division failed: %v", err)
	}
	if first.AgeMin != 15 || first.AgeMax != 17 {
		t.Fatalf("unexpected seeded bounds: %d-%d", first.AgeMin, first.AgeMax)
	}

	if _, hit := store.Get(t.Context(), "division:"+memory.DivisionIDU17Boys); !hit {
		t.Fatal("expected division to be cached after a read")
	}
}

func TestDivisionService_UpdateDivision_InvalidatesCache(t *testing.T) {
	service, _, store := newDivisionServiceFixture()

	if _, err := service.GetDivision(t.Context(), memory.DivisionIDU17Boys); err != nil {
		t.Fatalf("get division failed: %v", err)
	}

	ageMax := 18
	updated, err := service.UpdateDivision(t.Context(), memory.DivisionIDU17Boys, division.Patch{AgeMax: &ageMax})
	if err != nil {
		t.Fatalf("update division failed: %v", err)
	}
	if updated.AgeMax != 18 {
		t.Fatalf("expected age max 18, got %d", updated.AgeMax)
	}

	if _, hit := store.Get(t.Context(), "division:"+memory.DivisionIDU17Boys); hit {
		t.Fatal("expected cache entry to be dropped after an update")
	}

	fresh, err := service.GetDivision(t.Context(), memory.DivisionIDU17Boys)
	if err != nil {
		t.Fatalf("get division after update failed: %v", err)
	}
	if fresh.AgeMax != 18 {
		t.Fatalf("expected fresh read to see age max 18, got %d", fresh.AgeMax)
	}
}

func TestDivisionService_UpdateDivision_RejectsInvertedBounds(t *testing.T) {
	service, _, _ := newDivisionServiceFixture()

	// Patching only the minimum above the stored maximum must fail before
	// anything is written.
	ageMin := 20
	_, err := service.UpdateDivision(t.Context(), memory.DivisionIDU17Boys, division.Patch{AgeMin: &ageMin})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	current, err := service.GetDivision(t.Context(), memory.DivisionIDU17Boys)
	if err != nil {
		t.Fatalf("get division failed: %v", err)
	}
	if current.AgeMin != 15 {
		t.Fatalf("expected age min untouched at 15, got %d", current.AgeMin)
	}
}

func TestDivisionService_DeleteDivision_InvalidatesCache(t *testing.T) {
	service, _, store := newDivisionServiceFixture()

	if _, err := service.GetDivision(t.Context(), memory.DivisionIDSenior); err != nil {
		t.Fatalf("get division failed: %v", err)
	}
	if err := service.DeleteDivision(t.Context(), memory.DivisionIDSenior); err != nil {
		t.Fatalf("delete division failed: %v", err)
	}

	if _, hit := store.Get(t.Context(), "division:"+memory.DivisionIDSenior); hit {
		t.Fatal("expected cache entry to be dropped after delete")
	}

	_, err := service.GetDivision(t.Context(), memory.DivisionIDSenior)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestDivisionService_CreateDivision_InvalidBounds(t *testing.T) {
	service, _, _ := newDivisionServiceFixture()

	_, err := service.CreateDivision(t.Context(), CreateDivisionInput{
		Name:     "U15 Boys",
		Gender:   division.GenderMale,
		Category: "youth",
		AgeMin:   15,
		AgeMax:   13,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
