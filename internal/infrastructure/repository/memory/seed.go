package memory

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/player"
	"github.com/teamtally/clubdesk/internal/domain/team"
	"github.com/teamtally/clubdesk/internal/domain/user"
)

const (
	DivisionIDU17Boys  = "div-u17-boys"
	DivisionIDU19Girls = "div-u19-girls"
	DivisionIDSenior   = "div-senior-mixed"

	UserIDDemoAdmin = "usr-demo-admin"
	UserIDDemoCoach = "usr-demo-coach"
)

// Demo dataset for running the API without a database.

func SeedDivisions() []division.Division {
	return []division.Division{
		{ID: DivisionIDU17Boys, Name: "U17 Boys", Gender: division.GenderMale, Category: "youth", AgeMin: 15, AgeMax: 17},
		{ID: DivisionIDU19Girls, Name: "U19 Girls", Gender: division.GenderFemale, Category: "youth", AgeMin: 17, AgeMax: 19},
		{ID: DivisionIDSenior, Name: "Senior Open", Gender: division.GenderMixed, Category: "senior"},
	}
}

func SeedUsers() []user.User {
	return []user.User{
		{
			ID:           UserIDDemoAdmin,
			Email:        "admin@demo.club",
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			Role:         user.RoleAdmin,
			Plan:         user.PlanUnlimited,
			IsActive:     true,
		},
		{
			ID:           UserIDDemoCoach,
			Email:        "coach@demo.club",
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			Role:         user.RoleCoach,
			Plan:         user.PlanTwoTeams,
			IsActive:     true,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:          "team-falcons-u17",
			Name:        "Falcons U17",
			ClubName:    "FC Falcons",
			DivisionID:  DivisionIDU17Boys,
			OwnerUserID: UserIDDemoCoach,
			MaxPlayers:  22,
			SquadAge:    16,
			Gender:      division.GenderMale,
			Category:    "youth",
			IsActive:    true,
		},
		{
			ID:          "team-falcons-senior",
			Name:        "Falcons Senior",
			ClubName:    "FC Falcons",
			DivisionID:  DivisionIDSenior,
			OwnerUserID: UserIDDemoAdmin,
			MaxPlayers:  25,
			SquadAge:    24,
			Gender:      division.GenderMixed,
			Category:    "senior",
			IsActive:    true,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "ply-01", Name: "Jonas Weiss", BirthDate: time.Date(2009, 3, 14, 0, 0, 0, 0, time.UTC), Position: player.PositionGoalkeeper, IsActive: true, TeamIDs: []string{"team-falcons-u17"}},
		{ID: "ply-02", Name: "Milan Kovac", BirthDate: time.Date(2009, 7, 2, 0, 0, 0, 0, time.UTC), Position: player.PositionDefender, IsActive: true, TeamIDs: []string{"team-falcons-u17"}},
		{ID: "ply-03", Name: "Tariq Bensaid", BirthDate: time.Date(2010, 1, 27, 0, 0, 0, 0, time.UTC), Position: player.PositionMidfielder, IsActive: true, TeamIDs: []string{"team-falcons-u17"}},
		{ID: "ply-04", Name: "Luca Moretti", BirthDate: time.Date(2009, 11, 9, 0, 0, 0, 0, time.UTC), Position: player.PositionForward, IsActive: true, TeamIDs: []string{"team-falcons-u17"}},
		{ID: "ply-05", Name: "Emre Aydin", BirthDate: time.Date(1999, 5, 21, 0, 0, 0, 0, time.UTC), Position: player.PositionMidfielder, IsActive: true, TeamIDs: []string{"team-falcons-senior"}},
		{ID: "ply-06", Name: "Sofia Lindqvist", BirthDate: time.Date(2001, 8, 30, 0, 0, 0, 0, time.UTC), Position: player.PositionForward, IsActive: true, TeamIDs: []string{"team-falcons-senior"}},
	}
}
