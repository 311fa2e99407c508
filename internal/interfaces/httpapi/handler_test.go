package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/teamtally/clubdesk/internal/domain/user"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
	"github.com/teamtally/clubdesk/internal/platform/cache"
	"github.com/teamtally/clubdesk/internal/platform/id"
	"github.com/teamtally/clubdesk/internal/platform/logging"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type staticVerifier struct {
	principal user.Principal
}

func (v staticVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	if token == "" {
		return user.Principal{}, usecase.ErrUnauthorized
	}
	return v.principal, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	idGen := id.NewRandomGenerator()
	logger := logging.NewNop()

	divisionRepo := memory.NewDivisionRepository(memory.SeedDivisions())
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo)
	matchRepo := memory.NewMatchRepository(nil)
	attendanceRepo := memory.NewAttendanceRepository(nil)
	formationRepo := memory.NewFormationRepository(nil)
	paymentRepo := memory.NewPaymentRepository(nil)
	messageRepo := memory.NewMessageRepository(nil)
	predictionRepo := memory.NewPredictionRepository(nil)
	reportRepo := memory.NewReportRepository(nil)
	statisticRepo := memory.NewStatisticRepository(nil)

	handler := NewHandler(Services{
		Team:       usecase.NewTeamService(teamRepo, divisionRepo, userRepo, idGen),
		Player:     usecase.NewPlayerService(playerRepo, teamRepo, idGen),
		Division:   usecase.NewDivisionService(divisionRepo, cache.NewStore(time.Minute), idGen),
		User:       usecase.NewUserService(userRepo, idGen),
		Match:      usecase.NewMatchService(matchRepo, teamRepo, idGen),
		Attendance: usecase.NewAttendanceService(attendanceRepo, matchRepo, playerRepo, idGen, logger),
		Formation:  usecase.NewFormationService(formationRepo, matchRepo, playerRepo, idGen),
		Payment:    usecase.NewPaymentService(paymentRepo, userRepo, idGen),
		Message:    usecase.NewMessageService(messageRepo, teamRepo, playerRepo, userRepo, idGen, logger, 2),
		Prediction: usecase.NewPredictionService(predictionRepo, matchRepo, idGen),
		Report:     usecase.NewReportService(reportRepo, userRepo, idGen),
		Statistic:  usecase.NewStatisticService(statisticRepo, playerRepo, idGen),
	}, logger)

	verifier := staticVerifier{principal: user.Principal{
		UserID: memory.UserIDDemoCoach,
		Email:  "coach@fcfalcons.example",
		Role:   user.RoleCoach,
	}}

	return NewRouter(handler, verifier, logger, []string{"*"})
}

func TestRouter_GetPlayer_MissingID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/players/ply-ghost", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body["error"] != "Player not found" {
		t.Fatalf("unexpected error body: %q", body["error"])
	}
}

func TestRouter_GetPlayer_Seeded(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/players/ply-01", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body playerDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.ID != "ply-01" {
		t.Fatalf("unexpected player id %q", body.ID)
	}
	if len(body.TeamIDs) == 0 {
		t.Fatal("expected seeded player to be on a roster")
	}
}

func TestRouter_MissingAuthorization(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/players/ply-01", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_RegisterUser_Public(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"email":"New.Coach@Example.org","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body userDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Email != "new.coach@example.org" {
		t.Fatalf("expected lowercased email, got %q", body.Email)
	}
	if body.Role != string(user.RoleCoach) {
		t.Fatalf("expected default coach role, got %q", body.Role)
	}
}

func TestRouter_CreateTeam_OwnerFromPrincipal(t *testing.T) {
	router := newTestRouter(t)

	payload := `{"name":"Falcons U19","club_name":"FC Harriers","division_id":"` + memory.DivisionIDSenior + `","max_players":18,"squad_age":23,"gender":"mixed","category":"senior"}`
	req := httptest.NewRequest(http.MethodPost, "/api/teams", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body teamDTO
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.OwnerUserID != memory.UserIDDemoCoach {
		t.Fatalf("expected owner from token principal, got %q", body.OwnerUserID)
	}
}

func TestRouter_DeleteTeam_NoContent(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/teams/team-falcons-u17", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}

func TestRouter_Healthz_NoAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
