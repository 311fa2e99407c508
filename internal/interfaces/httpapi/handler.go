package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/teamtally/clubdesk/internal/platform/logging"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	divisionService   *usecase.DivisionService
	userService       *usecase.UserService
	matchService      *usecase.MatchService
	attendanceService *usecase.AttendanceService
	formationService  *usecase.FormationService
	paymentService    *usecase.PaymentService
	messageService    *usecase.MessageService
	predictionService *usecase.PredictionService
	reportService     *usecase.ReportService
	statisticService  *usecase.StatisticService
	logger            *logging.Logger
	validator         *validator.Validate
}

// Services bundles every usecase the HTTP surface exposes; it keeps the
// handler constructor readable.
type Services struct {
	Team       *usecase.TeamService
	Player     *usecase.PlayerService
	Division   *usecase.DivisionService
	User       *usecase.UserService
	Match      *usecase.MatchService
	Attendance *usecase.AttendanceService
	Formation  *usecase.FormationService
	Payment    *usecase.PaymentService
	Message    *usecase.MessageService
	Prediction *usecase.PredictionService
	Report     *usecase.ReportService
	Statistic  *usecase.StatisticService
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       services.Team,
		playerService:     services.Player,
		divisionService:   services.Division,
		userService:       services.User,
		matchService:      services.Match,
		attendanceService: services.Attendance,
		formationService:  services.Formation,
		paymentService:    services.Payment,
		messageService:    services.Message,
		predictionService: services.Prediction,
		reportService:     services.Report,
		statisticService:  services.Statistic,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
