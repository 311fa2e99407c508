package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/teamtally/clubdesk/internal/config"
	"github.com/teamtally/clubdesk/internal/domain/attendance"
	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/formation"
	"github.com/teamtally/clubdesk/internal/domain/match"
	"github.com/teamtally/clubdesk/internal/domain/message"
	"github.com/teamtally/clubdesk/internal/domain/payment"
	"github.com/teamtally/clubdesk/internal/domain/player"
	"github.com/teamtally/clubdesk/internal/domain/prediction"
	"github.com/teamtally/clubdesk/internal/domain/report"
	"github.com/teamtally/clubdesk/internal/domain/statistic"
	"github.com/teamtally/clubdesk/internal/domain/team"
	"github.com/teamtally/clubdesk/internal/domain/user"
	"github.com/teamtally/clubdesk/internal/infrastructure/account/passport"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/memory"
	"github.com/teamtally/clubdesk/internal/infrastructure/repository/postgres"
	"github.com/teamtally/clubdesk/internal/interfaces/httpapi"
	"github.com/teamtally/clubdesk/internal/platform/cache"
	idgen "github.com/teamtally/clubdesk/internal/platform/id"
	"github.com/teamtally/clubdesk/internal/platform/logging"
	"github.com/teamtally/clubdesk/internal/platform/resilience"
	"github.com/teamtally/clubdesk/internal/usecase"
)

type repositories struct {
	team       team.Repository
	player     player.Repository
	division   division.Repository
	user       user.Repository
	match      match.Repository
	attendance attendance.Repository
	formation  formation.Repository
	payment    payment.Repository
	message    message.Repository
	prediction prediction.Repository
	report     report.Repository
	statistic  statistic.Repository
	close      func() error
}

// NewHTTPServer wires repositories, services, and the HTTP router into a
// ready-to-run server. The returned closer releases the database handle and
// must be called after the server shuts down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	idGen := idgen.NewRandomGenerator()

	var divisionCache *cache.Store
	if cfg.CacheEnabled {
		divisionCache = cache.NewStore(cfg.CacheTTL)
	}

	services := httpapi.Services{
		Team:       usecase.NewTeamService(repos.team, repos.division, repos.user, idGen),
		Player:     usecase.NewPlayerService(repos.player, repos.team, idGen),
		Division:   usecase.NewDivisionService(repos.division, divisionCache, idGen),
		User:       usecase.NewUserService(repos.user, idGen),
		Match:      usecase.NewMatchService(repos.match, repos.team, idGen),
		Attendance: usecase.NewAttendanceService(repos.attendance, repos.match, repos.player, idGen, logger),
		Formation:  usecase.NewFormationService(repos.formation, repos.match, repos.player, idGen),
		Payment:    usecase.NewPaymentService(repos.payment, repos.user, idGen),
		Message:    usecase.NewMessageService(repos.message, repos.team, repos.player, repos.user, idGen, logger, cfg.BroadcastWorkers),
		Prediction: usecase.NewPredictionService(repos.prediction, repos.match, idGen),
		Report:     usecase.NewReportService(repos.report, repos.user, idGen),
		Statistic:  usecase.NewStatisticService(repos.statistic, repos.player, idGen),
	}

	verifier := passport.NewClient(passport.Config{
		BaseURL:        cfg.PassportBaseURL,
		IntrospectPath: cfg.PassportIntrospectPath,
		Timeout:        cfg.PassportTimeout,
		CacheTTL:       cfg.PassportCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PassportCircuitEnabled,
			FailureThreshold: cfg.PassportCircuitFailureCount,
			OpenTimeout:      cfg.PassportCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PassportCircuitHalfOpenMax,
		},
	}, logger)

	handler := httpapi.NewHandler(services, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		repos.closeQuiet(logger)
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.close, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("database url empty, using in-memory repositories with demo seed data")
		return buildMemoryRepositories(), nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, err
	}

	logger.Info("connected to postgres", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		team:       postgres.NewTeamRepository(db),
		player:     postgres.NewPlayerRepository(db),
		division:   postgres.NewDivisionRepository(db),
		user:       postgres.NewUserRepository(db),
		match:      postgres.NewMatchRepository(db),
		attendance: postgres.NewAttendanceRepository(db),
		formation:  postgres.NewFormationRepository(db),
		payment:    postgres.NewPaymentRepository(db),
		message:    postgres.NewMessageRepository(db),
		prediction: postgres.NewPredictionRepository(db),
		report:     postgres.NewReportRepository(db),
		statistic:  postgres.NewStatisticRepository(db),
		close:      db.Close,
	}, nil
}

func buildMemoryRepositories() repositories {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())

	return repositories{
		team:       teamRepo,
		player:     memory.NewPlayerRepository(memory.SeedPlayers(), teamRepo),
		division:   memory.NewDivisionRepository(memory.SeedDivisions()),
		user:       memory.NewUserRepository(memory.SeedUsers()),
		match:      memory.NewMatchRepository(nil),
		attendance: memory.NewAttendanceRepository(nil),
		formation:  memory.NewFormationRepository(nil),
		payment:    memory.NewPaymentRepository(nil),
		message:    memory.NewMessageRepository(nil),
		prediction: memory.NewPredictionRepository(nil),
		report:     memory.NewReportRepository(nil),
		statistic:  memory.NewStatisticRepository(nil),
		close:      func() error { return nil },
	}
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func (r repositories) closeQuiet(logger *logging.Logger) {
	if r.close == nil {
		return
	}
	if err := r.close(); err != nil {
		logger.Warn("close repositories", "error", err)
	}
}
