package app

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/jobpost"
	"jobboard/internal/domain/jobseeker"
	"jobboard/internal/domain/report"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/observability"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"
	"jobboard/internal/ws"
	"jobboard/migrations"
)

// Container owns the long-lived dependencies shared by the server and the
// refresh command.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub     *ws.Hub
	JWT     jwt.Service
	Metrics *observability.Metrics

	Companies  *usecase.CachedSnapshot[company.Company]
	JobSeekers *usecase.CachedSnapshot[jobseeker.JobSeeker]
	JobPosts   *usecase.CachedSnapshot[jobpost.JobPost]
	Reports    *usecase.CachedSnapshot[report.Report]

	Directory *usecase.DirectorySearch
	ReportLog *usecase.ReportList
	Analytics *usecase.Analytics
	Refresher *usecase.SnapshotRefresher
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		JWT:    jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer, cfg.JWT.AccessExpiresIn),

		Metrics: observability.NewMetrics("jobboard"),
	}
	c.wire(loc)
	return c, nil
}

func (c *Container) wire(loc *time.Location) {
	bs := usecase.BreakerSettings{
		ConsecutiveFailures: c.Config.Snapshot.BreakerFailures,
		Timeout:             c.Config.Snapshot.BreakerTimeout,
	}

	c.Companies = usecase.NewCachedSnapshot[company.Company](usecase.SnapshotCompanies,
		usecase.NewBreakerSource[company.Company](usecase.SnapshotCompanies, repository.NewPostgresCompanyRepository(c.DB), bs, c.Logger),
		c.Cache, c.Logger)
	c.JobSeekers = usecase.NewCachedSnapshot[jobseeker.JobSeeker](usecase.SnapshotJobSeekers,
		usecase.NewBreakerSource[jobseeker.JobSeeker](usecase.SnapshotJobSeekers, repository.NewPostgresJobSeekerRepository(c.DB), bs, c.Logger),
		c.Cache, c.Logger)
	c.JobPosts = usecase.NewCachedSnapshot[jobpost.JobPost](usecase.SnapshotJobPosts,
		usecase.NewBreakerSource[jobpost.JobPost](usecase.SnapshotJobPosts, repository.NewPostgresJobPostRepository(c.DB), bs, c.Logger),
		c.Cache, c.Logger)
	c.Reports = usecase.NewCachedSnapshot[report.Report](usecase.SnapshotReports,
		usecase.NewBreakerSource[report.Report](usecase.SnapshotReports, repository.NewPostgresReportRepository(c.DB), bs, c.Logger),
		c.Cache, c.Logger)

	c.Directory = usecase.NewDirectorySearch(c.Companies, c.JobSeekers, c.JobPosts, c.Logger)
	c.ReportLog = usecase.NewReportList(c.Reports, c.Logger)
	c.Analytics = usecase.NewAnalytics(repository.NewPostgresMetricsRepository(c.DB), loc, c.Logger)
	c.Refresher = usecase.NewSnapshotRefresher(c.Hub, c.Logger, c.Companies, c.JobSeekers, c.JobPosts, c.Reports)
	c.Refresher.SetObserver(c.Metrics)
}

// Migrate applies pending migrations and checks the columns the snapshot
// queries depend on.
func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{FS: MigrationsFS(c.Config.Database.MigrationsDir), Logger: c.Logger}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return database.EnsureSchema(ctx, c.DB)
}

// MigrationsFS prefers an on-disk directory so operators can ship extra
// migrations, and falls back to the embedded set.
func MigrationsFS(dir string) fs.FS {
	if dir != "" {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return os.DirFS(dir)
		}
	}
	return migrations.FS
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
