package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail-api/internal/application"
	"github.com/jobtrail/jobtrail-api/internal/container"
	"github.com/jobtrail/jobtrail-api/internal/infrastructure/postgres"
	handlers "github.com/jobtrail/jobtrail-api/internal/interface/http"
	"github.com/jobtrail/jobtrail-api/internal/interface/middleware"
	"github.com/jobtrail/jobtrail-api/internal/router/modules"
)

type deps struct {
	auth       gin.HandlerFunc
	user       *handlers.UserHandler
	job        *handlers.JobHandler
	savedJob   *handlers.SavedJobHandler
	company    *handlers.CompanyHandler
	resume     *handlers.ResumeHandler
	statistics *handlers.StatisticsHandler
}

func buildDeps() *deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	verbose := cfg.Env != "production"

	userRepo := postgres.NewUserRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	savedJobRepo := postgres.NewSavedJobRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	resumeRepo := postgres.NewResumeRepository(pool)
	statsRepo := postgres.NewStatisticsRepository(pool)

	// A nil *RabbitPublisher must stay a nil interface so the service
	// can skip publishing when the broker is not configured.
	var emails application.EmailPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		emails = pub
	}

	userSvc := application.NewUserService(userRepo, container.GetJWT(), container.GetRedis(), logger, container.GetGCS(), cfg.GCSBucket, emails)
	jobSvc := application.NewJobService(jobRepo, resumeRepo, logger)
	savedJobSvc := application.NewSavedJobService(savedJobRepo, logger)
	companySvc := application.NewCompanyService(companyRepo, logger)
	resumeSvc := application.NewResumeService(resumeRepo, cfg.ResumeMaxBytes, logger)
	statsSvc := application.NewStatisticsService(statsRepo, logger)

	return &deps{
		auth:       middleware.Auth(container.GetJWT(), userRepo, container.GetRedis()),
		user:       handlers.NewUserHandler(userSvc, logger, verbose),
		job:        handlers.NewJobHandler(jobSvc, logger, verbose),
		savedJob:   handlers.NewSavedJobHandler(savedJobSvc, logger, verbose),
		company:    handlers.NewCompanyHandler(companySvc, logger, verbose),
		resume:     handlers.NewResumeHandler(resumeSvc, logger, verbose),
		statistics: handlers.NewStatisticsHandler(statsSvc, logger, verbose),
	}
}

// InitModules assembles every feature module and registers its routes
// under /api.
func InitModules(r *Registry) {
	d := buildDeps()

	r.Add(
		modules.NewUserModule(d.user, d.auth),
		modules.NewJobModule(d.job, d.auth),
		modules.NewSavedJobModule(d.savedJob, d.auth),
		modules.NewCompanyModule(d.company, d.auth),
		modules.NewResumeModule(d.resume, d.auth),
		modules.NewStatisticsModule(d.statistics, d.auth),
	)
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}

	r.RegisterAll()
}
