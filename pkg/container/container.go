package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/queue"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	"portfolio-backend/internal/domains/auth"
	authHandler "portfolio-backend/internal/domains/auth/handler"
	authService "portfolio-backend/internal/domains/auth/service"
	"portfolio-backend/internal/domains/contact"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	contactService "portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/domains/education"
	educationHandler "portfolio-backend/internal/domains/education/handler"
	educationRepo "portfolio-backend/internal/domains/education/repository"
	educationService "portfolio-backend/internal/domains/education/service"
	"portfolio-backend/internal/domains/experience"
	mediaHandler "portfolio-backend/internal/domains/media/handler"
	experienceHandler "portfolio-backend/internal/domains/experience/handler"
	experienceRepo "portfolio-backend/internal/domains/experience/repository"
	experienceService "portfolio-backend/internal/domains/experience/service"
	"portfolio-backend/internal/domains/profile"
	profileHandler "portfolio-backend/internal/domains/profile/handler"
	profileRepo "portfolio-backend/internal/domains/profile/repository"
	profileService "portfolio-backend/internal/domains/profile/service"
	"portfolio-backend/internal/domains/project"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/domains/skill"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	skillRepo "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/domains/stats"
	statsHandler "portfolio-backend/internal/domains/stats/handler"
	statsRepo "portfolio-backend/internal/domains/stats/repository"
	statsService "portfolio-backend/internal/domains/stats/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton wired once at startup, infrastructure first, then
// repositories, services and handlers on top.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Queue      *queue.Client
	Media      storage.MediaResolver
	MediaStore storage.MediaStore

	ProfileRepo    profile.Repository
	SkillRepo      skill.Repository
	ProjectRepo    project.Repository
	ExperienceRepo experience.Repository
	EducationRepo  education.Repository
	ContactRepo    contact.Repository
	StatsRepo      stats.Repository

	ProfileService    profile.Service
	SkillService      skill.Service
	ProjectService    project.Service
	ExperienceService experience.Service
	EducationService  education.Service
	ContactService    contact.Service
	StatsService      stats.Service
	AuthService       auth.Service

	ProfileHandler    *profileHandler.ProfileHandler
	SkillHandler      *skillHandler.SkillHandler
	ProjectHandler    *projectHandler.ProjectHandler
	ExperienceHandler *experienceHandler.ExperienceHandler
	EducationHandler  *educationHandler.EducationHandler
	ContactHandler    *contactHandler.ContactHandler
	StatsHandler      *statsHandler.StatsHandler
	AuthHandler       *authHandler.AuthHandler
	MediaHandler      *mediaHandler.MediaHandler
}

// New builds the full dependency graph. Redis and MinIO are optional:
// when either is unreachable the container falls back to an in-process
// cache and a base-URL media resolver so the API still serves.
func New(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db := database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	c.Cache = connectCache(cfg.Redis)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Media = resolveMedia(cfg.MinIO)
	if store, ok := c.Media.(storage.MediaStore); ok {
		c.MediaStore = store
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

// connectCache prefers Redis and degrades to the in-process cache when
// it is unreachable.
func connectCache(cfg config.RedisConfig) cache.Cache {
	redisCache := infraCache.NewRedisCache(cfg.Host, cfg.Password, cfg.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis unavailable, using in-process cache", map[string]interface{}{
			"error": err.Error(),
		})
		return cache.NewMemoryCache(5 * time.Minute)
	}
	return redisCache
}

// resolveMedia prefers MinIO; a configured MEDIA_BASE_URL or an
// unreachable object store falls back to plain URL joining.
func resolveMedia(cfg config.MinIOConfig) storage.MediaResolver {
	if cfg.PublicBaseURL != "" {
		return &storage.BaseURLResolver{BaseURL: cfg.PublicBaseURL}
	}

	minioStorage, err := storage.NewMinIOStorage(cfg)
	if err != nil {
		logger.Warn("minio unavailable, media keys resolve against endpoint", map[string]interface{}{
			"error": err.Error(),
		})
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		return &storage.BaseURLResolver{
			BaseURL: fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket),
		}
	}
	return minioStorage
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ProfileRepo = profileRepo.NewPostgresRepository(pool)
	c.SkillRepo = skillRepo.NewPostgresRepository(pool)
	c.ProjectRepo = projectRepo.NewPostgresRepository(pool)
	c.ExperienceRepo = experienceRepo.NewPostgresRepository(pool)
	c.EducationRepo = educationRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.StatsRepo = statsRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.ProfileService = profileService.NewProfileService(c.ProfileRepo, c.Cache, cfg.Cache.ProfileTTL, c.Media)
	c.SkillService = skillService.NewSkillService(c.SkillRepo, c.Cache, cfg.Cache.ListTTL)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo, c.Cache, c.Media, cfg.Cache.ListTTL)
	c.ExperienceService = experienceService.NewExperienceService(c.ExperienceRepo)
	c.EducationService = educationService.NewEducationService(c.EducationRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Queue)
	c.StatsService = statsService.NewStatsService(c.StatsRepo, c.Cache, cfg.Cache.StatsTTL)
	c.AuthService = authService.NewAuthService(cfg.Admin, c.JWTManager, cfg.JWT.Expiry)
}

func (c *Container) initHandlers() {
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.SkillHandler = skillHandler.NewSkillHandler(c.SkillService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.ExperienceHandler = experienceHandler.NewExperienceHandler(c.ExperienceService)
	c.EducationHandler = educationHandler.NewEducationHandler(c.EducationService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.StatsHandler = statsHandler.NewStatsHandler(c.StatsService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaStore)
}

// Cleanup releases held connections during graceful shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
