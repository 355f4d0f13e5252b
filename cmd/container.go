package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Abraxas-365/ascent/advisory/analysis"
	"github.com/Abraxas-365/ascent/advisory/analysis/analysisapi"
	"github.com/Abraxas-365/ascent/advisory/analysis/analysisinfra"
	"github.com/Abraxas-365/ascent/advisory/analysis/analysissrv"
	"github.com/Abraxas-365/ascent/advisory/analysis/worker"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidateapi"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidateauth"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidateinfra"
	"github.com/Abraxas-365/ascent/advisory/candidate/candidatesrv"
	"github.com/Abraxas-365/ascent/advisory/interview/interviewapi"
	"github.com/Abraxas-365/ascent/advisory/interview/interviewinfra"
	"github.com/Abraxas-365/ascent/advisory/interview/interviewsrv"
	"github.com/Abraxas-365/ascent/advisory/job/jobapi"
	"github.com/Abraxas-365/ascent/advisory/job/jobinfra"
	"github.com/Abraxas-365/ascent/advisory/job/jobsrv"
	"github.com/Abraxas-365/ascent/advisory/skillgap/gapapi"
	"github.com/Abraxas-365/ascent/advisory/skillgap/gapinfra"
	"github.com/Abraxas-365/ascent/advisory/skillgap/gapsrv"
	"github.com/Abraxas-365/ascent/internal/ai/advisor"
	"github.com/Abraxas-365/ascent/internal/ai/completion"
	"github.com/Abraxas-365/ascent/internal/pdf"
	"github.com/Abraxas-365/ascent/internal/profile"
	"github.com/Abraxas-365/ascent/internal/skills"
	"github.com/Abraxas-365/ascent/pkg/fsx"
	"github.com/Abraxas-365/ascent/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const analysisQueueName = "ascent:analysis"

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// AI
	Gateway *completion.Gateway
	Advisor *advisor.Advisor

	// Auth
	TokenService *candidateauth.TokenService

	// Domain Services
	CandidateService *candidatesrv.CandidateService
	JobService       *jobsrv.JobService
	AnalysisService  *analysissrv.AnalysisService
	GapService       *gapsrv.GapService
	InterviewService *interviewsrv.InterviewService

	// Background
	AnalysisQueue  analysis.JobQueue
	AnalysisWorker *worker.AnalysisWorker

	// API Handlers
	CandidateHandlers *candidateapi.Handlers
	JobHandlers       *jobapi.Handlers
	AnalysisHandlers  *analysisapi.Handlers
	GapHandlers       *gapapi.Handlers
	InterviewHandlers *interviewapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")

	// 4. OpenAI Gateway
	gatewayCfg := completion.DefaultConfig()
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		gatewayCfg.Model = model
	}
	c.Gateway = completion.NewGateway(os.Getenv("OPENAI_API_KEY"), gatewayCfg)
	c.Advisor = advisor.New(c.Gateway)

	// 5. Candidate Tokens
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = candidateauth.NewTokenService(jwtSecret, 24*time.Hour, "ascent")
}

func (c *Container) initServices() {
	// --- Repositories ---
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	analysisRepo := analysisinfra.NewPostgresAnalysisRepository(c.DB)
	analysisJobRepo := analysisinfra.NewPostgresJobRepository(c.DB)
	gapRepo := gapinfra.NewPostgresReportRepository(c.DB)
	sessionRepo := interviewinfra.NewPostgresSessionRepository(c.DB)

	// --- Parsing pipeline ---
	parser := profile.NewParser(pdf.NewTextExtractor(), skills.NewExtractor(nil))

	// --- Queue and cache ---
	c.AnalysisQueue = analysisinfra.NewRedisQueue(c.Redis, analysisQueueName)
	recommendationCache := jobinfra.NewRedisRecommendationCache(c.Redis, 10*time.Minute)

	// --- Domain Services ---
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, parser, c.FileSystem, c.TokenService)
	c.JobService = jobsrv.NewJobService(jobRepo, candidateRepo, c.Advisor, recommendationCache)
	c.AnalysisService = analysissrv.NewAnalysisService(analysisRepo, analysisJobRepo, c.AnalysisQueue, candidateRepo, c.Advisor)
	c.GapService = gapsrv.NewGapService(gapRepo, candidateRepo, jobRepo, c.Advisor)
	c.InterviewService = interviewsrv.NewInterviewService(sessionRepo, c.Advisor)

	workers := 2
	c.AnalysisWorker = worker.NewAnalysisWorker(c.AnalysisService, c.AnalysisQueue, workers)

	// --- Handlers ---
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService, c.AnalysisService, c.GapService, c.InterviewService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.AnalysisHandlers = analysisapi.NewHandlers(c.AnalysisService)
	c.GapHandlers = gapapi.NewHandlers(c.GapService)
	c.InterviewHandlers = interviewapi.NewHandlers(c.InterviewService)
}
