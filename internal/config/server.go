package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"VoiceCommerce/database/postgres"
	voiceHandler "VoiceCommerce/internal/api/voice/handler"
	voiceRepository "VoiceCommerce/internal/api/voice/repository"
	voiceService "VoiceCommerce/internal/api/voice/service"
	"VoiceCommerce/internal/middleware"
	"VoiceCommerce/pkg/audio"
	"VoiceCommerce/pkg/gemini"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/nlp"
	"VoiceCommerce/pkg/openai"
	"VoiceCommerce/pkg/redis"
	"VoiceCommerce/pkg/s3"
	"VoiceCommerce/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
	nluBackend  nlp.IBackend
	transcriber audio.ITranscriber
	synthesizer audio.ISynthesizer
	voiceConfig *voiceService.VoiceConfig
	closers     []func()
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.voiceConfig == nil {
		server.voiceConfig = voiceService.DefaultVoiceConfig()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithVoiceConfig(cfg *voiceService.VoiceConfig) ServerOption {
	return func(s *Server) error {
		s.voiceConfig = cfg
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		s.closers = append(s.closers, func() { _ = db.Close() })
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisServer.Ping(ctx); err != nil && s.log != nil {
			s.log.Warnf("Redis is not reachable yet, turns will fail until it is: %v", err)
		}

		s.redisServer = redisServer
		s.closers = append(s.closers, func() { _ = redisServer.Close() })
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithS3Client enables audio archiving. Without S3 credentials the server
// still starts and simply skips archiving.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("S3 client unavailable, audio archiving disabled: %v", err)
			}
			return nil
		}
		s.s3Client = client
		return nil
	}
}

// WithNLU picks the intent backend named by the voice config: gemini or
// openai.
func WithNLU() ServerOption {
	return func(s *Server) error {
		provider := s.provider(func(c *voiceService.VoiceConfig) string { return c.NLUProvider })

		switch provider {
		case "openai":
			client, err := openai.NewChatGPT()
			if err != nil {
				return fmt.Errorf("failed to create OpenAI client: %w", err)
			}
			s.nluBackend = client
		case "gemini":
			client, err := gemini.NewGeminiClient()
			if err != nil {
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}
			s.nluBackend = client
			s.closers = append(s.closers, client.Close)
		default:
			return fmt.Errorf("unknown NLU provider %q", provider)
		}

		s.log.Infof("NLU backend: %s", s.nluBackend.Name())
		return nil
	}
}

// WithTranscriber picks google, whisper or assemblyai.
func WithTranscriber() ServerOption {
	return func(s *Server) error {
		provider := s.provider(func(c *voiceService.VoiceConfig) string { return c.TranscriberProvider })

		var (
			transcriber audio.ITranscriber
			err         error
		)
		switch provider {
		case "google":
			transcriber, err = audio.NewGoogleTranscriber(context.Background())
		case "whisper":
			transcriber, err = audio.NewWhisperTranscriber()
		case "assemblyai":
			transcriber, err = audio.NewAssemblyAITranscriber()
		default:
			err = fmt.Errorf("unknown transcriber %q", provider)
		}
		if err != nil {
			return fmt.Errorf("failed to create transcriber: %w", err)
		}

		s.transcriber = transcriber
		s.log.Infof("Transcriber: %s", transcriber.Name())
		return nil
	}
}

// WithSynthesizer picks google or elevenlabs.
func WithSynthesizer() ServerOption {
	return func(s *Server) error {
		provider := s.provider(func(c *voiceService.VoiceConfig) string { return c.SynthesizerProvider })

		var (
			synthesizer audio.ISynthesizer
			err         error
		)
		switch provider {
		case "google":
			synthesizer, err = audio.NewGoogleSynthesizer(context.Background())
		case "elevenlabs":
			synthesizer, err = audio.NewElevenLabsSynthesizer()
		default:
			err = fmt.Errorf("unknown synthesizer %q", provider)
		}
		if err != nil {
			return fmt.Errorf("failed to create synthesizer: %w", err)
		}

		s.synthesizer = synthesizer
		s.log.Infof("Synthesizer: %s", synthesizer.Name())
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		var maxSize int64
		if s.voiceConfig != nil {
			maxSize = s.voiceConfig.MaxAudioSize
		}
		s.utils = utils.New(maxSize)
		return nil
	}
}

func (s *Server) provider(pick func(*voiceService.VoiceConfig) string) string {
	if s.voiceConfig == nil {
		return pick(voiceService.DefaultVoiceConfig())
	}
	return pick(s.voiceConfig)
}

func (s *Server) RegisterHandler() {
	registry := i18n.NewRegistry()
	catalog := i18n.NewCatalog(registry)

	voiceRepo := voiceRepository.New(s.db, s.log)
	conversationStore := voiceRepository.NewConversationStore(s.redisServer, s.voiceConfig.SessionTTL, s.log)
	voiceServices := voiceService.NewVoiceService(
		s.log,
		voiceRepo,
		conversationStore,
		s.nluBackend,
		s.transcriber,
		s.synthesizer,
		registry,
		catalog,
		s.s3Client,
		s.utils,
		s.voiceConfig,
	)
	voiceHandlers := voiceHandler.New(s.log, s.validator, s.middleware, voiceServices, s.utils)

	s.setupHealthCheck()
	s.engine.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.handlers = append(s.handlers, voiceHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewMetricsMiddleware())

	router := s.engine.Group("/api/v1")
	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown drains in-flight requests and then releases clients in reverse
// order of creation.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.engine.ShutdownWithContext(ctx)

	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
