package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"folio/config"
	"folio/handler"
	"folio/middleware"
	"folio/pkg/mq"
	"folio/pkg/router"
	"folio/pkg/service"
	"folio/repo"
)

type server struct {
	ctx context.Context
	opt *config.Option
	cfg *config.Config

	orm       *gorm.DB
	baseCache repo.BaseCache
	producer  *mq.Producer

	flairRepo    repo.FlairRepo
	interestRepo repo.InterestRepo
	profileRepo  repo.ProfileRepo

	// api handlers
	flairHandler    handler.FlairHandler
	interestHandler handler.InterestHandler
	profileHandler  handler.ProfileHandler
}

func main() {
	s := new(server)
	if err := service.Run(s); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func (s *server) Init() error {
	opt := config.NewOptions()

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		opt.LogLevel = logLevel
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		opt.ConfigPath = configPath
	}

	if serverPort := os.Getenv("PORT"); serverPort != "" {
		if port, err := strconv.Atoi(serverPort); err == nil {
			opt.Port = port
		}
	}

	s.opt = opt

	return nil
}

func (s *server) Start() error {
	var err error

	// ====== init logger ===== //

	s.ctx = initZeroLog(context.Background(), s.opt.LogLevel)

	// ===== init config ===== //

	s.cfg = config.NewConfig()
	if err = s.cfg.Load(s.ctx, s.opt.ConfigPath); err != nil {
		log.Ctx(s.ctx).Error().Msgf("load config failed, err: %v", err)
		return err
	}

	// ===== init storage ===== //

	s.orm, err = repo.NewOrm(s.ctx, s.cfg.MetadataDB)
	if err != nil {
		log.Ctx(s.ctx).Error().Msgf("init orm failed, err: %v", err)
		return err
	}
	defer func() {
		if err != nil && s.orm != nil {
			if err := repo.CloseOrm(s.orm); err != nil {
				log.Ctx(s.ctx).Error().Msgf("close orm failed, err: %v", err)
			}
		}
	}()

	s.baseCache = repo.NewBaseCache(s.ctx)

	s.flairRepo = repo.NewFlairRepo(s.orm, s.baseCache)
	s.interestRepo = repo.NewInterestRepo(s.orm, s.baseCache)
	s.profileRepo = repo.NewProfileRepo(s.orm)

	// ===== init event producer ===== //

	if len(s.cfg.EventMQ.Brokers) > 0 {
		s.producer, err = mq.NewProducer(s.ctx, s.cfg.EventMQ)
		if err != nil {
			log.Ctx(s.ctx).Error().Msgf("init event producer failed, err: %v", err)
			return err
		}
	} else {
		log.Ctx(s.ctx).Warn().Msg("event mq not configured, create events disabled")
	}

	// ===== init handlers ===== //

	s.flairHandler = handler.NewFlairHandler(s.flairRepo, s.producer)
	s.interestHandler = handler.NewInterestHandler(s.interestRepo, s.producer)
	s.profileHandler = handler.NewProfileHandler(s.profileRepo, s.interestRepo, s.flairRepo, s.producer)

	// ===== start server ===== //

	go func() {
		addr := fmt.Sprintf(":%d", s.opt.Port)

		log.Info().Msgf("starting HTTP server at %s", addr)

		httpServer := &http.Server{
			BaseContext: func(_ net.Listener) context.Context {
				return s.ctx
			},
			Addr:    addr,
			Handler: middleware.Log(cors.AllowAll().Handler(s.registerRoutes())),
		}
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fail to start HTTP server, err: %v", err)
		}
	}()

	return nil
}

func (s *server) Stop() error {
	var g errgroup.Group

	g.Go(func() error {
		if err := repo.CloseOrm(s.orm); err != nil {
			log.Ctx(s.ctx).Error().Msgf("close orm failed, err: %v", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		if s.baseCache == nil {
			return nil
		}
		if err := s.baseCache.Close(s.ctx); err != nil {
			log.Ctx(s.ctx).Error().Msgf("close cache failed, err: %v", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		if s.producer == nil {
			return nil
		}
		if err := s.producer.Close(); err != nil {
			log.Ctx(s.ctx).Error().Msgf("close event producer failed, err: %v", err)
			return err
		}
		return nil
	})

	return g.Wait()
}

type HealthCheckRequest struct{}

type HealthCheckResponse struct{}

func (s *server) registerRoutes() http.Handler {
	r := &router.HttpRouter{
		Router: mux.NewRouter(),
	}

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathHealthCheck,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(HealthCheckRequest),
			Res: new(HealthCheckResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return nil
			},
		},
	})

	// ===== flairs ===== //

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCreateFlair,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.CreateFlairRequest),
			Res: new(handler.CreateFlairResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.CreateFlair(ctx, req.(*handler.CreateFlairRequest), res.(*handler.CreateFlairResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetFlairs,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.GetFlairsRequest),
			Res: new(handler.GetFlairsResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.GetFlairs(ctx, req.(*handler.GetFlairsRequest), res.(*handler.GetFlairsResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCountFlairs,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.CountFlairsRequest),
			Res: new(handler.CountFlairsResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.CountFlairs(ctx, req.(*handler.CountFlairsRequest), res.(*handler.CountFlairsResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetFlairName,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.GetFlairNameRequest),
			Res: new(handler.GetFlairNameResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.GetFlairName(ctx, req.(*handler.GetFlairNameRequest), res.(*handler.GetFlairNameResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetFlairNames,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.GetFlairNamesRequest),
			Res: new(handler.GetFlairNamesResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.GetFlairNames(ctx, req.(*handler.GetFlairNamesRequest), res.(*handler.GetFlairNamesResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCheckFlairNames,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.CheckFlairNamesRequest),
			Res: new(handler.CheckFlairNamesResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.CheckFlairNames(ctx, req.(*handler.CheckFlairNamesRequest), res.(*handler.CheckFlairNamesResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetFlairID,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.GetFlairIDRequest),
			Res: new(handler.GetFlairIDResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.GetFlairID(ctx, req.(*handler.GetFlairIDRequest), res.(*handler.GetFlairIDResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetFlairIDs,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.GetFlairIDsRequest),
			Res: new(handler.GetFlairIDsResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.GetFlairIDs(ctx, req.(*handler.GetFlairIDsRequest), res.(*handler.GetFlairIDsResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathDumpFlair,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.DumpFlairRequest),
			Res: new(handler.DumpFlairResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.flairHandler.DumpFlair(ctx, req.(*handler.DumpFlairRequest), res.(*handler.DumpFlairResponse))
			},
		},
	})

	// ===== interests ===== //

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCreateInterest,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.CreateInterestRequest),
			Res: new(handler.CreateInterestResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.CreateInterest(ctx, req.(*handler.CreateInterestRequest), res.(*handler.CreateInterestResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetInterests,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.GetInterestsRequest),
			Res: new(handler.GetInterestsResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.GetInterests(ctx, req.(*handler.GetInterestsRequest), res.(*handler.GetInterestsResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCountInterests,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.CountInterestsRequest),
			Res: new(handler.CountInterestsResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.CountInterests(ctx, req.(*handler.CountInterestsRequest), res.(*handler.CountInterestsResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetInterestName,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.GetInterestNameRequest),
			Res: new(handler.GetInterestNameResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.GetInterestName(ctx, req.(*handler.GetInterestNameRequest), res.(*handler.GetInterestNameResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetInterestNames,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.GetInterestNamesRequest),
			Res: new(handler.GetInterestNamesResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.GetInterestNames(ctx, req.(*handler.GetInterestNamesRequest), res.(*handler.GetInterestNamesResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCheckInterestNames,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.CheckInterestNamesRequest),
			Res: new(handler.CheckInterestNamesResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.CheckInterestNames(ctx, req.(*handler.CheckInterestNamesRequest), res.(*handler.CheckInterestNamesResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetInterestID,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.GetInterestIDRequest),
			Res: new(handler.GetInterestIDResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.GetInterestID(ctx, req.(*handler.GetInterestIDRequest), res.(*handler.GetInterestIDResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetInterestIDs,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.GetInterestIDsRequest),
			Res: new(handler.GetInterestIDsResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.GetInterestIDs(ctx, req.(*handler.GetInterestIDsRequest), res.(*handler.GetInterestIDsResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathDumpInterest,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.DumpInterestRequest),
			Res: new(handler.DumpInterestResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.interestHandler.DumpInterest(ctx, req.(*handler.DumpInterestRequest), res.(*handler.DumpInterestResponse))
			},
		},
	})

	// ===== profiles ===== //

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCreateProfile,
		Method: http.MethodPost,
		Handler: router.Handler{
			Req: new(handler.CreateProfileRequest),
			Res: new(handler.CreateProfileResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.profileHandler.CreateProfile(ctx, req.(*handler.CreateProfileRequest), res.(*handler.CreateProfileResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathGetProfiles,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.GetProfilesRequest),
			Res: new(handler.GetProfilesResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.profileHandler.GetProfiles(ctx, req.(*handler.GetProfilesRequest), res.(*handler.GetProfilesResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathCountProfiles,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.CountProfilesRequest),
			Res: new(handler.CountProfilesResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.profileHandler.CountProfiles(ctx, req.(*handler.CountProfilesRequest), res.(*handler.CountProfilesResponse))
			},
		},
	})

	r.RegisterHttpRoute(&router.HttpRoute{
		Path:   config.PathDumpProfile,
		Method: http.MethodGet,
		Handler: router.Handler{
			Req: new(handler.DumpProfileRequest),
			Res: new(handler.DumpProfileResponse),
			HandleFunc: func(ctx context.Context, req, res interface{}) error {
				return s.profileHandler.DumpProfile(ctx, req.(*handler.DumpProfileRequest), res.(*handler.DumpProfileResponse))
			},
		},
	})

	return r
}

func initZeroLog(ctx context.Context, level string) context.Context {
	// use unix time
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// set log level
	var logLevel zerolog.Level
	switch strings.ToLower(level) {
	case zerolog.LevelDebugValue:
		logLevel = zerolog.DebugLevel
	case zerolog.LevelInfoValue:
		logLevel = zerolog.InfoLevel
	case zerolog.LevelWarnValue:
		logLevel = zerolog.WarnLevel
	case zerolog.LevelErrorValue:
		logLevel = zerolog.ErrorLevel
	case zerolog.LevelFatalValue:
		logLevel = zerolog.FatalLevel
	default:
		logLevel = zerolog.TraceLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// show caller: github.com/rs/zerolog#add-file-and-line-number-to-log
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		return fmt.Sprintf("%s:%d", short, line)
	}
	log.Logger = log.With().Caller().Logger()

	ctx = log.Logger.WithContext(ctx)
	return ctx
}
