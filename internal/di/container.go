package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	deliveryRepo "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/repository"
	deliveryService "github.com/reshetovitsme/channel-mirror/internal/modules/delivery/service"
	feedService "github.com/reshetovitsme/channel-mirror/internal/modules/feed/service"
	journalRepo "github.com/reshetovitsme/channel-mirror/internal/modules/journal/repository"
	journalService "github.com/reshetovitsme/channel-mirror/internal/modules/journal/service"
	operatorRepo "github.com/reshetovitsme/channel-mirror/internal/modules/operator/repository"
	operatorService "github.com/reshetovitsme/channel-mirror/internal/modules/operator/service"
	pipelineService "github.com/reshetovitsme/channel-mirror/internal/modules/pipeline/service"
	promptService "github.com/reshetovitsme/channel-mirror/internal/modules/prompt/service"
	settingsRepo "github.com/reshetovitsme/channel-mirror/internal/modules/settings/repository"
	settingsService "github.com/reshetovitsme/channel-mirror/internal/modules/settings/service"
	"github.com/reshetovitsme/channel-mirror/internal/shared/config"
	"github.com/reshetovitsme/channel-mirror/internal/shared/domain"
	httpServer "github.com/reshetovitsme/channel-mirror/internal/transport/http"
	telegramHandler "github.com/reshetovitsme/channel-mirror/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Service names for dependency injection
const (
	ServiceControlBot = "control-bot"
	ServiceWorkerBot  = "worker-bot"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Settings Repository
	do.Provide(injector, func(i do.Injector) (settingsRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := settingsRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize settings repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Delivered Message Repository
	do.Provide(injector, func(i do.Injector) (deliveryRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		store := do.MustInvoke[settingsRepo.Repository](i)
		return deliveryRepo.NewDocumentStorage(store, cfg.DeliveredTTL, cfg.DeliveredMaxEntries), nil
	})

	// Register Journal Repository
	do.Provide(injector, func(i do.Injector) (journalRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := journalRepo.NewFileStorage(cfg.StoragePath, cfg.JournalTTL)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize journal repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Operator Repository
	do.Provide(injector, func(i do.Injector) (operatorRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := operatorRepo.NewFileStorage(cfg.StoragePath)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize operator repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Settings Service
	do.Provide(injector, func(i do.Injector) (*settingsService.Service, error) {
		svc := settingsService.New(do.MustInvoke[settingsRepo.Repository](i))
		if err := svc.Bootstrap(); err != nil {
			return nil, oops.With("context", "failed to bootstrap settings").Wrap(err)
		}
		return svc, nil
	})

	// Register Operator Service
	do.Provide(injector, func(i do.Injector) (*operatorService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return operatorService.New(do.MustInvoke[operatorRepo.Repository](i), cfg.AllowedUsers), nil
	})

	// Register Journal Service
	do.Provide(injector, func(i do.Injector) (*journalService.Service, error) {
		return journalService.New(do.MustInvoke[journalRepo.Repository](i)), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(do.MustInvoke[*journalService.Service](i)), nil
	})

	// Register Prompt Store
	do.Provide(injector, func(i do.Injector) (*promptService.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return promptService.NewStore(cfg.PromptTTL)
	})

	// Register Delivery Stats
	do.Provide(injector, func(i do.Injector) (*deliveryService.Stats, error) {
		return deliveryService.NewStats(), nil
	})

	// Register Bots; a shared token yields one bot serving both roles
	do.ProvideNamed(injector, ServiceControlBot, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return newBot(cfg.TelegramBotToken, cfg.TelegramAPIURL)
	})
	do.ProvideNamed(injector, ServiceWorkerBot, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.SharedBot() {
			return do.InvokeNamed[*bot.Bot](i, ServiceControlBot)
		}
		return newBot(cfg.WorkerBotToken, cfg.TelegramAPIURL)
	})

	// Register Sender and Dispatcher
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Sender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		b := do.MustInvokeNamed[*bot.Bot](i, ServiceWorkerBot)
		return telegramHandler.NewSender(b, do.MustInvoke[*settingsService.Service](i), cfg.SendRatePerMinute), nil
	})
	do.Provide(injector, func(i do.Injector) (*deliveryService.Dispatcher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		sender := do.MustInvoke[*telegramHandler.Sender](i)
		stats := do.MustInvoke[*deliveryService.Stats](i)
		return deliveryService.NewDispatcher(sender, stats, cfg.MaxParallelSends, cfg.SendTimeout), nil
	})

	// Register Pipeline
	do.Provide(injector, func(i do.Injector) (*pipelineService.Service, error) {
		return pipelineService.New(
			do.MustInvoke[*settingsService.Service](i),
			do.MustInvoke[*deliveryService.Dispatcher](i),
			do.MustInvoke[deliveryRepo.Repository](i),
			do.MustInvoke[*journalService.Service](i),
		), nil
	})

	// Register Pruner
	do.Provide(injector, func(i do.Injector) (*deliveryService.Pruner, error) {
		cfg := do.MustInvoke[*config.Config](i)
		pruner := deliveryService.NewPruner(cfg.PruneSchedule)
		pruner.Register("delivered", do.MustInvoke[deliveryRepo.Repository](i))
		pruner.Register("journal", do.MustInvoke[journalRepo.Repository](i))
		return pruner, nil
	})

	// Register Telegram Handlers
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		settings := do.MustInvoke[*settingsService.Service](i)
		// resolution goes through the control bot, which is the one operators add to channels
		settings.SetResolver(telegramHandler.NewResolver(do.MustInvokeNamed[*bot.Bot](i, ServiceControlBot)))
		return telegramHandler.New(
			cfg,
			settings,
			do.MustInvoke[*operatorService.Service](i),
			do.MustInvoke[*promptService.Store](i),
			do.MustInvoke[*deliveryService.Stats](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*telegramHandler.Worker, error) {
		return telegramHandler.NewWorker(do.MustInvoke[*pipelineService.Service](i)), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(
			cfg,
			do.MustInvoke[*feedService.Service](i),
			do.MustInvoke[*deliveryService.Stats](i),
			do.MustInvoke[*pipelineService.Service](i),
		)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

func newBot(token, apiURL string) (*bot.Bot, error) {
	b, err := bot.New(token,
		bot.WithServerURL(apiURL),
		bot.WithDefaultHandler(func(context.Context, *bot.Bot, *models.Update) {}),
	)
	if err != nil {
		return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
	}
	return b, nil
}

// Bots wires handlers for mode and returns the bots to poll
func Bots(injector do.Injector, mode domain.RunMode) ([]*bot.Bot, error) {
	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		return nil, err
	}

	var control *telegramHandler.Handler
	var worker *telegramHandler.Worker
	if mode != domain.RunModeWorker {
		if control, err = do.Invoke[*telegramHandler.Handler](injector); err != nil {
			return nil, err
		}
	}
	if mode != domain.RunModeControl {
		if worker, err = do.Invoke[*telegramHandler.Worker](injector); err != nil {
			return nil, err
		}
	}

	switch {
	case mode == domain.RunModeAll && cfg.SharedBot():
		b, err := do.InvokeNamed[*bot.Bot](injector, ServiceControlBot)
		if err != nil {
			return nil, err
		}
		telegramHandler.Register(b, control, worker)
		return []*bot.Bot{b}, nil
	case mode == domain.RunModeAll:
		controlBot, err := do.InvokeNamed[*bot.Bot](injector, ServiceControlBot)
		if err != nil {
			return nil, err
		}
		workerBot, err := do.InvokeNamed[*bot.Bot](injector, ServiceWorkerBot)
		if err != nil {
			return nil, err
		}
		telegramHandler.Register(controlBot, control, nil)
		telegramHandler.Register(workerBot, nil, worker)
		return []*bot.Bot{controlBot, workerBot}, nil
	case mode == domain.RunModeControl:
		b, err := do.InvokeNamed[*bot.Bot](injector, ServiceControlBot)
		if err != nil {
			return nil, err
		}
		telegramHandler.Register(b, control, nil)
		return []*bot.Bot{b}, nil
	default:
		b, err := do.InvokeNamed[*bot.Bot](injector, ServiceWorkerBot)
		if err != nil {
			return nil, err
		}
		telegramHandler.Register(b, nil, worker)
		return []*bot.Bot{b}, nil
	}
}

// Shutdown gracefully shuts down the services mode started
func Shutdown(injector do.Injector, mode domain.RunMode) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if mode != domain.RunModeControl {
		if server, err := do.Invoke[*httpServer.Server](injector); err == nil {
			if err := server.Shutdown(ctx); err != nil {
				slog.Error("HTTP server shutdown failed", "error", err)
			}
		}
		if pruner, err := do.Invoke[*deliveryService.Pruner](injector); err == nil {
			pruner.Stop()
		}
	}

	if mode != domain.RunModeWorker {
		if prompts, err := do.Invoke[*promptService.Store](injector); err == nil {
			prompts.Close()
		}
	}

	return nil
}
