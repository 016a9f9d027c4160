package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/config"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
	"github.com/rocketscienceinc/console-games/internal/repository"
	"github.com/rocketscienceinc/console-games/internal/repository/storage"
	"github.com/rocketscienceinc/console-games/internal/service"
	"github.com/rocketscienceinc/console-games/internal/usecase"
	"github.com/rocketscienceinc/console-games/transport/console"
)

var ErrUnknownStorage = errors.New("unknown storage driver")

type terminal interface {
	RequestChoice(ctx context.Context, prompt string, validChoices []string) (string, error)
	RequestYesNo(ctx context.Context, prompt string) (bool, error)
	Display(lines []string)
}

type closableTerminal interface {
	terminal
	Close() error
}

// RunApp - runs one console session until the player quits or the process is signalled.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scoreRepo, closeStorage, err := newScoreRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close score storage", "error", err)
		}
	}()

	term, err := console.New(logger, conf.Console)
	if err != nil {
		return err
	}

	sessionID := pkg.GenerateSessionID()
	log = log.With("session", sessionID)
	log.Info("session started", "storage", conf.Storage.Driver)

	err = serve(ctx, log, term, func(ctx context.Context) error {
		return runSession(ctx, logger, conf, term, scoreRepo, sessionID)
	})
	if err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("session finished")

	return nil
}

// serve - runs the session next to a watcher that closes the terminal once ctx is done,
// which unblocks a pending read.
func serve(ctx context.Context, log *slog.Logger, term closableTerminal, session func(ctx context.Context) error) error {
	grp, gctx := errgroup.WithContext(ctx)
	sessionDone := make(chan struct{})

	grp.Go(func() error {
		defer close(sessionDone)
		return session(gctx)
	})

	grp.Go(func() error {
		select {
		case <-gctx.Done():
			log.Info("shutting down", "cause", context.Cause(gctx))
		case <-sessionDone:
		}

		return term.Close()
	})

	return grp.Wait()
}

func runSession(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	term terminal,
	scoreRepo repository.ScoreRepository,
	sessionID string,
) error {
	name, err := usecase.SelectGame(ctx, term, conf.Game)
	if err != nil {
		if errors.Is(err, apperror.ErrInterrupted) {
			return nil
		}
		return err
	}

	game, err := buildGame(name, conf, term, pkg.NewRandom())
	if err != nil {
		return err
	}

	manager := usecase.NewGameManager(logger, term, scoreRepo, sessionID)

	return manager.Play(ctx, game)
}

// buildGame - wires the human and computer providers of the named game.
func buildGame(name string, conf *config.Config, term terminal, random pkg.Random) (usecase.RoundGame, error) {
	switch name {
	case entity.GameTicTacToe:
		human := entity.Marker(conf.TicTacToe.HumanMarker)
		computer := entity.Marker(conf.TicTacToe.ComputerMarker)

		return usecase.NewTicTacToe(
			term,
			service.NewHumanTicTacToe(term),
			service.NewTicTacToeBot(computer, human, random),
			human,
			computer,
		), nil

	case entity.GameTwentyOne:
		rules := conf.TwentyOne

		return usecase.NewTwentyOne(
			term,
			service.NewHumanGambler(term),
			service.NewDealer(rules.DealerStayLimit, rules.Target),
			entity.NewDeck(rules.NumberOfDecks, random),
			entity.NewPurse(rules.StartingPurse, rules.BrokeValue, rules.RichValue),
			rules.Target,
			rules.Shuffles,
		), nil

	case entity.GameRPS:
		choices, err := entity.ChoicesFor(conf.RPS.Variant)
		if err != nil {
			return nil, err
		}

		history := entity.NewMoveHistory()

		bot, err := service.NewRPSBot(conf.RPS.Strategy, random, history)
		if err != nil {
			return nil, err
		}

		return usecase.NewRPS(term, service.NewHumanRPS(term), bot, choices, conf.RPS.WinningScore, history), nil

	default:
		return nil, fmt.Errorf("%w: %q", usecase.ErrUnknownGame, name)
	}
}

func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.StorageMemory:
		return repository.NewMemoryScoreRepository(), func() error { return nil }, nil

	case config.StorageRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
			Host:     conf.Redis.Host,
			Port:     conf.Redis.Port,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewScoreRepository(redisStorage.Connection), redisStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage.Driver)
	}
}
