package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"cinebob/internal/bot"
	"cinebob/internal/catalog"
	"cinebob/internal/config"
	"cinebob/internal/keepalive"
	"cinebob/internal/logging"
	"cinebob/internal/recommend"
	"cinebob/internal/telegram"
)

// Daemon owns the Telegram poller and keepalive endpoint and enforces
// single-instance execution.
type Daemon struct {
	cfg        *config.Config
	logger     *slog.Logger
	cat        *catalog.Catalog
	svc        *recommend.Service
	dispatcher *bot.Dispatcher
	client     *telegram.Client

	lockPath string
	lock     *flock.Flock

	poller    *telegram.Poller
	keepAlive *keepalive.Server
	botUser   telegram.User

	running  atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
}

// Status represents daemon runtime information.
type Status struct {
	Running     bool
	PID         int
	BotUsername string
	Movies      int
	Genres      int
	LockPath    string
	SocketPath  string
	StorePath   string
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || cat == nil {
		return nil, errors.New("daemon requires config and catalog")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	svc := recommend.NewService(cat,
		recommend.WithPopularLimits(cfg.Commands.PopularCount, cfg.Commands.PopularMax))
	dispatcher := bot.NewDispatcher(svc, logger)
	client := telegram.NewClient(cfg.Telegram.Token,
		telegram.WithBaseURL(cfg.Telegram.BaseURL),
		telegram.WithTimeout(time.Duration(cfg.Telegram.RequestTimeout)*time.Second))

	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "daemon"),
		cat:        cat,
		svc:        svc,
		dispatcher: dispatcher,
		client:     client,
		lockPath:   lockPath,
		lock:       flock.New(lockPath),
		done:       make(chan struct{}),
	}, nil
}

// Done is closed once the daemon has stopped, so the host process can exit
// after a stop requested over IPC.
func (d *Daemon) Done() <-chan struct{} {
	return d.done
}

// Start acquires the daemon lock, verifies the bot token, and launches the
// poller and keepalive endpoint.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}
	if err := d.cfg.RequireTelegramToken(); err != nil {
		return err
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another cinebobd instance is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)

	identCtx, identCancel := context.WithTimeout(runCtx, 10*time.Second)
	user, err := d.client.GetMe(identCtx)
	identCancel()
	if err != nil {
		cancel()
		_ = d.lock.Unlock()
		return fmt.Errorf("verify bot token: %w", err)
	}
	d.botUser = user

	if d.cfg.KeepAlive.Enabled {
		d.keepAlive = keepalive.NewServer(d.cfg.KeepAlive.Bind, d.cat, d.logger)
		if err := d.keepAlive.Start(); err != nil {
			cancel()
			_ = d.lock.Unlock()
			return fmt.Errorf("start keepalive: %w", err)
		}
	}

	d.poller = telegram.NewPoller(d.client, d.dispatcher,
		time.Duration(d.cfg.Telegram.PollTimeout)*time.Second, d.logger)
	d.poller.Start(runCtx)

	d.cancel = cancel
	d.running.Store(true)
	d.logger.Info("cinebob daemon started",
		logging.String("bot", "@"+user.Username),
		logging.Int("movies", d.cat.Len()),
		logging.String("lock", d.lockPath))
	return nil
}

// Stop stops background processing and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.poller != nil {
		d.poller.Stop()
		d.poller = nil
	}
	if d.keepAlive != nil {
		if err := d.keepAlive.Close(); err != nil {
			d.logger.Warn("close keepalive", logging.Error(err))
		}
		d.keepAlive = nil
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.doneOnce.Do(func() { close(d.done) })
	d.logger.Info("cinebob daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return nil
}

// Status returns a snapshot of daemon state.
func (d *Daemon) Status() Status {
	return Status{
		Running:     d.running.Load(),
		PID:         os.Getpid(),
		BotUsername: d.botUser.Username,
		Movies:      d.cat.Len(),
		Genres:      len(d.cat.Genres()),
		LockPath:    d.lockPath,
		SocketPath:  d.cfg.SocketPath(),
		StorePath:   d.cfg.StorePath(),
	}
}

// Ask runs a command through the dispatcher without involving Telegram,
// for the CLI and for IPC callers.
func (d *Daemon) Ask(ctx context.Context, command, argument string) (string, error) {
	return d.dispatcher.Dispatch(ctx, bot.Request{Command: command, Args: argument})
}

// SendTest delivers a test message to the given chat through the live
// transport.
func (d *Daemon) SendTest(ctx context.Context, chatID int64) error {
	if !d.running.Load() {
		return errors.New("daemon is not running")
	}
	return d.client.SendMessage(ctx, chatID, "CineBob test message. If you can read this, delivery works.")
}
