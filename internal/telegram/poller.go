package telegram

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"cinebob/internal/bot"
	"cinebob/internal/logging"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Poller drives the getUpdates loop and feeds incoming commands to the
// dispatcher.
type Poller struct {
	client      *Client
	dispatcher  *bot.Dispatcher
	logger      *slog.Logger
	pollTimeout time.Duration

	offset int64
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewPoller builds a poller over the client and dispatcher.
func NewPoller(client *Client, dispatcher *bot.Dispatcher, pollTimeout time.Duration, logger *slog.Logger) *Poller {
	if pollTimeout <= 0 {
		pollTimeout = 30 * time.Second
	}
	return &Poller{
		client:      client,
		dispatcher:  dispatcher,
		logger:      logging.NewComponentLogger(logger, "telegram"),
		pollTimeout: pollTimeout,
	}
}

// Start launches the polling loop in the background.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

// Stop halts the loop and waits for the in-flight poll to finish.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *Poller) run(ctx context.Context) {
	backoff := initialBackoff
	for {
		if ctx.Err() != nil {
			return
		}

		updates, err := p.client.GetUpdates(ctx, p.offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			wait := backoff
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.RetryAfter > 0 {
				wait = apiErr.RetryAfter
			}
			p.logger.Warn("poll failed",
				logging.Error(err),
				logging.Duration("retry_in", wait),
				logging.String(logging.FieldEventType, "poll_failed"))
			if !sleep(ctx, wait) {
				return
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = initialBackoff

		for _, update := range updates {
			if update.UpdateID >= p.offset {
				p.offset = update.UpdateID + 1
			}
			p.handle(ctx, update)
		}
	}
}

func (p *Poller) handle(ctx context.Context, update Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	name, args, ok := bot.ParseCommand(msg.Text)
	if !ok {
		return
	}

	req := bot.Request{
		UpdateID: update.UpdateID,
		ChatID:   msg.Chat.ID,
		Command:  name,
		Args:     args,
	}
	if msg.From != nil {
		req.UserID = msg.From.ID
	}

	reply, err := p.dispatcher.Dispatch(ctx, req)
	if err != nil {
		p.logger.Error("dispatch failed",
			logging.Error(err),
			logging.Int64("update_id", update.UpdateID),
			logging.String(logging.FieldEventType, "dispatch_failed"))
		reply = "Something went wrong on my side. Please try again."
	}
	if reply == "" {
		return
	}

	if err := p.client.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		p.logger.Warn("send reply failed",
			logging.Error(err),
			logging.Int64(logging.FieldChatID, msg.Chat.ID),
			logging.String(logging.FieldEventType, "send_failed"))
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
