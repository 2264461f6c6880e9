package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"cinebob/internal/logging"
	"cinebob/internal/recommend"
)

// Request carries one incoming command from the delivery interface.
type Request struct {
	UpdateID int64
	UserID   int64
	ChatID   int64
	Command  string
	Args     string
}

// Handler answers a single command with reply text.
type Handler func(ctx context.Context, req Request) (string, error)

// Command pairs a handler with its help line.
type Command struct {
	Name        string
	Description string
	Handler     Handler
}

// Dispatcher routes commands to registered handlers.
type Dispatcher struct {
	commands map[string]Command
	order    []string
	logger   *slog.Logger
}

// NewDispatcher builds a dispatcher with the standard command set wired to
// the recommendation service.
func NewDispatcher(svc *recommend.Service, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		commands: make(map[string]Command),
		logger:   logging.NewComponentLogger(logger, "bot"),
	}

	d.Register(Command{Name: "start", Description: "Say hello", Handler: handleStart})
	d.Register(Command{Name: "help", Description: "Show available commands", Handler: d.handleHelp})
	d.Register(Command{Name: "recommend", Description: "Recommend a movie, optionally by genre", Handler: handleRecommend(svc)})
	d.Register(Command{Name: "genres", Description: "List the genres I know", Handler: handleGenres(svc)})
	d.Register(Command{Name: "popular", Description: "Show the top rated movies", Handler: handlePopular(svc)})
	d.Register(Command{Name: "random", Description: "Pick a completely random movie", Handler: handleRandom(svc)})

	return d
}

// Register adds or replaces a command by name.
func (d *Dispatcher) Register(cmd Command) {
	name := strings.ToLower(strings.TrimSpace(cmd.Name))
	if name == "" || cmd.Handler == nil {
		return
	}
	if _, exists := d.commands[name]; !exists {
		d.order = append(d.order, name)
	}
	cmd.Name = name
	d.commands[name] = cmd
}

// Commands returns the registered commands in registration order.
func (d *Dispatcher) Commands() []Command {
	out := make([]Command, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.commands[name])
	}
	return out
}

// Dispatch resolves and runs the handler for the request. Unknown commands
// get a hint reply rather than an error.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (string, error) {
	requestID := uuid.NewString()
	log := d.logger.With(
		logging.String(logging.FieldRequestID, requestID),
		logging.String(logging.FieldCommand, req.Command),
		logging.Int64(logging.FieldChatID, req.ChatID),
		logging.Int64(logging.FieldUserID, req.UserID),
	)

	cmd, ok := d.commands[strings.ToLower(req.Command)]
	if !ok {
		log.Debug("unknown command")
		return fmt.Sprintf("I don't know /%s. Try /help to see what I can do.", req.Command), nil
	}

	reply, err := cmd.Handler(ctx, req)
	if err != nil {
		log.Error("handler failed",
			logging.Error(err),
			logging.String(logging.FieldEventType, "command_failed"))
		return "", fmt.Errorf("handle /%s: %w", cmd.Name, err)
	}
	log.Debug("command handled", logging.Int("reply_len", len(reply)))
	return reply, nil
}

// ParseCommand splits raw message text like "/popular 3" or
// "/recommend@CineBob drama" into a command name and its argument text.
// The boolean is false when the text is not a command.
func ParseCommand(text string) (string, string, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return "", "", false
	}
	trimmed = strings.TrimPrefix(trimmed, "/")
	name, args, _ := strings.Cut(trimmed, " ")
	// Group chats address commands as /command@botname.
	name, _, _ = strings.Cut(name, "@")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(args), true
}

func (d *Dispatcher) handleHelp(_ context.Context, _ Request) (string, error) {
	var sb strings.Builder
	sb.WriteString("Here is what I can do:\n")
	names := make([]string, 0, len(d.commands))
	for name := range d.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := d.commands[name]
		fmt.Fprintf(&sb, "/%s - %s\n", cmd.Name, cmd.Description)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
