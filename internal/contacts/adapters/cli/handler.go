// Package cli provides the interactive command handler for the contacts service.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"contactbook/internal/contacts/app"
	"contactbook/internal/contacts/book"
	"contactbook/internal/contacts/domain/entities"
	"contactbook/pkg/logger"
)

// Ответы пользователю.
const (
	MsgGreeting        = "How can I help you?"
	MsgGoodbye         = "Good bye!"
	MsgInvalidCommand  = "Invalid command."
	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgPhoneRemoved    = "Phone removed."
	MsgBirthdayAdded   = "Birthday added."
	MsgContactDeleted  = "Contact deleted."
	MsgEmptyBook       = "Address book is empty."
	MsgNoUpcoming      = "No upcoming birthdays."
	MsgInvalidPhone    = "Phone must contain exactly 10 digits."
	MsgInvalidBirthday = "Invalid date format. Use YYYY-MM-DD."
	MsgPhoneNotFound   = "Phone not found."
	MsgContactNotFound = "Contact not found."
	MsgOutOfRange      = "Birthday does not occur in the target year."
	MsgEmptyName       = "Name cannot be empty."
	MsgInvalidArgs     = "Invalid arguments."
)

const (
	logCommandReceived = "command received"
	logCommandFailed   = "command failed"
)

const helpText = `Commands:
  hello
  add <name> <phone>
  change <name> <old phone> <new phone>
  remove-phone <name> <phone>
  phone <name>
  add-birthday <name> <YYYY-MM-DD>
  show-birthday <name>
  birthdays [days]
  delete <name>
  all [page]
  help
  close | exit`

// ContactUseCase - операции, которые вызывает обработчик команд.
type ContactUseCase interface {
	AddContact(ctx context.Context, name, phone string) (bool, error)
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	RemovePhone(ctx context.Context, name, phone string) error
	Phones(ctx context.Context, name string) ([]entities.Phone, error)
	AddBirthday(ctx context.Context, name, birthday string) error
	DaysToBirthday(ctx context.Context, name string) (entities.Birthday, int, bool, error)
	UpcomingBirthdays(ctx context.Context, days int) ([]app.Upcoming, error)
	DeleteContact(ctx context.Context, name string) error
	Page(ctx context.Context, number, size int) (*app.Page, error)
}

// Options настраивают обработчик.
type Options struct {
	Prompt          string
	PageSize        int
	BirthdaysWindow int
}

type command struct {
	usage string
	args  int
	// optional - сколько последних аргументов можно опустить.
	optional int
	run      func(ctx context.Context, args []string) (string, error)
}

// Handler разбирает строки команд и вызывает бизнес-логику.
type Handler struct {
	useCase  ContactUseCase
	opts     Options
	commands map[string]command
}

// NewHandler создает новый обработчик команд.
func NewHandler(useCase ContactUseCase, opts Options) *Handler {
	if opts.PageSize <= 0 {
		opts.PageSize = book.DefaultBatchSize
	}
	h := &Handler{useCase: useCase, opts: opts}
	h.commands = map[string]command{
		"hello":         {usage: "hello", run: h.hello},
		"help":          {usage: "help", run: h.help},
		"add":           {usage: "add <name> <phone>", args: 2, run: h.add},
		"change":        {usage: "change <name> <old phone> <new phone>", args: 3, run: h.change},
		"remove-phone":  {usage: "remove-phone <name> <phone>", args: 2, run: h.removePhone},
		"phone":         {usage: "phone <name>", args: 1, run: h.phone},
		"add-birthday":  {usage: "add-birthday <name> <YYYY-MM-DD>", args: 2, run: h.addBirthday},
		"show-birthday": {usage: "show-birthday <name>", args: 1, run: h.showBirthday},
		"birthdays":     {usage: "birthdays [days]", args: 1, optional: 1, run: h.birthdays},
		"delete":        {usage: "delete <name>", args: 1, run: h.deleteContact},
		"all":           {usage: "all [page]", args: 1, optional: 1, run: h.all},
	}
	return h
}

// Run читает команды из in построчно и пишет ответы в out до EOF,
// команды выхода или отмены ctx.
// Если в ctx нет logger, команды пишут в текущий глобальный.
func (h *Handler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if _, err := logger.FromContext(ctx); err != nil {
		ctx = logger.NewContext(ctx, logger.Log(ctx))
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if h.opts.Prompt != "" {
			if _, err := fmt.Fprint(out, h.opts.Prompt+" "); err != nil {
				return err
			}
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-errc
			}
			line = l
		}

		reply, exit := h.Execute(logger.NewRequestIDContext(ctx, ""), line)
		if reply != "" {
			if _, err := fmt.Fprintln(out, reply); err != nil {
				return err
			}
		}
		if exit {
			return nil
		}
	}
}

// Execute выполняет одну строку команды и возвращает ответ.
// exit равен true, если пользователь попросил выйти.
func (h *Handler) Execute(ctx context.Context, line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	verb, args := strings.ToLower(fields[0]), fields[1:]
	logger.Log(ctx).Debug(ctx, logCommandReceived, zap.String("command", verb), zap.Int("args", len(args)))

	if verb == "close" || verb == "exit" {
		return MsgGoodbye, true
	}

	cmd, ok := h.commands[verb]
	if !ok {
		return MsgInvalidCommand, false
	}
	if len(args) > cmd.args || len(args) < cmd.args-cmd.optional {
		return "Usage: " + cmd.usage, false
	}

	reply, err := cmd.run(ctx, args)
	if err != nil {
		logger.Log(ctx).Warn(ctx, logCommandFailed, zap.String("command", verb), zap.Error(err))
		return errorMessage(err), false
	}
	return reply, false
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, entities.ErrInvalidPhone):
		return MsgInvalidPhone
	case errors.Is(err, entities.ErrInvalidBirthday):
		return MsgInvalidBirthday
	case errors.Is(err, entities.ErrPhoneNotFound):
		return MsgPhoneNotFound
	case errors.Is(err, entities.ErrBirthdayOutOfRange):
		return MsgOutOfRange
	case errors.Is(err, entities.ErrEmptyName):
		return MsgEmptyName
	case errors.Is(err, app.ErrContactNotFound):
		return MsgContactNotFound
	case errors.Is(err, app.ErrInvalidParams):
		return MsgInvalidArgs
	default:
		return "Error: " + err.Error()
	}
}

func (h *Handler) hello(context.Context, []string) (string, error) { return MsgGreeting, nil }

func (h *Handler) help(context.Context, []string) (string, error) { return helpText, nil }

func (h *Handler) add(ctx context.Context, args []string) (string, error) {
	created, err := h.useCase.AddContact(ctx, args[0], args[1])
	if err != nil {
		return "", err
	}
	if created {
		return MsgContactAdded, nil
	}
	return MsgContactUpdated, nil
}

func (h *Handler) change(ctx context.Context, args []string) (string, error) {
	if err := h.useCase.ChangePhone(ctx, args[0], args[1], args[2]); err != nil {
		return "", err
	}
	return MsgContactUpdated, nil
}

func (h *Handler) removePhone(ctx context.Context, args []string) (string, error) {
	if err := h.useCase.RemovePhone(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return MsgPhoneRemoved, nil
}

func (h *Handler) phone(ctx context.Context, args []string) (string, error) {
	phones, err := h.useCase.Phones(ctx, args[0])
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return args[0] + " has no phones.", nil
	}

	values := make([]string, 0, len(phones))
	for _, p := range phones {
		values = append(values, p.String())
	}
	return args[0] + ": " + strings.Join(values, "; "), nil
}

func (h *Handler) addBirthday(ctx context.Context, args []string) (string, error) {
	if err := h.useCase.AddBirthday(ctx, args[0], args[1]); err != nil {
		return "", err
	}
	return MsgBirthdayAdded, nil
}

func (h *Handler) showBirthday(ctx context.Context, args []string) (string, error) {
	birthday, days, ok, err := h.useCase.DaysToBirthday(ctx, args[0])
	if err != nil {
		return "", err
	}
	if !ok {
		return args[0] + " has no birthday.", nil
	}
	return fmt.Sprintf("%s: %s, %d days left.", args[0], birthday, days), nil
}

func (h *Handler) birthdays(ctx context.Context, args []string) (string, error) {
	days := h.opts.BirthdaysWindow
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("days %q: %w", args[0], app.ErrInvalidParams)
		}
		days = n
	}

	upcoming, err := h.useCase.UpcomingBirthdays(ctx, days)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return MsgNoUpcoming, nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		birthday, _ := u.Record.Birthday()
		lines = append(lines, fmt.Sprintf("%s: in %d days (%s)", u.Record.Name(), u.Days, birthday))
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) deleteContact(ctx context.Context, args []string) (string, error) {
	if err := h.useCase.DeleteContact(ctx, args[0]); err != nil {
		return "", err
	}
	return MsgContactDeleted, nil
}

func (h *Handler) all(ctx context.Context, args []string) (string, error) {
	number := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("page %q: %w", args[0], app.ErrInvalidParams)
		}
		number = n
	}

	page, err := h.useCase.Page(ctx, number, h.opts.PageSize)
	if err != nil {
		return "", err
	}
	if page.Total == 0 {
		return MsgEmptyBook, nil
	}

	lines := make([]string, 0, len(page.Records)+1)
	for _, r := range page.Records {
		lines = append(lines, r.String())
	}
	lines = append(lines, fmt.Sprintf("Page %d of %d", page.Number, page.Total))
	return strings.Join(lines, "\n"), nil
}
