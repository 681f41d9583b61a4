package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"contactbook/internal/contacts/adapters/cli"
	"contactbook/internal/contacts/app"
	"contactbook/internal/contacts/book"
	"contactbook/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newHandler(opts cli.Options) *cli.Handler {
	repo := book.NewAddressBook()
	useCase := app.NewContactUseCase(repo).WithClock(func() time.Time {
		return time.Date(2024, time.January, 1, 10, 0, 0, 0, time.Local)
	})
	return cli.NewHandler(useCase, opts)
}

func testContext() context.Context {
	return logger.NewContext(context.Background(), logger.NewNop())
}

func TestExecute(t *testing.T) {
	h := newHandler(cli.Options{PageSize: 2, BirthdaysWindow: 7})
	ctx := testContext()

	steps := []struct {
		line  string
		reply string
		exit  bool
	}{
		{"", "", false},
		{"hello", cli.MsgGreeting, false},
		{"HELLO", cli.MsgGreeting, false},
		{"unknown", cli.MsgInvalidCommand, false},
		{"add Alice", "Usage: add <name> <phone>", false},
		{"add Alice 123", cli.MsgInvalidPhone, false},
		{"phone Alice", cli.MsgContactNotFound, false},
		{"add Alice 1234567890", cli.MsgContactAdded, false},
		{"add Alice 1234567890", cli.MsgContactUpdated, false},
		{"phone Alice", "Alice: 1234567890; 1234567890", false},
		{"change Alice 1234567890 5555555555", cli.MsgContactUpdated, false},
		{"phone Alice", "Alice: 5555555555; 5555555555", false},
		{"change Alice 0000000000 1111111111", cli.MsgPhoneNotFound, false},
		{"remove-phone Alice 5555555555", cli.MsgPhoneRemoved, false},
		{"phone Alice", "Alice has no phones.", false},
		{"show-birthday Alice", "Alice has no birthday.", false},
		{"add-birthday Alice 2024-02-30", cli.MsgInvalidBirthday, false},
		{"add-birthday Alice 2000-06-15", cli.MsgBirthdayAdded, false},
		{"show-birthday Alice", "Alice: 2000-06-15, 166 days left.", false},
		{"add Bob 2222222222", cli.MsgContactAdded, false},
		{"add-birthday Bob 1990-01-03", cli.MsgBirthdayAdded, false},
		{"add Leap 3333333333", cli.MsgContactAdded, false},
		{"add-birthday Leap 2000-02-29", cli.MsgBirthdayAdded, false},
		{"show-birthday Leap", "Leap: 2000-02-29, 59 days left.", false},
		{"birthdays", "Bob: in 2 days (1990-01-03)", false},
		{"birthdays 0", cli.MsgNoUpcoming, false},
		{"birthdays 60", "Bob: in 2 days (1990-01-03)\nLeap: in 59 days (2000-02-29)", false},
		{"birthdays soon", cli.MsgInvalidArgs, false},
		{"birthdays -1", cli.MsgInvalidArgs, false},
		{"all", "Contact name: Alice, phones: , birthday: 2000-06-15\n" +
			"Contact name: Bob, phones: 2222222222, birthday: 1990-01-03\nPage 1 of 2", false},
		{"all 2", "Contact name: Leap, phones: 3333333333, birthday: 2000-02-29\nPage 2 of 2", false},
		{"all 0", cli.MsgInvalidArgs, false},
		{"delete Bob", cli.MsgContactDeleted, false},
		{"delete Bob", cli.MsgContactNotFound, false},
		{"exit", cli.MsgGoodbye, true},
	}

	for _, step := range steps {
		reply, exit := h.Execute(ctx, step.line)
		assert.Equal(t, step.reply, reply, "line %q", step.line)
		assert.Equal(t, step.exit, exit, "line %q", step.line)
	}
}

func TestExecuteEmptyBook(t *testing.T) {
	h := newHandler(cli.Options{})
	ctx := testContext()

	reply, _ := h.Execute(ctx, "all")
	assert.Equal(t, cli.MsgEmptyBook, reply)

	reply, _ = h.Execute(ctx, "birthdays")
	assert.Equal(t, cli.MsgNoUpcoming, reply)

	reply, _ = h.Execute(ctx, "help")
	assert.Contains(t, reply, "add <name> <phone>")
}

func TestRun(t *testing.T) {
	t.Run("processes lines until exit", func(t *testing.T) {
		h := newHandler(cli.Options{Prompt: "contacts>"})
		in := strings.NewReader("hello\nadd Alice 1234567890\nclose\nhello\n")
		var out bytes.Buffer

		require.NoError(t, h.Run(testContext(), in, &out))

		expected := "contacts> " + cli.MsgGreeting + "\n" +
			"contacts> " + cli.MsgContactAdded + "\n" +
			"contacts> " + cli.MsgGoodbye + "\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("stops at EOF", func(t *testing.T) {
		h := newHandler(cli.Options{})
		var out bytes.Buffer

		require.NoError(t, h.Run(testContext(), strings.NewReader("hello"), &out))
		assert.Equal(t, cli.MsgGreeting+"\n", out.String())
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		h := newHandler(cli.Options{})
		ctx, cancel := context.WithCancel(testContext())
		cancel()
		var out bytes.Buffer

		err := h.Run(ctx, strings.NewReader("hello\n"), &out)
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, out.String())
	})

	t.Run("logs with global logger and per-command request id", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		logger.SetGlobalLogger(logger.Wrap(zap.New(core)))
		t.Cleanup(func() { logger.SetGlobalLogger(nil) })

		h := newHandler(cli.Options{})
		in := strings.NewReader("add Alice 123\ndelete Bob\n")
		var out bytes.Buffer

		require.NoError(t, h.Run(context.Background(), in, &out))

		failed := logs.FilterMessage("command failed").All()
		require.Len(t, failed, 2)
		first, ok := failed[0].ContextMap()[logger.RequestID].(string)
		require.True(t, ok)
		second, ok := failed[1].ContextMap()[logger.RequestID].(string)
		require.True(t, ok)
		assert.NotEqual(t, first, second)

		missing := logs.FilterMessage("contact does not exist").All()
		require.Len(t, missing, 1)
		assert.Equal(t, second, missing[0].ContextMap()[logger.RequestID])
	})
}
