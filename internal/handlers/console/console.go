package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/eventswipe/internal/common/clock"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
)

const prompt = "> "

// Config holds the dependencies of the console
type Config struct {
	CheckInService   checkin.Service
	MessagingService messaging.Service
	Clock            clock.Clock

	// In is read one identifier or command per line, a barcode scanner types into it
	In io.Reader
	Out io.Writer

	// ExportDir is where :export writes files
	ExportDir string

	// Username and Password sign in to the booking system admin pages on :login
	Username string
	Password string
}

// Console is the keyboard and scanner front-end
type Console struct {
	checkin   checkin.Service
	messaging messaging.Service
	clock     clock.Clock
	in        io.Reader
	exportDir string
	username  string
	password  string

	mu  sync.Mutex
	out io.Writer
}

// New creates a console
func New(cfg *Config) (*Console, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CheckInService == nil {
		return nil, ErrNilCheckInService
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.In == nil {
		return nil, ErrNilInput
	}

	if cfg.Out == nil {
		return nil, ErrNilOutput
	}

	dir := cfg.ExportDir
	if dir == "" {
		dir = "."
	}

	return &Console{
		checkin:   cfg.CheckInService,
		messaging: cfg.MessagingService,
		clock:     cfg.Clock,
		in:        cfg.In,
		out:       cfg.Out,
		exportDir: dir,
		username:  cfg.Username,
		password:  cfg.Password,
	}, nil
}

// Run reads lines until the input ends, ctx is done or the operator quits
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)

	c.printf("Type or scan a student number, :help for commands\n%s", prompt)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			c.printf("%s", prompt)
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := c.command(ctx, line); quit {
				return nil
			}
		} else {
			c.check(ctx, line)
		}

		c.printf("%s", prompt)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

// PrintNotice writes a background submission notice between prompts
func (c *Console) PrintNotice(ctx context.Context, notice *checkin.Notice) {
	msg, err := c.messaging.GetNoticeMessage(ctx, &messaging.GetNoticeMessageInput{
		Identifier: notice.Identifier,
		Name:       notice.Name,
		Outcome:    notice.Outcome,
		Unsaved:    notice.Unsaved,
		Held:       notice.Held,
	})
	if err != nil {
		log.Printf("Failed to render notice for %s: %v", notice.Identifier, err)
		return
	}

	c.printf("\n%s %s\n%s", label(msg.Severity), msg.Message, prompt)
}

func (c *Console) check(ctx context.Context, identifier string) {
	out, err := c.checkin.CheckIdentifier(ctx, &checkin.CheckIdentifierInput{Identifier: identifier})
	if err != nil {
		c.printError(ctx, err)
		return
	}

	msg, err := c.messaging.GetCheckInMessage(ctx, &messaging.GetCheckInMessageInput{
		Booking: out.Booking,
		Queued:  out.Queued,
		Held:    out.Held,
	})
	if err != nil {
		c.printError(ctx, err)
		return
	}

	c.printf("%s %s: %s\n", label(msg.Severity), msg.Title, msg.Message)
}

func (c *Console) printError(ctx context.Context, err error) {
	msg, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		c.printf("%s %v\n", label(messaging.SeverityError), err)
		return
	}

	c.printf("%s %s\n", label(messaging.SeverityError), msg.Message)
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, format, args...)
}

func label(severity messaging.Severity) string {
	switch severity {
	case messaging.SeveritySuccess:
		return "[OK]"
	case messaging.SeverityWarning:
		return "[!!]"
	case messaging.SeverityError:
		return "[XX]"
	default:
		return "[--]"
	}
}
