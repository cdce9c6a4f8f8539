package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/KirkDiggler/eventswipe/internal/export"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
)

const help = `Commands:
  :load <event key> [waiting]   load an event from the booking system
  :offline-event <title> <file>...   enter an event from booking list files
  :waitlist <file>              load a waiting list file
  :lists on|off                 check the booking list
  :waiting on|off               check the waiting list
  :online                       go online and save unsaved check-ins
  :offline                      go offline
  :save                         retry unsaved check-ins
  :export [file]                write unsaved check-ins to a file
  :unsaved                      list unsaved check-ins
  :discard yes                  throw away unsaved check-ins
  :early <number>               add a number to the early list
  :status                       show the session
  :history [number]             show recorded check-ins
  :events                       list upcoming events
  :login                        sign in to the booking system admin pages
  :student <number>             look up a student
  :search <term>                search students
  :cancel <number>              cancel a booking
  :count                        booking system attendee count
  :finish [absent] [notify]     finish the event
  :quit                         exit when everything is saved
  :quit!                        exit, unsaved check-ins wait for the next run
`

// command runs a : command and reports whether the console should exit
func (c *Console) command(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case ":help":
		c.printf("%s", help)

	case ":load":
		c.load(ctx, args)

	case ":offline-event":
		c.offlineEvent(ctx, args)

	case ":waitlist":
		if len(args) != 1 {
			c.printf("usage: :waitlist <file>\n")
			return false
		}
		identifiers, err := readLines(args[0])
		if err != nil {
			c.printError(ctx, err)
			return false
		}
		if err := c.checkin.LoadWaitingList(ctx, &checkin.LoadWaitingListInput{Identifiers: identifiers}); err != nil {
			c.printError(ctx, err)
			return false
		}
		c.printf("Loaded %d waiting list numbers\n", len(identifiers))

	case ":lists":
		enabled, ok := onOff(args)
		if !ok {
			c.printf("usage: :lists on|off\n")
			return false
		}
		c.checkin.SetBookingListChecking(enabled)
		c.printf("Booking list checking %s\n", args[0])

	case ":waiting":
		enabled, ok := onOff(args)
		if !ok {
			c.printf("usage: :waiting on|off\n")
			return false
		}
		c.checkin.SetWaitingListChecking(enabled)
		c.printf("Waiting list checking %s\n", args[0])

	case ":online":
		out, err := c.checkin.GoOnline(ctx)
		switch {
		case out != nil && out.Replay != nil:
			c.printReplay(ctx, out.Replay)
		case err != nil:
			c.printError(ctx, err)
		default:
			c.printf("%s Online\n", label(messaging.SeveritySuccess))
		}

	case ":offline":
		c.checkin.GoOffline()
		c.printf("%s Offline, check-ins are kept until they are saved\n", label(messaging.SeverityWarning))

	case ":save":
		out, err := c.checkin.ReplayUnsaved(ctx)
		if out != nil {
			c.printReplay(ctx, out)
		} else if err != nil {
			c.printError(ctx, err)
		}

	case ":export":
		c.export(ctx, args)

	case ":unsaved":
		c.unsaved(ctx)

	case ":discard":
		if len(args) != 1 || args[0] != "yes" {
			c.printf("usage: :discard yes\n")
			return false
		}
		out, err := c.checkin.DiscardUnsaved(ctx)
		if err != nil {
			c.printError(ctx, err)
			return false
		}
		c.printf("%s Discarded %d unsaved check-ins\n", label(messaging.SeverityWarning), out.Discarded)

	case ":early":
		if len(args) != 1 {
			c.printf("usage: :early <number>\n")
			return false
		}
		if err := c.checkin.AddToEarlyList(ctx, &checkin.AddToEarlyListInput{Identifier: args[0]}); err != nil {
			c.printError(ctx, err)
			return false
		}
		c.printf("%s %s added to the early list\n", label(messaging.SeverityWarning), args[0])

	case ":status":
		c.status(ctx)

	case ":history":
		c.history(ctx, args)

	case ":events":
		c.events(ctx)

	case ":login":
		out, err := c.checkin.Authenticate(ctx, &checkin.AuthenticateInput{Username: c.username, Password: c.password})
		switch {
		case err != nil:
			c.printError(ctx, err)
		case out.Success:
			c.printf("%s Signed in\n", label(messaging.SeveritySuccess))
		default:
			c.printf("%s Sign in failed\n", label(messaging.SeverityError))
		}

	case ":student":
		if len(args) != 1 {
			c.printf("usage: :student <number>\n")
			return false
		}
		out, err := c.checkin.GetStudent(ctx, &checkin.GetStudentInput{Number: args[0]})
		if err != nil {
			c.printError(ctx, err)
			return false
		}
		c.printf("%s %s %s\n", out.Student.Number, out.Student.FirstName, out.Student.LastName)

	case ":search":
		if len(args) == 0 {
			c.printf("usage: :search <term>\n")
			return false
		}
		out, err := c.checkin.SearchStudents(ctx, &checkin.SearchStudentsInput{Term: strings.Join(args, " ")})
		if err != nil {
			c.printError(ctx, err)
			return false
		}
		for _, student := range out.Students {
			c.printf("%s %s %s\n", student.Number, student.FirstName, student.LastName)
		}
		c.printf("%d students found\n", len(out.Students))

	case ":cancel":
		if len(args) != 1 {
			c.printf("usage: :cancel <number>\n")
			return false
		}
		if err := c.checkin.CancelBooking(ctx, &checkin.CancelBookingInput{Identifier: args[0]}); err != nil {
			c.printError(ctx, err)
			return false
		}
		c.printf("Booking of %s cancelled\n", args[0])

	case ":count":
		count, err := c.checkin.RemoteAttendeeCount(ctx)
		if err != nil {
			c.printError(ctx, err)
			return false
		}
		c.printf("The booking system has %d attendees recorded\n", count)

	case ":finish":
		return c.finish(ctx, args)

	case ":quit":
		return c.quit(ctx)

	case ":quit!":
		c.printf("Exiting, unsaved check-ins stay in the ledger\n")
		return true

	default:
		c.printf("Unknown command %s, :help for commands\n", name)
	}

	return false
}

func (c *Console) load(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.printf("usage: :load <event key> [waiting]\n")
		return
	}

	out, err := c.checkin.LoadEvent(ctx, &checkin.LoadEventInput{
		EventKey:       args[0],
		UseWaitingList: len(args) > 1 && args[1] == "waiting",
	})
	if err != nil {
		c.printError(ctx, err)
		return
	}

	c.printf("Loaded %s: %d bookings, %d on the waiting list\n", out.Event.Title, out.Event.BookingListSize, out.Event.WaitingListSize)
	if out.Unsaved > 0 {
		c.printf("%s %d unsaved check-ins from an earlier run, :save or :export them\n", label(messaging.SeverityWarning), out.Unsaved)
	}
}

func (c *Console) offlineEvent(ctx context.Context, args []string) {
	if len(args) == 0 {
		c.printf("usage: :offline-event <title> <file>...\n")
		return
	}

	lists := make([][]string, 0, len(args)-1)
	for _, path := range args[1:] {
		identifiers, err := readLines(path)
		if err != nil {
			c.printError(ctx, err)
			return
		}
		lists = append(lists, identifiers)
	}

	out, err := c.checkin.LoadOfflineEvent(ctx, &checkin.LoadOfflineEventInput{
		Title:        args[0],
		BookingLists: lists,
	})
	if err != nil {
		c.printError(ctx, err)
		return
	}

	c.printf("Entered %s: %d sessions, %d bookings\n", out.Event.Title, out.Event.SessionCount, out.Event.BookingListSize)
}

func (c *Console) export(ctx context.Context, args []string) {
	status, err := c.checkin.Status(ctx)
	if err != nil {
		c.printError(ctx, err)
		return
	}
	if !status.Loaded {
		c.printError(ctx, checkin.ErrNoEvent)
		return
	}

	name := export.FileName(status.Event.Title, c.clock.Now())
	if len(args) > 0 {
		name = args[0]
	}
	path := export.Path(c.exportDir, name)

	file, err := os.Create(path)
	if err != nil {
		c.printError(ctx, fmt.Errorf("failed to create %s: %w", path, err))
		return
	}

	out, err := c.checkin.Export(ctx, &checkin.ExportInput{Writer: file})
	closeErr := file.Close()
	if err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		c.printError(ctx, err)
		return
	}

	c.printf("%s Exported %d unsaved check-ins to %s\n", label(messaging.SeveritySuccess), out.Count, path)
}

func (c *Console) status(ctx context.Context) {
	status, err := c.checkin.Status(ctx)
	if err != nil {
		c.printError(ctx, err)
		return
	}

	if !status.Loaded {
		c.printf("No event loaded, %s\n", status.Mode)
		return
	}

	saved := "saved"
	if !status.Saved {
		saved = "UNSAVED"
	}

	c.printf("%s\n  mode %s, %s, %d unsaved\n  checked in %d, bookings %d, waiting list %d\n",
		status.Event.Title, status.Mode, saved, status.Unsaved,
		status.Event.RecordedCount, status.Event.BookingCount, status.Event.WaitingListSize)
	if status.EventFull {
		c.printf("%s Event is full\n", label(messaging.SeverityError))
	}
	if status.AdminURL != "" {
		c.printf("  %s\n", status.AdminURL)
	}
}

func (c *Console) unsaved(ctx context.Context) {
	out, err := c.checkin.ListUnsaved(ctx)
	if err != nil {
		c.printError(ctx, err)
		return
	}

	if len(out.Identifiers) == 0 {
		c.printf("Nothing unsaved\n")
		return
	}

	for _, identifier := range out.Identifiers {
		c.printf("  %s\n", identifier)
	}
	c.printf("%d unsaved\n", len(out.Identifiers))
}

func (c *Console) history(ctx context.Context, args []string) {
	input := &checkin.HistoryInput{}
	if len(args) > 0 {
		input.Identifier = args[0]
	}

	out, err := c.checkin.History(ctx, input)
	if err != nil {
		c.printError(ctx, err)
		return
	}

	for _, record := range out.Records {
		c.printf("%s %s %s %s\n", record.Timestamp.Format("15:04:05"), record.Identifier, record.Source, record.Status)
	}
	c.printf("%d records\n", len(out.Records))
}

func (c *Console) events(ctx context.Context) {
	out, err := c.checkin.ListEvents(ctx)
	if err != nil {
		c.printError(ctx, err)
		return
	}

	for _, event := range out.Events {
		c.printf("%s  %s  %s\n", event.ID, event.StartTime.Format("02/01 15:04"), event.Title)
	}
}

func (c *Console) finish(ctx context.Context, args []string) bool {
	input := &checkin.FinishInput{}
	for _, arg := range args {
		switch arg {
		case "absent":
			input.MarkAbsent = true
		case "notify":
			input.Notify = true
		}
	}

	err := c.checkin.Finish(ctx, input)
	if errors.Is(err, checkin.ErrUnsaved) {
		c.printf("%s There are unsaved check-ins, :save or :export them first\n", label(messaging.SeverityWarning))
		return false
	}
	if err != nil {
		c.printError(ctx, err)
		return false
	}

	c.printf("Finished\n")
	return true
}

// quit exits only when every check-in is saved
func (c *Console) quit(ctx context.Context) bool {
	status, err := c.checkin.Status(ctx)
	if err != nil {
		c.printError(ctx, err)
		return false
	}

	if !status.Saved {
		c.printf("%s There are unsaved check-ins. :export them, :discard yes, or :quit! to leave them for the next run\n", label(messaging.SeverityWarning))
		return false
	}

	return true
}

func (c *Console) printReplay(ctx context.Context, out *checkin.ReplayOutput) {
	msg, err := c.messaging.GetReplayMessage(ctx, &messaging.GetReplayMessageInput{
		Attempted: out.Attempted,
		Saved:     out.Saved,
		Remaining: out.Remaining,
		EventFull: out.EventFull,
	})
	if err != nil {
		c.printError(ctx, err)
		return
	}

	c.printf("%s %s\n", label(msg.Severity), msg.Message)
}

func onOff(args []string) (bool, bool) {
	if len(args) != 1 {
		return false, false
	}

	switch args[0] {
	case "on":
		return true, true
	case "off":
		return false, true
	}

	return false, false
}

// readLines reads a booking or waiting list file, one identifier per line
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}
