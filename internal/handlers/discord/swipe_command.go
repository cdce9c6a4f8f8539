package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
)

// Subcommands of /swipe
const (
	subCheck   = "check"
	subStatus  = "status"
	subOnline  = "online"
	subOffline = "offline"
	subSave    = "save"
	subStudent = "student"
	subCount   = "count"
)

// SwipeCommand handles the /swipe command
type SwipeCommand struct {
	BaseCommand
	checkinService   checkin.Service
	messagingService messaging.Service
}

// NewSwipeCommand creates a new swipe command handler
func NewSwipeCommand(checkinService checkin.Service, messagingService messaging.Service) *SwipeCommand {
	return &SwipeCommand{
		BaseCommand: BaseCommand{
			Name:        "swipe",
			Description: "Event check-in commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subCheck,
					Description: "Check in a student number",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "identifier",
							Description: "Student number",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subStatus,
					Description: "Show the loaded event and unsaved check-ins",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subOnline,
					Description: "Go online and save unsaved check-ins",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subOffline,
					Description: "Go offline, check-ins are kept until saved",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subSave,
					Description: "Retry unsaved check-ins",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subStudent,
					Description: "Look up a student",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "number",
							Description: "Student number",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subCount,
					Description: "Show the booking system attendee count",
				},
			},
		},
		checkinService:   checkinService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the swipe command
func (c *SwipeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := make(map[string]string, len(sub.Options))
	for _, option := range sub.Options {
		options[option.Name] = option.StringValue()
	}

	return c.dispatch(s, i, sub.Name, options)
}

// dispatch defers subcommands that may talk to the booking system for long
func (c *SwipeCommand) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, sub string, options map[string]string) error {
	ctx := context.Background()

	if sub == subOnline || sub == subSave {
		if err := Defer(s, i); err != nil {
			return fmt.Errorf("failed to defer %s: %w", sub, err)
		}
		return FollowUp(s, i, c.run(ctx, sub, options))
	}

	return RespondWithEmbed(s, i, c.run(ctx, sub, options))
}

// run executes a subcommand and renders its answer
func (c *SwipeCommand) run(ctx context.Context, sub string, options map[string]string) *response {
	switch sub {
	case subCheck:
		out, err := c.checkinService.CheckIdentifier(ctx, &checkin.CheckIdentifierInput{Identifier: options["identifier"]})
		if err != nil {
			return c.errorResponse(ctx, err)
		}
		msg, err := c.messagingService.GetCheckInMessage(ctx, &messaging.GetCheckInMessageInput{
			Booking: out.Booking,
			Queued:  out.Queued,
			Held:    out.Held,
		})
		if err != nil {
			return c.errorResponse(ctx, err)
		}
		return &response{Embed: embed(msg.Title, msg.Message, msg.Severity)}

	case subStatus:
		status, err := c.checkinService.Status(ctx)
		if err != nil {
			return c.errorResponse(ctx, err)
		}
		return renderStatus(status)

	case subOnline:
		out, err := c.checkinService.GoOnline(ctx)
		if out == nil || (err != nil && out.Replay == nil) {
			return c.errorResponse(ctx, err)
		}
		if out.Replay == nil {
			return &response{Embed: embed("Online", "Connected to the booking system.", messaging.SeveritySuccess)}
		}
		return c.replayResponse(ctx, out.Replay)

	case subOffline:
		c.checkinService.GoOffline()
		return &response{Embed: embed("Offline", "Check-ins are kept until they are saved.", messaging.SeverityWarning)}

	case subSave:
		out, err := c.checkinService.ReplayUnsaved(ctx)
		if out == nil {
			return c.errorResponse(ctx, err)
		}
		return c.replayResponse(ctx, out)

	case subStudent:
		out, err := c.checkinService.GetStudent(ctx, &checkin.GetStudentInput{Number: options["number"]})
		if err != nil {
			return c.errorResponse(ctx, err)
		}
		return renderStudent(out.Student)

	case subCount:
		count, err := c.checkinService.RemoteAttendeeCount(ctx)
		if err != nil {
			return c.errorResponse(ctx, err)
		}
		return &response{Embed: embed("Attendees", fmt.Sprintf("The booking system has %d attendees recorded.", count), messaging.SeverityInfo)}
	}

	return c.errorResponse(ctx, errors.New("unknown subcommand"))
}

func (c *SwipeCommand) replayResponse(ctx context.Context, out *checkin.ReplayOutput) *response {
	msg, err := c.messagingService.GetReplayMessage(ctx, &messaging.GetReplayMessageInput{
		Attempted: out.Attempted,
		Saved:     out.Saved,
		Remaining: out.Remaining,
		EventFull: out.EventFull,
	})
	if err != nil {
		return c.errorResponse(ctx, err)
	}

	resp := &response{Embed: embed("Save", msg.Message, msg.Severity)}
	if out.Remaining > 0 && !out.EventFull {
		resp.Components = saveButtons()
	}

	return resp
}

func (c *SwipeCommand) errorResponse(ctx context.Context, err error) *response {
	log.Printf("Swipe command failed: %v", err)

	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return &response{Embed: embed("Error", err.Error(), messaging.SeverityError), Ephemeral: true}
	}

	return &response{Embed: embed("Error", msg.Message, messaging.SeverityError), Ephemeral: true}
}
