package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
)

// Embed colors
const (
	colorSuccess = 0x00ff00
	colorInfo    = 0x3498db
	colorWarning = 0xffa500
	colorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// response is what a command answers with
type response struct {
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Ephemeral  bool
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, resp *response) error {
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{resp.Embed},
		Components: resp.Components,
	}
	if resp.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// Defer acknowledges an interaction whose answer takes longer than Discord waits
func Defer(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// FollowUp sends the answer to a deferred interaction
func FollowUp(s *discordgo.Session, i *discordgo.InteractionCreate, resp *response) error {
	params := &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{resp.Embed},
		Components: resp.Components,
	}
	if resp.Ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	_, err := s.FollowupMessageCreate(i.Interaction, true, params)
	return err
}

// embed builds an embed colored by severity
func embed(title, description string, severity messaging.Severity) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorFor(severity),
	}
}

func colorFor(severity messaging.Severity) int {
	switch severity {
	case messaging.SeveritySuccess:
		return colorSuccess
	case messaging.SeverityWarning:
		return colorWarning
	case messaging.SeverityError:
		return colorError
	default:
		return colorInfo
	}
}
