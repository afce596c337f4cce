package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	"github.com/studyping/slack-study-bot/internal/domain"
	"github.com/studyping/slack-study-bot/internal/domain/contract"
	slackcmd "github.com/studyping/slack-study-bot/internal/slack"
)

type SlackHandler struct {
	scheduleService contract.ScheduleService
	signingSecret   string
}

func New(scheduleService contract.ScheduleService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		scheduleService: scheduleService,
		signingSecret:   signingSecret,
	}
}

// HandleSlashCommand serves the /study slash command.
func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleEvents serves the Slack Events API: the URL-verification handshake
// and the reaction events that drive schedule opt-in/opt-out.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		switch ev := event.InnerEvent.Data.(type) {
		case *slackevents.ReactionAddedEvent:
			h.scheduleService.OptIn(ev.Item.Timestamp, ev.User)
		case *slackevents.ReactionRemovedEvent:
			h.scheduleService.OptOut(ev.Item.Timestamp, ev.User)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

// verifiedBody reads the request body and checks the Slack signature,
// writing the failure status itself when verification fails.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSchedule:
		return h.handleSchedule(cmd, slashCmd)
	case slackcmd.CmdChannel:
		return h.handleChannel(cmd, slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleSchedule(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide a time: `/study schedule HH:MM [mm/dd/yyyy]`")
	}

	timeText := cmd.Args[0]
	dateText := ""
	if len(cmd.Args) > 1 {
		dateText = cmd.Args[1]
	}

	confirmation, err := h.scheduleService.CreateSchedule(slashCmd.TeamID, slashCmd.UserID, slashCmd.UserName, timeText, dateText)
	if err != nil {
		if msg := domain.UserMessageOf(err); msg != "" {
			return h.createErrorResponse(fmt.Sprintf("Bad Command: %s", msg))
		}
		log.Printf("Failed to create schedule for user %s: %v", slashCmd.UserID, err)
		return h.createErrorResponse("Could not schedule the ping, please try again")
	}

	// Confirmation stays between the bot and the requester; the public
	// announcement was already posted to the preferred channel.
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         confirmation,
	}
}

func (h *SlackHandler) handleChannel(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention a channel: `/study channel #channel`")
	}

	channelID, channelName, ok := parseChannelMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Could not read that channel. Use `/study channel #channel`")
	}

	if err := h.scheduleService.SetPreferredChannel(slashCmd.TeamID, channelID, channelName); err != nil {
		log.Printf("Failed to set preferred channel for team %s: %v", slashCmd.TeamID, err)
		return h.createErrorResponse("Could not save the channel preference")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Study announcements will be posted in <#%s>", channelID),
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 || cmd.Args[0] != "show" {
		return h.createErrorResponse("Use: `/study config show`")
	}

	pref, err := h.scheduleService.GetPreferredChannel(slashCmd.TeamID)
	if err != nil {
		log.Printf("Failed to get preferred channel for team %s: %v", slashCmd.TeamID, err)
		return h.createErrorResponse("Could not read the channel preference")
	}

	if pref == nil {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No channel configured yet. Use `/study channel #channel` first.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("Study announcements are posted in <#%s>", pref.SlackChannelID),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// parseChannelMention extracts the channel ID and name from the escaped
// form Slack sends for channel arguments: <#C123456|channel-name>.
func parseChannelMention(arg string) (channelID, channelName string, ok bool) {
	mention := strings.TrimSpace(arg)
	if !strings.HasPrefix(mention, "<#") || !strings.HasSuffix(mention, ">") {
		return "", "", false
	}

	mention = strings.TrimSuffix(strings.TrimPrefix(mention, "<#"), ">")
	parts := strings.SplitN(mention, "|", 2)
	if parts[0] == "" {
		return "", "", false
	}

	channelID = parts[0]
	if len(parts) == 2 {
		channelName = parts[1]
	}
	return channelID, channelName, true
}
