package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/studyping/slack-study-bot/internal/handlers"
	"github.com/studyping/slack-study-bot/mocks"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	ScheduleServiceMock *mocks.MockScheduleService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ScheduleServiceMock: mocks.NewMockScheduleService(ctrl),
	}

	handler = handlers.New(m.ScheduleServiceMock, SigningSecret)

	return
}

// CreateSlashCommandRequest creates a properly signed Slack slash command request
func CreateSlashCommandRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signRequest(req, signingSecret, body)

	return req
}

// CreateEventRequest creates a properly signed Slack Events API request
// carrying the given JSON payload.
func CreateEventRequest(t *testing.T, payload, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(payload))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	signRequest(req, signingSecret, payload)

	return req
}

func signRequest(req *http.Request, signingSecret, body string) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
