package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSchedule CommandType = "schedule"
	CmdChannel  CommandType = "channel"
	CmdConfig   CommandType = "config"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "schedule", "ping":
		cmd.Type = CmdSchedule
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "channel":
		cmd.Type = CmdChannel
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "config":
		cmd.Type = CmdConfig
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "info", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Scheduling:*
• ` + "`/study schedule HH:MM [mm/dd/yyyy]`" + ` - Schedule a study ping (24 hour time; date optional, defaults to today)
  Everyone who reacts to the announcement gets pinged at the scheduled time. Remove your reaction to opt out.

*Configuration:*
• ` + "`/study channel #channel`" + ` - Set the channel announcements and pings are posted to (once per workspace)
• ` + "`/study config show`" + ` - Show the configured channel

*Other:*
• ` + "`/study help`" + ` - Show this message

_Note: all times use the bot's configured timezone. Scheduled pings do not survive a bot restart._`
}
