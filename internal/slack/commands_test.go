package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "Should parse schedule with time only",
			text:     "schedule 15:30",
			wantType: CmdSchedule,
			wantArgs: []string{"15:30"},
		},
		{
			name:     "Should parse schedule with time and date",
			text:     "schedule 15:30 06/12/2024",
			wantType: CmdSchedule,
			wantArgs: []string{"15:30", "06/12/2024"},
		},
		{
			name:     "Should accept ping as schedule alias",
			text:     "ping 15:30",
			wantType: CmdSchedule,
			wantArgs: []string{"15:30"},
		},
		{
			name:     "Should parse channel command",
			text:     "channel <#C123456|study-hall>",
			wantType: CmdChannel,
			wantArgs: []string{"<#C123456|study-hall>"},
		},
		{
			name:     "Should parse config show",
			text:     "config show",
			wantType: CmdConfig,
			wantArgs: []string{"show"},
		},
		{
			name:     "Should parse help",
			text:     "help",
			wantType: CmdHelp,
		},
		{
			name:     "Should accept info as help alias",
			text:     "info",
			wantType: CmdHelp,
		},
		{
			name:     "Should default to help on empty text",
			text:     "",
			wantType: CmdHelp,
		},
		{
			name:     "Should trim surrounding whitespace",
			text:     "  schedule   15:30  ",
			wantType: CmdSchedule,
			wantArgs: []string{"15:30"},
		},
		{
			name:    "Should fail on unknown command",
			text:    "cancel 42",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()

	assert.Contains(t, help, "/study schedule")
	assert.Contains(t, help, "/study channel")
	assert.Contains(t, help, "/study config show")
}
