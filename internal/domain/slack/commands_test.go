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
		{name: "skip with argument", text: "skip 7", wantType: CmdSkip, wantArgs: []string{"7"}},
		{name: "skip without argument", text: "skip", wantType: CmdSkip},
		{name: "skip with extra whitespace", text: "  skip   3  ", wantType: CmdSkip, wantArgs: []string{"3"}},
		{name: "status", text: "status", wantType: CmdStatus},
		{name: "help", text: "help", wantType: CmdHelp},
		{name: "empty text defaults to help", text: "", wantType: CmdHelp},
		{name: "unknown command", text: "dance", wantErr: true},
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
