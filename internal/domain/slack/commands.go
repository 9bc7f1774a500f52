package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSkip   CommandType = "skip"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
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
	case "skip":
		cmd.Type = CmdSkip
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status":
		cmd.Type = CmdStatus
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/problems skip N`" + ` - Make today's delivery land on problem number N
• ` + "`/problems status`" + ` - Show how many problems are stored, sent, and pending
• ` + "`/problems help`" + ` - Show this message`
}
