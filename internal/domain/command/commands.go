package command

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdReport CommandType = "report"
	CmdStatus CommandType = "status"
	CmdStart  CommandType = "start"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand accepts "/report", "/report@SomeBot", "report" and Slack slash
// command text. Empty text means a report request.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdReport, Raw: text}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	name := strings.TrimPrefix(parts[0], "/")
	if i := strings.Index(name, "@"); i >= 0 {
		name = name[:i]
	}

	switch strings.ToLower(name) {
	case "report", "":
		cmd.Type = CmdReport
	case "status":
		cmd.Type = CmdStatus
	case "start":
		cmd.Type = CmdStart
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetStartText() string {
	return "Absence notification bot is running.\n\nCommands:\n/report - get absence report now"
}

func GetHelpText() string {
	return `Commands:
/report - get absence report
/status - show schedule and recent deliveries
/start - bot information`
}
