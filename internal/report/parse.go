package report

import (
	"bytes"
	"strings"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/tidwall/gjson"
)

// Parse reads the generator answer: the last non-empty stdout line must be
// {"success": bool, "message"?: string, "error"?: string, "format"?: "html"|"plain"}.
func Parse(output []byte) (*entity.ReportBody, error) {
	line := lastLine(output)
	if line == "" {
		return nil, malformed("empty output", output)
	}

	if !gjson.Valid(line) {
		return nil, malformed("output is not valid JSON", output)
	}

	result := gjson.Parse(line)
	if !result.IsObject() {
		return nil, malformed("output is not a JSON object", output)
	}

	success := result.Get("success")
	if success.Type != gjson.True && success.Type != gjson.False {
		return nil, malformed(`missing boolean "success" field`, output)
	}

	if !success.Bool() {
		reason := strings.TrimSpace(result.Get("error").String())
		if reason == "" {
			reason = "unknown error"
		}
		return nil, &entity.ReportError{Kind: entity.ReportGenerator, Reason: reason}
	}

	message := result.Get("message")
	if message.Type != gjson.String || strings.TrimSpace(message.Str) == "" {
		return nil, malformed(`missing "message" field`, output)
	}

	format, ok := parseFormat(result.Get("format").String())
	if !ok {
		return nil, malformed("unknown format "+result.Get("format").String(), output)
	}

	return &entity.ReportBody{Text: message.Str, Format: format}, nil
}

func parseFormat(value string) (entity.Format, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "html", string(entity.FormatRichText):
		return entity.FormatRichText, true
	case string(entity.FormatPlain), "text":
		return entity.FormatPlain, true
	default:
		return "", false
	}
}

func lastLine(output []byte) string {
	lines := bytes.Split(bytes.TrimSpace(output), []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(string(lines[i])); line != "" {
			return line
		}
	}
	return ""
}

func malformed(reason string, output []byte) error {
	return &entity.ReportError{
		Kind:   entity.ReportMalformedOutput,
		Reason: reason,
		Output: truncate(string(output), maxStderr),
	}
}
