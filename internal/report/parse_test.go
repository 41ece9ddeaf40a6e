package report

import (
	"testing"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		wantBody *entity.ReportBody
		wantKind entity.ReportErrorKind
		wantErr  string
	}{
		{
			name:     "Should default to rich text",
			output:   `{"success": true, "message": "hello"}`,
			wantBody: &entity.ReportBody{Text: "hello", Format: entity.FormatRichText},
		},
		{
			name:     "Should accept plain format",
			output:   `{"success": true, "message": "a < b", "format": "plain"}`,
			wantBody: &entity.ReportBody{Text: "a < b", Format: entity.FormatPlain},
		},
		{
			name:     "Should ignore log lines and trailing blank lines",
			output:   "step 1\nstep 2\n{\"success\": true, \"message\": \"done\"}\n\n  \n",
			wantBody: &entity.ReportBody{Text: "done", Format: entity.FormatRichText},
		},
		{
			name:     "Should use a default reason when the generator gives none",
			output:   `{"success": false}`,
			wantKind: entity.ReportGenerator,
			wantErr:  "unknown error",
		},
		{
			name:     "Should reject empty output",
			output:   "\n\n",
			wantKind: entity.ReportMalformedOutput,
			wantErr:  "failed to parse report output: empty output",
		},
		{
			name:     "Should reject a missing success flag",
			output:   `{"message": "hello"}`,
			wantKind: entity.ReportMalformedOutput,
		},
		{
			name:     "Should reject a non boolean success flag",
			output:   `{"success": "yes", "message": "hello"}`,
			wantKind: entity.ReportMalformedOutput,
		},
		{
			name:     "Should reject a success without message",
			output:   `{"success": true, "message": "   "}`,
			wantKind: entity.ReportMalformedOutput,
		},
		{
			name:     "Should reject a JSON array",
			output:   `[1, 2]`,
			wantKind: entity.ReportMalformedOutput,
		},
		{
			name:     "Should reject an unknown format",
			output:   `{"success": true, "message": "x", "format": "markdown"}`,
			wantKind: entity.ReportMalformedOutput,
		},
		{
			name:     "Should only look at the last line",
			output:   "{\"success\": true, \"message\": \"old\"}\nTraceback",
			wantKind: entity.ReportMalformedOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := Parse([]byte(tt.output))

			if tt.wantBody != nil {
				require.NoError(t, err)
				assert.Equal(t, tt.wantBody, body)
				return
			}

			require.Error(t, err)
			assert.True(t, entity.IsReportKind(err, tt.wantKind), "unexpected error: %v", err)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, err.Error())
			}
		})
	}
}
