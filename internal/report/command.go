// Package report runs the external report generator and parses its answer.
package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/diegoclair/report-relay-bot/internal/domain/entity"
	"go.uber.org/zap"
)

const (
	// maxStderr caps how much of the generator's diagnostics ends up in errors and logs.
	maxStderr = 2048
	// waitDelay bounds how long Wait keeps reading pipes after the process was killed.
	// Descendants that inherited stdout or stderr would otherwise hold Wait open.
	waitDelay = 2 * time.Second
)

type Config struct {
	Path string
	Args []string
	Dir  string
	Env  []string // nil inherits the relay's environment
}

// CommandSource generates a report by running one process per cycle.
type CommandSource struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*CommandSource, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("report command is empty")
	}

	return &CommandSource{
		cfg:    cfg,
		logger: logger.Named("report"),
	}, nil
}

// Generate runs the generator. Cancelling ctx kills the process and everything
// it spawned, and Generate returns within waitDelay of the cancellation.
func (s *CommandSource) Generate(ctx context.Context) (*entity.ReportBody, error) {
	cmd := exec.CommandContext(ctx, s.cfg.Path, s.cfg.Args...)
	cmd.Dir = s.cfg.Dir
	cmd.Env = s.cfg.Env
	cmd.WaitDelay = waitDelay
	killProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Info("Generating report...", zap.String("command", s.cfg.Path), zap.Strings("args", s.cfg.Args))

	if err := cmd.Start(); err != nil {
		return nil, &entity.ReportError{Kind: entity.ReportStartupFailure, Err: err}
	}

	err := cmd.Wait()
	if errors.Is(err, exec.ErrWaitDelay) && ctx.Err() == nil {
		// the generator exited cleanly but left a child on its output, the answer is complete
		s.logger.Warn("Report generator left processes holding its output")
		err = nil
	}
	if err != nil {
		reportErr := &entity.ReportError{
			Kind:     entity.ReportProcessFailure,
			ExitCode: -1,
			Stderr:   truncate(strings.TrimSpace(stderr.String()), maxStderr),
			Err:      err,
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			reportErr.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			reportErr.Reason = ctxErr.Error()
		} else if reportErr.ExitCode == -1 {
			reportErr.Reason = err.Error()
		}

		return nil, reportErr
	}

	if stderr.Len() > 0 {
		s.logger.Debug("Report generator wrote diagnostics", zap.String("stderr", truncate(stderr.String(), maxStderr)))
	}

	return Parse(stdout.Bytes())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
