package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/smm/internal/formatter"
	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/shared"
	"github.com/urfave/cli/v3"
)

// HistoryList prints journaled submissions matching the filter flags.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	criteria, err := historyCriteria(cmd)
	if err != nil {
		return err
	}

	repo, err := r.submissions()
	if err != nil {
		return err
	}

	subs, err := repo.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	if cmd.Bool("json") {
		views := make([]models.SubmissionView, 0, len(subs))
		for _, s := range subs {
			views = append(views, s.View())
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	if len(subs) == 0 {
		return r.writePlain("No submissions recorded.\n")
	}

	r.writePlainHeader(fmt.Sprintf("Submissions (%d)", len(subs)))
	for _, s := range subs {
		line := fmt.Sprintf("#%-4d %-9s %-9s %-4s %s", s.Sequence(), s.Status(), s.Platform(), s.Type(), s.URL())
		if s.Error() != "" {
			line += " (" + s.Error() + ")"
		}
		r.writePlain("%s\n", line)
	}
	return nil
}

// HistoryShow prints a single submission by id.
func (r *Runner) HistoryShow(ctx context.Context, cmd *cli.Command) error {
	id := strings.TrimSpace(cmd.StringArg("id"))
	if id == "" {
		return fmt.Errorf("%w: submission id", shared.ErrMissingArgument)
	}

	repo, err := r.submissions()
	if err != nil {
		return err
	}

	s, err := repo.Get(id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(s.View(), true)
	}

	r.writePlainHeader(fmt.Sprintf("Submission #%d", s.Sequence()))
	r.writePlain("ID:       %s\n", s.ID())
	r.writePlain("Platform: %s\n", s.Platform().Label())
	r.writePlain("Type:     %s\n", s.Type().Label())
	r.writePlain("URL:      %s\n", s.URL())
	r.writePlain("Status:   %s\n", s.Status())
	if s.Error() != "" {
		r.writePlain("Error:    %s\n", s.Error())
	}
	return r.writePlain("Created:  %s\n", s.CreatedAt().Local().Format("2006-01-02 15:04:05"))
}

// HistoryExport writes every journaled submission to a file in the chosen format.
func (r *Runner) HistoryExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	repo, err := r.submissions()
	if err != nil {
		return err
	}

	subs, err := repo.List(nil)
	if err != nil {
		return fmt.Errorf("failed to list submissions: %w", err)
	}

	path, err := formatter.WriteExport(format, subs, cmd.String("output"))
	if err != nil {
		return err
	}

	r.logger.Info("exported history", "format", format, "count", len(subs), "path", path)
	return r.writePlain("✓ Exported %d submissions to %s\n", len(subs), path)
}

// HistoryPurge removes every journaled submission. Requires --yes.
func (r *Runner) HistoryPurge(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("yes") {
		return fmt.Errorf("%w: pass --yes to delete all submissions", shared.ErrMissingArgument)
	}

	repo, err := r.submissions()
	if err != nil {
		return err
	}

	n, err := repo.Purge()
	if err != nil {
		return err
	}

	r.logger.Info("purged history", "count", n)
	return r.writePlain("✓ Deleted %d submissions\n", n)
}

func historyCriteria(cmd *cli.Command) (map[string]any, error) {
	criteria := map[string]any{}

	if v := cmd.String("platform"); v != "" {
		p, err := models.ParsePlatform(v)
		if err != nil {
			return nil, err
		}
		criteria["platform"] = p
	}
	if v := cmd.String("type"); v != "" {
		t, err := models.ParseEntityType(v)
		if err != nil {
			return nil, err
		}
		criteria["type"] = t
	}
	if v := cmd.String("status"); v != "" {
		s, err := models.ParseSubmissionStatus(v)
		if err != nil {
			return nil, err
		}
		criteria["status"] = s
	}
	if limit := cmd.Int("limit"); limit > 0 {
		criteria["limit"] = limit
	}

	return criteria, nil
}
