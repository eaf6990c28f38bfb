package main

import (
	"context"

	"github.com/desertthunder/smm/internal/dashboard"
	"github.com/desertthunder/smm/internal/models"
	"github.com/urfave/cli/v3"
)

type submitResult struct {
	Platform string `json:"platform,omitempty"`
	Type     string `json:"type,omitempty"`
	URL      string `json:"url,omitempty"`
	Result   string `json:"result"`
	Message  string `json:"message"`
}

// Submit drives a fresh dashboard through the same transitions as the interactive front ends.
//
// Missing flags leave the matching selection empty so the dashboard reports what is missing.
func (r *Runner) Submit(ctx context.Context, cmd *cli.Command) error {
	dash := r.newDashboard()

	if v := cmd.String("platform"); v != "" {
		p, err := models.ParsePlatform(v)
		if err != nil {
			return err
		}
		dash.SelectPlatform(p)
	}
	if v := cmd.String("type"); v != "" {
		t, err := models.ParseEntityType(v)
		if err != nil {
			return err
		}
		dash.SelectEntityType(t)
	}
	dash.UpdateURLText(cmd.String("url"))

	draft := dash.Snapshot().Draft

	reporter, err := r.Reporter()
	if err != nil {
		return err
	}

	notice, err := dash.Submit(ctx, reporter)
	r.logger.Debug("submit finished", "platform", draft.Platform, "type", draft.EntityType, "result", notice.Kind)

	if cmd.Bool("json") {
		if werr := r.writeJSON(submitResult{
			Platform: draft.Platform.String(),
			Type:     draft.EntityType.String(),
			URL:      draft.URLText,
			Result:   notice.Kind.String(),
			Message:  notice.Text,
		}, true); werr != nil {
			return werr
		}
	} else if werr := r.writePlain("%s %s\n", noticeMark(notice.Kind), notice.Text); werr != nil {
		return werr
	}

	return err
}

func noticeMark(k dashboard.NoticeKind) string {
	switch k {
	case dashboard.NoticeSuccess:
		return "✓"
	case dashboard.NoticeValidation:
		return "!"
	case dashboard.NoticeError:
		return "✗"
	}
	return "-"
}
