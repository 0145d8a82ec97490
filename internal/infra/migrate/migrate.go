package migrate

import (
	"context"
	"io/fs"
	"log/slog"

	"ariga.io/atlas-go-sdk/atlasexec"

	"venue-desk/internal/pkg/config"
	"venue-desk/internal/pkg/errs"
)

// Runner applies the versioned migration directory with the atlas CLI.
type Runner struct {
	migrations fs.FS
	binary     string
	logger     *slog.Logger
}

func NewRunner(migrations fs.FS, binary string, logger *slog.Logger) *Runner {
	if binary == "" {
		binary = "atlas"
	}
	return &Runner{migrations: migrations, binary: binary, logger: logger}
}

type Result struct {
	Current string
	Target  string
	Applied []string
}

func (r *Runner) Apply(ctx context.Context, cfg config.DBConfig) (*Result, error) {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(r.migrations))
	if err != nil {
		return nil, errs.Wrap(err, "failed to prepare migration directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), r.binary)
	if err != nil {
		return nil, errs.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.BuildDSN(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to apply migrations")
	}

	out := &Result{Current: res.Current, Target: res.Target}
	for _, f := range res.Applied {
		out.Applied = append(out.Applied, f.Name)
	}
	r.logger.Info("migrations applied",
		"from", out.Current,
		"to", out.Target,
		"files", len(out.Applied))
	return out, nil
}
