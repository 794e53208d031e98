package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/tally"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/user"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/voter"
	"github.com/heartmarshall/campus-ballot/internal/app"
	"github.com/heartmarshall/campus-ballot/internal/catalog"
	"github.com/heartmarshall/campus-ballot/internal/config"
	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/internal/results"
)

const commandTimeout = 2 * time.Minute

// env is what every database command needs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	c      *app.Components
}

func (e *env) Close() { e.pool.Close() }

func open(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, codeError(2, "%s", err)
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, codeError(3, "%s", err)
	}

	c, err := app.Build(cfg, pool, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, pool: pool, c: c}, nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return codeError(2, "%s", err)
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			return app.Migrate(ctx, cfg.Database.DSN, app.NewLogger(cfg.Log))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return codeError(2, "%s", err)
			}
			m, err := postgres.NewMigrator(cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer m.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			statuses, err := m.Status(ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED\tFILE")
			for _, s := range statuses {
				applied := "-"
				if !s.AppliedAt.IsZero() {
					applied = humanize.Time(s.AppliedAt)
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
			}
			return tw.Flush()
		},
	})

	return cmd
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the positions and candidates on the ballot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return codeError(2, "%s", err)
			}
			cat, err := app.LoadCatalog(cfg.Election.CatalogPath)
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), cat.AllPositions())
		},
	}
}

func printCatalog(w io.Writer, positions []domain.Position) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range positions {
		fmt.Fprintf(tw, "%s\t%s\n", p.ID, p.Title)
		for _, c := range p.Candidates {
			fmt.Fprintf(tw, "  %s\t%s\n", c.ID, c.Name)
		}
	}
	return tw.Flush()
}

func resultsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Print the current results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := domain.ExportFormat(strings.ToLower(format))
			if !f.IsValid() {
				return codeError(2, "unknown format %q (want text, csv or json)", format)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			summary, err := e.c.Ballot.Results(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch f {
			case domain.ExportFormatCSV:
				return results.WriteCSV(out, summary)
			case domain.ExportFormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			default:
				stats, err := e.c.Ballot.Stats(ctx)
				if err != nil {
					return err
				}
				return results.WriteText(out, summary, stats.Voters, time.Now())
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, csv or json")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print turnout per position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			stats, err := e.c.Ballot.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Voters: %s\nVotes:  %s\n\n", humanize.Comma(stats.Voters), humanize.Comma(stats.TotalVotes))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, p := range stats.Positions {
				fmt.Fprintf(tw, "%s\t%s\n", p.Title, humanize.Comma(p.TotalVotes))
			}
			return tw.Flush()
		},
	}
}

func resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every vote and voter record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return codeError(2, "refusing to reset without --yes")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			res, err := e.c.Ballot.Reset(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d voter records and %d tally rows.\n",
				res.VotersDeleted, res.TallyRowsDeleted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm that all votes should be deleted")
	return cmd
}

// promoteCmd bootstraps an administrator who signed up before their
// address was added to election.admin_emails.
func promoteCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Give an existing user the admin role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" {
				return codeError(2, "--email is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			users := user.New(e.pool)
			u, err := users.GetByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return codeError(1, "no user with email %q", email)
				}
				return err
			}
			if u.IsAdmin() {
				fmt.Fprintf(cmd.OutOrStdout(), "User %q is already an admin.\n", email)
				return nil
			}
			if err := users.UpdateRole(ctx, u.ID, domain.UserRoleAdmin); err != nil {
				return err
			}
			e.logger.InfoContext(ctx, "user promoted to admin", slog.String("user_id", u.ID.String()))
			fmt.Fprintf(cmd.OutOrStdout(), "User %q promoted to admin.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the user to promote")
	return cmd
}

// voterCmd answers "did this student vote?" without exposing their choices,
// which are never stored.
func voterCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "voter",
		Short: "Show whether a registered user has voted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" {
				return codeError(2, "--email is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			u, err := user.New(e.pool).GetByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return codeError(1, "no user with email %q", email)
				}
				return err
			}

			out := cmd.OutOrStdout()
			rec, err := voter.New(e.pool).Get(ctx, u.ID)
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Fprintf(out, "%s has not voted (email verified: %t).\n", email, u.EmailVerified)
				return nil
			}
			if err != nil {
				return err
			}

			positions := make([]string, len(rec.PositionsVoted))
			for i, p := range rec.PositionsVoted {
				positions[i] = string(p)
			}
			fmt.Fprintf(out, "%s voted %s (%s).\nPositions: %s\n",
				email, humanize.Time(rec.VotedAt), rec.VotedAt.Format(time.RFC3339), strings.Join(positions, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the user to look up")
	return cmd
}

// talliesCmd dumps the stored counters as they are, including rows the
// current catalog no longer lists.
func talliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tallies",
		Short: "Print raw stored counts and flag rows unknown to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			e, err := open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			counts, err := tally.New(e.pool).All(ctx)
			if err != nil {
				return err
			}
			return printTallies(cmd.OutOrStdout(), counts, e.c.Catalog)
		},
	}
}

func printTallies(w io.Writer, counts domain.TallyCounts, cat *catalog.Catalog) error {
	pids := make([]string, 0, len(counts))
	for pid := range counts {
		pids = append(pids, string(pid))
	}
	sort.Strings(pids)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POSITION\tCANDIDATE\tVOTES\t")
	for _, pid := range pids {
		byCandidate := counts[domain.PositionID(pid)]
		cids := make([]string, 0, len(byCandidate))
		for cid := range byCandidate {
			cids = append(cids, string(cid))
		}
		sort.Strings(cids)

		for _, cid := range cids {
			note := ""
			if _, ok := cat.Candidate(domain.PositionID(pid), domain.CandidateID(cid)); !ok {
				note = "not in catalog"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", pid, cid, humanize.Comma(byCandidate[domain.CandidateID(cid)]), note)
		}
	}
	return tw.Flush()
}
