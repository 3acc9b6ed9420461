package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hoopvision/internal/imgio"
	"hoopvision/internal/store"
)

// defaultPhotoTemplate is the public headshot URL scheme; {player_id} is
// replaced per player when the stored photo URL is empty.
const defaultPhotoTemplate = "https://ak-static.cms.nba.com/wp-content/uploads/headshots/nba/latest/260x190/{player_id}.png"

var (
	backfillDB       string
	backfillLimit    int
	backfillTemplate string
)

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Fetch, analyze and persist appearance for every unanalyzed player",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.New(ctx, connString())
		if err != nil {
			return fmt.Errorf("connect store: %w", err)
		}
		defer st.Close(context.Background())

		players, err := st.ListUnanalyzed(ctx, backfillLimit)
		if err != nil {
			return err
		}
		if len(players) == 0 {
			fmt.Fprintln(os.Stderr, "nothing to backfill")
			return nil
		}

		bar := progressbar.NewOptions(len(players),
			progressbar.OptionSetDescription("analyzing headshots"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)

		fetcher := imgio.NewFetcher(logger)
		analyzed, defaulted := 0, 0
		for _, p := range players {
			if ctx.Err() != nil {
				break
			}

			url := p.PhotoURL
			if url == "" {
				url = strings.ReplaceAll(backfillTemplate, "{player_id}", p.ID)
			}

			// A failed fetch analyzes as no image: the player gets the
			// default appearance instead of blocking the run.
			data, err := fetcher.Fetch(ctx, url)
			if err != nil {
				logger.Warn("headshot fetch failed", zap.String("player_id", p.ID), zap.Error(err))
				defaulted++
			}

			if err := st.UpsertAppearance(ctx, p.ID, analyzer.Analyze(data)); err != nil {
				return fmt.Errorf("persist appearance for %s: %w", p.ID, err)
			}
			analyzed++
			_ = bar.Add(1)
		}
		_ = bar.Finish()

		fmt.Fprintf(os.Stderr, "\nbackfilled %d of %d players (%d fell back to the default appearance)\n",
			analyzed, len(players), defaulted)
		return ctx.Err()
	},
}

// connString resolves the Postgres connection string: the --db flag, then
// DATABASE_URL, then assembly from POSTGRES_* variables, then a local
// default.
func connString() string {
	if backfillDB != "" {
		return backfillDB
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		user := os.Getenv("POSTGRES_USER")
		pass := os.Getenv("POSTGRES_PASSWORD")
		name := os.Getenv("POSTGRES_DB")
		port := os.Getenv("POSTGRES_PORT")
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, pass, host, port, name)
	}
	return "postgres://localhost:5432/hoopvision"
}

func init() {
	backfillCmd.Flags().StringVar(&backfillDB, "db", "", "PostgreSQL connection string (default: $DATABASE_URL or POSTGRES_* variables)")
	backfillCmd.Flags().IntVar(&backfillLimit, "limit", 0, "max players to backfill (0 = all)")
	backfillCmd.Flags().StringVar(&backfillTemplate, "photo-template", defaultPhotoTemplate, "headshot URL template for players without a stored photo URL")
	rootCmd.AddCommand(backfillCmd)
}
