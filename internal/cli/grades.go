package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"coursework/internal/domain"
	"coursework/internal/service"
	"coursework/internal/watcher"
)

func gradesCmd(a *app) *cobra.Command {
	var (
		input, output string
		watch         bool
	)

	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Grade a student roster and write the report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if input == "" {
				input = a.cfg.DataPath(a.cfg.Data.Roster)
			}
			if output == "" {
				output = a.cfg.DataPath(a.cfg.Data.Report)
			}

			svc := service.NewGradeService(a.log, a.events)
			run := func() {
				ctx, cancel := a.storeContext(cmd)
				defer cancel()

				if _, err := svc.Process(ctx, input, output); err != nil {
					reportGradeError(cmd.OutOrStdout(), err)
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Report generated successfully.")
			}

			run()
			if !watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := watcher.New(input, func() {
				run()
				a.drainEvents()
			}, a.log).Watch(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "roster file (default: data.roster)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "report file (default: data.report)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate the report whenever the roster changes")
	return cmd
}

func reportGradeError(w io.Writer, err error) {
	var (
		scoreErr   domain.InvalidScoreFormatError
		missingErr domain.MissingFieldError
	)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "Error: Input file not found - %v\n", err)
	case errors.As(err, &scoreErr):
		fmt.Fprintf(w, "Error: Invalid score format - %v\n", scoreErr)
	case errors.As(err, &missingErr):
		fmt.Fprintf(w, "Error: Incomplete student record - %v\n", missingErr)
	default:
		fmt.Fprintf(w, "Unexpected error: %v\n", err)
	}
}
