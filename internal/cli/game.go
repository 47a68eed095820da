package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start (or resume) today's round",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StartGameResult
			if err := client.Post("/api/v1/game/start", nil, &result); err != nil {
				return err
			}

			if err := persistSession(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <character name>",
		Short: "Guess a character for today's round",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"guess": strings.Join(args, " ")}

			var result GuessResult
			if err := client.Post("/api/v1/game/guess", body, &result); err != nil {
				return err
			}

			if err := persistSession(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// persistSession writes the server-issued session cookie back to disk so
// the next invocation keeps the same round
func persistSession() error {
	session := client.Session()
	if session == "" || session == cfg.Session {
		return nil
	}
	return cfg.SaveSession(session)
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Show how many players solved today's character",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The count rides on the start response
			var result StartGameResult
			if err := client.Post("/api/v1/game/start", nil, &result); err != nil {
				return err
			}

			if err := persistSession(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if result.TodayCorrectCount == nil {
				out.PrintMessage("Solved today by: unknown")
				return nil
			}
			out.PrintMessage(fmt.Sprintf("Solved today by: %d", *result.TodayCorrectCount))
			return nil
		},
	}
}
