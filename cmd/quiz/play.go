package main

import (
	"animalquiz/internal/quiz"
	"animalquiz/internal/repository"
	"animalquiz/internal/tui"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var (
		bankFile string
		seed     uint64
		siteURL  string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Take the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, _, err := repository.ResolveBank(cmd.Context(), bankFile, nil, "")
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, seed))
			}

			p := tea.NewProgram(tui.New(quiz.New(bank, rng), siteURL), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&bankFile, "bank", "", "YAML question bank (default: built-in animals)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for option shuffles")
	cmd.Flags().StringVar(&siteURL, "site-url", quiz.DefaultSiteURL, "URL placed in the share message")
	return cmd
}
