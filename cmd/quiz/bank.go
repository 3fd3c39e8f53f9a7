package main

import (
	"animalquiz/internal/quiz"
	"animalquiz/internal/repository"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Export or check question bank files",
	}
	cmd.AddCommand(newBankExportCmd(), newBankValidateCmd())
	return cmd
}

func newBankExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the built-in bank as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				return repository.NewFileBankRepo(out).Save(cmd.Context(), quiz.DefaultBank())
			}
			data, err := repository.EncodeBank(quiz.DefaultBank())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write instead of stdout")
	return cmd
}

func newBankValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a YAML bank can be played",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			bank, err := repository.DecodeBank(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d questions, %d categories)\n",
				bank.Name, len(bank.Questions), len(bank.Categories))
			return nil
		},
	}
}
