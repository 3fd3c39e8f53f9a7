package repository

import (
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"context"
	"errors"
)

// ResolveBank picks the bank the process runs on: the YAML file when given,
// otherwise the named bank in store, otherwise the built-in bank. A nil
// store skips the database. The second return names the source used.
func ResolveBank(ctx context.Context, file string, store BankRepo, name string) (*model.Bank, string, error) {
	if file != "" {
		bank, err := NewFileBankRepo(file).Get(ctx, "")
		if err != nil {
			return nil, "", err
		}
		return bank, "file", nil
	}

	if store != nil {
		bank, err := store.Get(ctx, name)
		if err == nil {
			return bank, "mongo", nil
		}
		if !errors.Is(err, ErrBankNotFound) {
			return nil, "", err
		}
	}

	return quiz.DefaultBank(), "builtin", nil
}
