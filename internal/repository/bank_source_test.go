package repository

import (
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBankRepo struct {
	bank *model.Bank
	err  error
}

func (s *stubBankRepo) Get(ctx context.Context, name string) (*model.Bank, error) {
	return s.bank, s.err
}

func (s *stubBankRepo) Save(ctx context.Context, bank *model.Bank) error {
	return nil
}

func TestResolveBankBuiltin(t *testing.T) {
	bank, source, err := ResolveBank(context.Background(), "", nil, "default")
	require.NoError(t, err)
	assert.Equal(t, "builtin", source)
	assert.Equal(t, quiz.DefaultBank(), bank)
}

func TestResolveBankFileWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	custom := quiz.DefaultBank()
	custom.Name = "custom"
	require.NoError(t, NewFileBankRepo(path).Save(context.Background(), custom))

	store := &stubBankRepo{bank: quiz.DefaultBank()}
	bank, source, err := ResolveBank(context.Background(), path, store, "default")
	require.NoError(t, err)
	assert.Equal(t, "file", source)
	assert.Equal(t, "custom", bank.Name)
}

func TestResolveBankStore(t *testing.T) {
	stored := quiz.DefaultBank()
	stored.Title = "Stored"

	bank, source, err := ResolveBank(context.Background(), "", &stubBankRepo{bank: stored}, "default")
	require.NoError(t, err)
	assert.Equal(t, "mongo", source)
	assert.Equal(t, "Stored", bank.Title)
}

func TestResolveBankStoreMissingFallsBack(t *testing.T) {
	store := &stubBankRepo{err: fmt.Errorf("%w: default", ErrBankNotFound)}

	_, source, err := ResolveBank(context.Background(), "", store, "default")
	require.NoError(t, err)
	assert.Equal(t, "builtin", source)
}

func TestResolveBankStoreFailure(t *testing.T) {
	boom := errors.New("connection refused")

	_, _, err := ResolveBank(context.Background(), "", &stubBankRepo{err: boom}, "default")
	assert.ErrorIs(t, err, boom)
}
