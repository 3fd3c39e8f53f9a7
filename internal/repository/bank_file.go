package repository

import (
	"animalquiz/internal/model"
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileBankRepo keeps one bank in a YAML file
type FileBankRepo struct {
	path string
}

// NewFileBankRepo creates a repository reading and writing path
func NewFileBankRepo(path string) *FileBankRepo {
	return &FileBankRepo{path: path}
}

// Get loads the file. A non-empty name must match the bank's name.
func (r *FileBankRepo) Get(ctx context.Context, name string) (*model.Bank, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBankNotFound, r.path)
	}
	if err != nil {
		return nil, err
	}

	bank, err := DecodeBank(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	if name != "" && bank.Name != name {
		return nil, fmt.Errorf("%w: %s holds %q, not %q", ErrBankNotFound, r.path, bank.Name, name)
	}
	return bank, nil
}

func (r *FileBankRepo) Save(ctx context.Context, bank *model.Bank) error {
	data, err := EncodeBank(bank)
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

// DecodeBank parses and validates a YAML bank
func DecodeBank(data []byte) (*model.Bank, error) {
	var bank model.Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return &bank, nil
}

// EncodeBank validates and renders a bank as YAML
func EncodeBank(bank *model.Bank) ([]byte, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	return yaml.Marshal(bank)
}
