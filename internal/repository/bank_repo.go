package repository

import (
	"animalquiz/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBankNotFound is returned when no bank is stored under a name
var ErrBankNotFound = errors.New("question bank not found")

// BankRepo loads and stores question banks
type BankRepo interface {
	Get(ctx context.Context, name string) (*model.Bank, error)
	Save(ctx context.Context, bank *model.Bank) error
}

// bankDocument is the stored form of a bank
type bankDocument struct {
	model.Bank `bson:",inline"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

type mongoBankRepo struct {
	collection *mongo.Collection
}

// NewMongoBankRepo creates a bank repository backed by the "banks" collection
func NewMongoBankRepo(db *mongo.Database) BankRepo {
	return &mongoBankRepo{
		collection: db.Collection("banks"),
	}
}

func (r *mongoBankRepo) Get(ctx context.Context, name string) (*model.Bank, error) {
	var doc bankDocument
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: %s", ErrBankNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	bank := doc.Bank
	if err := bank.Validate(); err != nil {
		return nil, fmt.Errorf("bank %s: %w", name, err)
	}
	return &bank, nil
}

func (r *mongoBankRepo) Save(ctx context.Context, bank *model.Bank) error {
	if err := bank.Validate(); err != nil {
		return err
	}

	doc := bankDocument{Bank: *bank, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"name": bank.Name}, doc, opts)
	return err
}
