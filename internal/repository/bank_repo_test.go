package repository

import (
	"animalquiz/internal/model"
	"animalquiz/internal/quiz"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func bankDoc(t *testing.T, bank model.Bank) bson.D {
	t.Helper()
	raw, err := bson.Marshal(bankDocument{Bank: bank, UpdatedAt: time.Now()})
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestMongoBankRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get", func(mt *mtest.T) {
		want := quiz.DefaultBank()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "quiz.banks", mtest.FirstBatch, bankDoc(t, *want)))

		got, err := NewMongoBankRepo(mt.DB).Get(context.Background(), want.Name)
		require.NoError(mt, err)
		assert.Equal(mt, want, got)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quiz.banks", mtest.FirstBatch))

		_, err := NewMongoBankRepo(mt.DB).Get(context.Background(), "nope")
		assert.ErrorIs(mt, err, ErrBankNotFound)
	})

	mt.Run("get invalid", func(mt *mtest.T) {
		broken := *quiz.DefaultBank()
		broken.Questions = nil
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "quiz.banks", mtest.FirstBatch, bankDoc(t, broken)))

		_, err := NewMongoBankRepo(mt.DB).Get(context.Background(), broken.Name)
		assert.ErrorIs(mt, err, model.ErrInvalidBank)
	})

	mt.Run("save upserts by name", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, NewMongoBankRepo(mt.DB).Save(context.Background(), quiz.DefaultBank()))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)

		updates, err := evt.Command.Lookup("updates").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, updates, 1)
		update := updates[0].Document()
		assert.True(mt, update.Lookup("upsert").Boolean())
		assert.Equal(mt, quiz.DefaultBankName, update.Lookup("q", "name").StringValue())
	})

	mt.Run("save rejects invalid bank", func(mt *mtest.T) {
		err := NewMongoBankRepo(mt.DB).Save(context.Background(), &model.Bank{Name: "empty"})
		assert.ErrorIs(mt, err, model.ErrInvalidBank)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
