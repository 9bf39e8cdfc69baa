package editor

import (
	"context"
	"encoding/json"
	"testing"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/constants"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveSetsTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client)

	sess := newTestSession()
	data, err := json.Marshal(sess)
	require.NoError(t, err)

	mock.ExpectSet(constants.BuildEditorSessionKey(sess.ID), data, constants.TTL_EDITOR_SESSION).SetVal("OK")

	require.NoError(t, store.Save(context.Background(), sess))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreLoadRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client)

	sess := newTestSession()
	sess.Tool = ToolTableRound
	sess.Rotation = 90
	sess.Layout.Items = layout.RoundTableSet(400, 300, "M1", 4)
	data, err := json.Marshal(sess)
	require.NoError(t, err)

	mock.ExpectGet(constants.BuildEditorSessionKey(sess.ID)).SetVal(string(data))

	loaded, err := store.Load(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, ToolTableRound, loaded.Tool)
	assert.Equal(t, 90.0, loaded.Rotation)
	assert.Len(t, loaded.Layout.Items, 5)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreLoadMissingSession(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client)

	mock.ExpectGet(constants.BuildEditorSessionKey("nope")).RedisNil()

	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client)

	mock.ExpectDel(constants.BuildEditorSessionKey("s1")).SetVal(1)

	require.NoError(t, store.Delete(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
