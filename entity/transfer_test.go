package entity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coalaip/go-coalaip/dataformat"
	"github.com/coalaip/go-coalaip/entity"
	"github.com/coalaip/go-coalaip/ledger"
	"github.com/coalaip/go-coalaip/ledger/ledgertest"
	"github.com/coalaip/go-coalaip/vocabulary"
)

func createdRight(t *testing.T, backend *ledgertest.Ledger) *entity.Right {
	t.Helper()
	right, err := entity.RightFromData(backend, map[string]any{"rightsOf": "m1"}, "")
	require.NoError(t, err)
	_, err = right.Create(context.Background(), "alice", "")
	require.NoError(t, err)
	return right
}

func TestTransfer(t *testing.T) {
	backend := ledgertest.New()
	backend.SaveIDs = []string{"r1"}
	backend.TransferIDs = []string{"t1"}
	right := createdRight(t, backend)

	assignment, err := right.Transfer(context.Background(), nil, "alice", "bob", "")
	require.NoError(t, err)

	assert.Equal(t, "t1", assignment.PersistID())
	assert.Equal(t, vocabulary.TypeRightsAssignment, assignment.Type())

	// An omitted assignment payload is the empty mapping.
	data, err := assignment.Data(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)

	require.Len(t, backend.TransferCalls, 1)
	call := backend.TransferCalls[0]
	assert.Equal(t, "r1", call.PersistID)
	assert.Equal(t, "alice", call.From)
	assert.Equal(t, "bob", call.To)
	assert.Equal(t, map[string]any{
		"@context": []any{vocabulary.ContextCoalaIP},
		"@type":    vocabulary.TypeRightsAssignment,
		"@id":      "",
	}, call.Payload)
}

func TestTransferWithAssignmentData(t *testing.T) {
	backend := ledgertest.New()
	right := createdRight(t, backend)

	assignment, err := right.Transfer(context.Background(), map[string]any{
		"transferContract": "https://example.com/contract.pdf",
	}, "alice", "bob", dataformat.JSON)
	require.NoError(t, err)

	data, err := assignment.Data(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/contract.pdf", data["transferContract"])

	require.Len(t, backend.TransferCalls, 1)
	assert.Equal(t, map[string]any{
		"transferContract": "https://example.com/contract.pdf",
		"type":             vocabulary.TypeRightsAssignment,
	}, backend.TransferCalls[0].Payload)
}

func TestTransferUnpersisted(t *testing.T) {
	right, err := entity.RightFromData(ledgertest.New(), map[string]any{"rightsOf": "m1"}, "")
	require.NoError(t, err)

	_, err = right.Transfer(context.Background(), nil, "alice", "bob", "")
	assert.ErrorIs(t, err, entity.ErrNotPersisted)
}

func TestTransferWrapsBackendError(t *testing.T) {
	backend := ledgertest.New()
	right := createdRight(t, backend)

	backendErr := errors.New("transfer rejected")
	backend.TransferErr = backendErr

	_, err := right.Transfer(context.Background(), nil, "alice", "bob", "")
	var transferErr *ledger.TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.ErrorIs(t, err, backendErr)
}

func TestCopyrightTransfers(t *testing.T) {
	backend := ledgertest.New()
	backend.SaveIDs = []string{"c1"}
	backend.TransferIDs = []string{"t1"}

	c, err := entity.CopyrightFromData(backend, map[string]any{"rightsOf": "m1"}, "")
	require.NoError(t, err)
	_, err = c.Create(context.Background(), "alice", "")
	require.NoError(t, err)

	var transferable entity.Transferable = c
	assignment, err := transferable.Transfer(context.Background(), nil, "alice", "bob", "")
	require.NoError(t, err)
	assert.Equal(t, "t1", assignment.PersistID())
}

func TestCopyrightIgnoresSuppliedType(t *testing.T) {
	c, err := entity.CopyrightFromData(ledgertest.New(), map[string]any{
		"rightsOf": "m1",
		"@type":    "SomethingElse",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, vocabulary.TypeCopyright, c.Type())
}
