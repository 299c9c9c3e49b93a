package ledger_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coalaip/go-coalaip/ledger"
	"github.com/coalaip/go-coalaip/ledger/ledgertest"
)

func TestInstrumentForwardsCalls(t *testing.T) {
	backend := ledgertest.New()
	backend.SaveIDs = []string{"w1"}
	reg := prometheus.NewRegistry()
	ld := ledger.Instrument(backend, reg)
	ctx := context.Background()

	assert.Equal(t, "memory", ld.Type())

	id, err := ld.Save(ctx, map[string]any{"name": "Song"}, "alice")
	require.NoError(t, err)
	assert.Equal(t, "w1", id)

	payload, err := ld.Load(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, "Song", payload["name"])

	_, err = ld.Load(ctx, "missing")
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	assert.True(t, ld.IsSameUser("alice", "alice"))
}

func TestInstrumentCountsOutcomes(t *testing.T) {
	backend := ledgertest.New()
	reg := prometheus.NewRegistry()
	ld := ledger.Instrument(backend, reg)
	ctx := context.Background()

	_, err := ld.Save(ctx, map[string]any{}, "alice")
	require.NoError(t, err)
	_, err = ld.Load(ctx, "missing")
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "coalaip_ledger_calls_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			var op, outcome string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "op":
					op = label.GetValue()
				case "outcome":
					outcome = label.GetValue()
				}
			}
			counts[op+"/"+outcome] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, counts["save/ok"])
	assert.Equal(t, 1.0, counts["load/error"])

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "coalaip_ledger_calls_total"))
}
