package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/model"
)

func seed() Snapshot {
	return Snapshot{
		Products: []model.Product{{ID: "P1", Name: "Sensor", Stock: 5, Price: decimal.NewFromInt(10)}},
	}
}

func TestApplyReplacesSnapshot(t *testing.T) {
	s := New(seed())

	next, err := s.Apply(func(snap Snapshot) (Snapshot, error) {
		snap.Products[0].Stock = 3
		return snap, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, next.Products[0].Stock)
	assert.Equal(t, 3, s.View().Products[0].Stock)
	assert.Equal(t, uint64(1), s.Revision())
}

func TestApplyErrorKeepsPriorState(t *testing.T) {
	s := New(seed())
	boom := errors.New("boom")

	_, err := s.Apply(func(snap Snapshot) (Snapshot, error) {
		snap.Products[0].Stock = 0
		return snap, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 5, s.View().Products[0].Stock)
	assert.Equal(t, uint64(0), s.Revision())
}

func TestViewIsACopy(t *testing.T) {
	s := New(seed())

	v := s.View()
	v.Products[0].Stock = 99
	assert.Equal(t, 5, s.View().Products[0].Stock)
}

func TestReset(t *testing.T) {
	s := New(seed())
	_, err := s.Apply(func(snap Snapshot) (Snapshot, error) {
		snap.Products = nil
		return snap, nil
	})
	require.NoError(t, err)
	require.Empty(t, s.View().Products)

	s.Reset()
	assert.Len(t, s.View().Products, 1)
}
