package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/model"
)

func TestSummaryPDF(t *testing.T) {
	orders := []model.Order{
		order("ORD-001", "Cold Chain Sensor", "2026-10-10", "298.00", model.OrderCompleted),
		order("ORD-002", "Fleet GPS Tracker", "2026-10-12", "219.00", model.OrderProcessing),
	}
	s := BuildSummary([]model.Product{{ID: "1", Stock: 3}}, orders)

	data, err := SummaryPDF(s, "Reports", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	empty, err := SummaryPDF(BuildSummary(nil, nil), "Reports", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}
