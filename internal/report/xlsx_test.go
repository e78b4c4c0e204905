package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/equitydesk/callinsight/internal/analyst"
	"github.com/equitydesk/callinsight/internal/report"
)

func TestBuildWorkbook(t *testing.T) {
	wb, err := report.BuildWorkbook(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, wb)

	f, err := excelize.OpenReader(bytes.NewReader(wb))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Analysis", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Field", get("A1"))
	assert.Equal(t, "Management Tone", get("A2"))
	assert.Equal(t, "positive", get("B2"))
	assert.Equal(t, "high", get("B3"))
	assert.Equal(t, "strong revenue\nnew contracts", get("B4"))
	assert.Equal(t, "margin pressure", get("B5"))
	assert.Equal(t, "optimistic", get("B6"))
	assert.Equal(t, analyst.Sentinel, get("B7"))
	assert.Equal(t, "capacity expansion", get("B8"))
}
