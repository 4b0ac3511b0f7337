package extract

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotara-tools/invoice2excel/constants"
)

func TestVisionStrategyRendersPDFPage(t *testing.T) {
	client := &fakeClient{raw: json.RawMessage(`{"grand_total": 75}`)}
	rendered := []byte{0x89, 'P', 'N', 'G'}
	var renderedPath string
	strat := &VisionStrategy{
		client: client,
		dpi:    300,
		render: func(path string, dpi int) ([]byte, error) {
			renderedPath = path
			assert.Equal(t, 300, dpi)
			return rendered, nil
		},
	}

	d, err := strat.Extract(context.Background(), testDoc)
	require.NoError(t, err)

	assert.Equal(t, testDoc.Path, renderedPath)
	assert.Equal(t, rendered, client.req.ImagePNG)
	require.NotNil(t, d.GrandTotal)
	assert.Equal(t, 75.0, *d.GrandTotal)
}

func TestVisionStrategyReadsImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.png")
	content := []byte("fake png bytes")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	client := &fakeClient{raw: json.RawMessage(`{"buyer_name": "محمد"}`)}
	strat := &VisionStrategy{client: client, dpi: 300}

	_, err := strat.Extract(context.Background(), Document{
		Path: path, Name: "invoice.png", Format: constants.IMAGE,
	})
	require.NoError(t, err)
	assert.Equal(t, content, client.req.ImagePNG)
}

func TestLineIndexStrategyResolvesDescriptions(t *testing.T) {
	lines := []string{
		"فاتورة ضريبية",
		"  قطعة منتج أ  ",
		"المجموع 30",
	}
	client := &fakeClient{raw: json.RawMessage(`{
		"items": [
			{"description_line": 1, "quantity": 3},
			{"description_line": 99, "quantity": 1},
			{"description_line": "not a number"}
		],
		"grand_total": 30
	}`)}
	strat := &LineIndexStrategy{
		client: client,
		lines:  func(string) ([]string, error) { return lines, nil },
	}

	d, err := strat.Extract(context.Background(), testDoc)
	require.NoError(t, err)

	require.Len(t, d.Items, 3)
	require.NotNil(t, d.Items[0].Description)
	assert.Equal(t, "قطعة منتج أ", *d.Items[0].Description)
	// Out-of-range and unparseable indices yield no description.
	assert.Nil(t, d.Items[1].Description)
	assert.Nil(t, d.Items[2].Description)
}
