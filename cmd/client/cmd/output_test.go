package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"datareceiver/internal/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []record.Record{
	{ID: "unique123", Origin: "web-app", MimeData: "This is some text data.", Datetime: "2025-04-09T10:11:12.345Z"},
	{ID: "long", Origin: "batch", MimeData: strings.Repeat("ж", 60) + "\nsecond line", Datetime: "2025-04-10T00:00:00.000Z"},
}

func TestPrintRecordsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecordsTable(&buf, sample))

	out := buf.String()
	assert.Contains(t, out, "unique123")
	assert.Contains(t, out, "This is some text data.")
	assert.Contains(t, out, "2025-04-10T00:00:00.000Z")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "second line")
	assert.Contains(t, out, "Всего записей: 2")
}

func TestPrintRecordsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecordsTable(&buf, nil))
	assert.Equal(t, "No data found.\n", buf.String())
}

func TestPrintRecordsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecordsJSON(&buf, sample))

	var got []record.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "абвгде...", truncate("абвгдеёжзийк", 9))
}

func TestReadPayload(t *testing.T) {
	t.Cleanup(func() { sendData, sendFile = "", "" })

	sendData, sendFile = "inline", ""
	got, err := readPayload(nil)
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	sendData, sendFile = "", "-"
	got, err = readPayload(strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))
	sendFile = path
	got, err = readPayload(nil)
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	sendData = "both"
	_, err = readPayload(nil)
	assert.Error(t, err)
}
