package listing

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBooks = []catalog.Book{
	{ID: "ab-1", Title: "Dune", Author: "Frank Herbert"},
	{ID: "cd-22", Title: "The Hitchhiker's Guide to the Galaxy, Deluxe Edition", Author: "Douglas Adams"},
}

func statusOf(id catalog.BookID) string {
	if id == "ab-1" {
		return "CHECKED OUT"
	}
	return "IN STOCK"
}

func TestFormatTable(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		n := FormatTable(&buf, nil, statusOf)
		assert.Equal(t, 0, n)
		assert.Contains(t, buf.String(), "No books found")
	})

	t.Run("rows, truncation and count", func(t *testing.T) {
		var buf bytes.Buffer
		n := FormatTable(&buf, testBooks, statusOf)
		assert.Equal(t, 2, n)

		out := buf.String()
		assert.Contains(t, out, "ID")
		assert.Contains(t, out, "CHECKED OUT")
		assert.Contains(t, out, "Frank Herbert")
		assert.Contains(t, out, "The Hitchhiker's Guide to the...")
		assert.Contains(t, out, "2 books")
	})

	t.Run("singular count", func(t *testing.T) {
		var buf bytes.Buffer
		FormatTable(&buf, testBooks[:1], statusOf)
		assert.Contains(t, buf.String(), "\n1 book\n")
	})
}

func TestFormatJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSONL(&buf, testBooks, statusOf))

	scanner := bufio.NewScanner(&buf)
	var records []Record
	for scanner.Scan() {
		var r Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		records = append(records, r)
	}
	require.Len(t, records, 2)
	assert.Equal(t, Record{ID: "ab-1", Title: "Dune", Author: "Frank Herbert", Status: "CHECKED OUT"}, records[0])
	assert.Equal(t, "IN STOCK", records[1].Status)
}

func TestFormatSingleJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatSingleJSON(&buf, testBooks[0], statusOf))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))
	assert.Contains(t, buf.String(), `"status": "CHECKED OUT"`)
}

func TestFormatDetail(t *testing.T) {
	var buf bytes.Buffer
	FormatDetail(&buf, testBooks[0], "IN STOCK")
	assert.Equal(t, "   ID: ab-1\n   Title: Dune\n   Author: Frank Herbert\n   State: IN STOCK\n", buf.String())
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testBooks, statusOf, OutputFormatJSONL))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	assert.Error(t, Write(&buf, testBooks, statusOf, "xml"))

	f, err := ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, OutputFormatDefault, f)
	_, err = ParseOutputFormat("xml")
	assert.Error(t, err)
}
