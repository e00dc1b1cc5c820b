package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type owner struct {
	Name string `json:"name"`
}

type asset struct {
	ID    int      `json:"id"`
	Label string   `json:"label"`
	Owner owner    `json:"owner"`
	Tags  []string `json:"tags"`
}

func TestWriteCSV(t *testing.T) {
	records := []asset{
		{ID: 1, Label: "plain", Owner: owner{Name: "Ava"}, Tags: []string{"a", "b"}},
		{ID: 2, Label: `has "quotes", and comma`, Owner: owner{Name: "Noah"}},
	}
	var buf bytes.Buffer
	err := WriteCSV(&buf, records, []Column{
		{Header: "ID", Path: "id"},
		{Header: "Label", Path: "label"},
		{Header: "Owner", Path: "owner.name"},
		{Header: "Tags", Path: "tags"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Label,Owner,Tags", lines[0])
	assert.Equal(t, `1,plain,Ava,"a, b"`, lines[1])
	// embedded quotes are doubled per RFC 4180
	assert.Equal(t, `2,"has ""quotes"", and comma",Noah,`, lines[2])
}

func TestWriteCSVMissingPath(t *testing.T) {
	records := []asset{{ID: 1}}
	var buf bytes.Buffer
	err := WriteCSV(&buf, records, Columns("id", "owner.missing", "nope.nope"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1,,", lines[1])
}

func TestColumnsHelper(t *testing.T) {
	cols := Columns("a", "b.c")
	require.Len(t, cols, 2)
	assert.Equal(t, "b.c", cols[1].Header)
	assert.Equal(t, "b.c", cols[1].Path)
}
