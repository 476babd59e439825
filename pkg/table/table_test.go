package table

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOwner struct {
	Email string `json:"email"`
}

type testRow struct {
	Name    string     `json:"name"`
	Balance float64    `json:"balance"`
	Phone   *string    `json:"phone"`
	Owner   *testOwner `json:"user"`
}

func testTable() *Table[testRow] {
	return &Table[testRow]{
		Title: "Rows",
		Columns: []Column[testRow]{
			{Title: "Name", Field: "name"},
			{Title: "Email", Field: "user.email"},
			{Title: "Balance", Render: func(row testRow) string {
				return fmt.Sprintf("%.2f", row.Balance)
			}},
		},
		HasActions: true,
	}
}

func TestTableEmptyState(t *testing.T) {
	tbl := testTable()

	rows := tbl.Rows(nil)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"No data"}, rows[0])
}

func TestTableSpanWidth(t *testing.T) {
	tbl := testTable()
	assert.Equal(t, 4, tbl.SpanWidth())

	tbl.HasActions = false
	assert.Equal(t, 3, tbl.SpanWidth())
}

func TestTableFieldAccessors(t *testing.T) {
	tbl := testTable()
	row := testRow{
		Name:    "Auto Farm",
		Balance: 150.5,
		Owner:   &testOwner{Email: "owner@example.com"},
	}

	rows := tbl.Rows([]testRow{row})
	require.Len(t, rows, 1)
	assert.Equal(t, "Auto Farm", rows[0][0])
	assert.Equal(t, "owner@example.com", rows[0][1])
	assert.Equal(t, "150.50", rows[0][2])
}

func TestTableNilPointerRendersEmpty(t *testing.T) {
	tbl := &Table[testRow]{
		Columns: []Column[testRow]{
			{Title: "Phone", Field: "phone"},
			{Title: "Email", Field: "user.email"},
		},
	}

	rows := tbl.Rows([]testRow{{Name: "x"}})
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0][0])
	assert.Equal(t, "", rows[0][1])
}

func TestTableFilter(t *testing.T) {
	tbl := testTable()
	data := []testRow{
		{Name: "Auto Farm", Owner: &testOwner{Email: "a@example.com"}},
		{Name: "Proxy Pack", Owner: &testOwner{Email: "b@example.com"}},
	}

	filtered := tbl.Filter(data, "farm", false)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Auto Farm", filtered[0].Name)

	// 服务端搜索时不做本地过滤
	assert.Len(t, tbl.Filter(data, "farm", true), 2)
	assert.Len(t, tbl.Filter(data, "", false), 2)
}

func TestTableRender(t *testing.T) {
	tbl := testTable()
	var buf bytes.Buffer

	err := tbl.Render(&buf, []testRow{{Name: "Auto Farm", Balance: 9.99}})
	require.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.Contains(output, "Auto Farm"))
	assert.True(t, strings.Contains(output, "Actions"))
}
