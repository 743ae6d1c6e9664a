package repository

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestResolveWhitelist(t *testing.T) {
    for resource, want := range Tables {
        tbl, err := Resolve(resource)
        require.NoError(t, err)
        assert.Equal(t, want, tbl)
    }

    _, err := Resolve("sessions")
    assert.ErrorIs(t, err, ErrUnknownTable)
    _, err = Resolve("FACILITY") // table names are not resource names
    assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestSplitRowOrdersAndValidates(t *testing.T) {
    cols, args, err := splitRow(Row{"NAME": "x", "ADDRESS": "y", "PHONE_NO": 42})
    require.NoError(t, err)
    assert.Equal(t, []string{"ADDRESS", "NAME", "PHONE_NO"}, cols)
    assert.Equal(t, []any{"y", "x", 42}, args)
}

func TestSplitRowRejectsHostileColumns(t *testing.T) {
    _, _, err := splitRow(Row{"NAME = 'x'; DROP TABLE USER; --": "v"})
    assert.Error(t, err)

    _, _, err = splitRow(Row{"name with spaces": "v"})
    assert.Error(t, err)

    _, _, err = splitRow(Row{})
    assert.ErrorIs(t, err, ErrEmptyRow)
}

func TestPlaceholders(t *testing.T) {
    assert.Equal(t, "?", placeholders(1))
    assert.Equal(t, "?, ?, ?", placeholders(3))
}
