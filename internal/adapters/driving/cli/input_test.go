package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "dot separator", input: "1.89", want: "1.89"},
		{name: "comma separator", input: "1,89", want: "1.89"},
		{name: "whole number", input: "3", want: "3.00"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "maximum", input: "999.99", want: "999.99"},
		{name: "surrounding spaces", input: " 2.5 ", want: "2.50"},
		{name: "above maximum", input: "1000", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "three decimals", input: "1.234", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "both separators", input: "1,000.50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrice(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestProductInput_ToProduct(t *testing.T) {
	in := productInput{Name: "  Yoghurt ", Stock: 50, ShelfLife: "2026-01-01", Price: "1.89"}

	p, err := in.toProduct()

	require.NoError(t, err)
	assert.Equal(t, int64(0), p.ID)
	assert.Equal(t, "Yoghurt", p.Name)
	assert.Equal(t, 50, p.Stock)
	assert.Equal(t, domain.NewDate(2026, 1, 1), p.ShelfLife)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("1.89")))
}

func TestProductInput_ToProduct_ReportsEveryField(t *testing.T) {
	in := productInput{Stock: -1, ShelfLife: "tomorrow", Price: "9999"}

	_, err := in.toProduct()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "stock must be 0 or more")
	assert.Contains(t, err.Error(), "shelf-life must be a date")
	assert.Contains(t, err.Error(), "price must be between")
}

func TestProductInput_NameTooLong(t *testing.T) {
	in := productInput{Name: strings.Repeat("a", 101), ShelfLife: "2026-01-01", Price: "1"}

	_, err := in.toProduct()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is too long")
}

func TestListItemInput_ToItem(t *testing.T) {
	item, err := listItemInput{GroceryListID: 1, ProductID: 2, Amount: 0}.toItem()

	require.NoError(t, err)
	assert.Equal(t, domain.GroceryListItem{GroceryListID: 1, ProductID: 2, Amount: 0}, item)
}

func TestListItemInput_ToItem_Invalid(t *testing.T) {
	_, err := listItemInput{GroceryListID: 0, ProductID: 2, Amount: -1}.toItem()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "list-id must be a positive number")
	assert.Contains(t, err.Error(), "amount must be 0 or more")
}

func newPromptCmd(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(input))
	return cmd, buf
}

func TestConfirm(t *testing.T) {
	oldTerminal := stdinIsTerminal
	defer func() { stdinIsTerminal = oldTerminal }()
	stdinIsTerminal = func() bool { return true }

	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
		{input: "y", want: true},
	}

	for _, tt := range tests {
		cmd, buf := newPromptCmd(tt.input)

		got, err := confirm(cmd, false, "Proceed?")

		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, buf.String(), "Proceed? [y/N]: ")
	}
}

func TestConfirm_AssumeYes(t *testing.T) {
	oldTerminal := stdinIsTerminal
	defer func() { stdinIsTerminal = oldTerminal }()
	stdinIsTerminal = func() bool { return false }

	cmd, buf := newPromptCmd("")

	got, err := confirm(cmd, true, "Proceed?")

	require.NoError(t, err)
	assert.True(t, got)
	assert.Empty(t, buf.String())
}

func TestConfirm_NoTerminal(t *testing.T) {
	oldTerminal := stdinIsTerminal
	defer func() { stdinIsTerminal = oldTerminal }()
	stdinIsTerminal = func() bool { return false }

	cmd, _ := newPromptCmd("y\n")

	got, err := confirm(cmd, false, "Proceed?")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, got)
}
