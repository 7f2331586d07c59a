package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_EmptySet(t *testing.T) {
	assert.Equal(t, "", Assemble(nil))
	assert.Equal(t, "", Assemble([]PopulatedLayer{}))
}

func TestAssemble_SingleLayer_NoDelimiter(t *testing.T) {
	layer := PopulatedLayer{ID: "only", Priority: 10, Content: "exact text"}
	assert.Equal(t, "exact text", Assemble([]PopulatedLayer{layer}))
}

func TestAssemble_PriorityDescending(t *testing.T) {
	layers := []PopulatedLayer{
		{ID: "low", Priority: 1, Content: "last"},
		{ID: "high", Priority: 100, Content: "first"},
		{ID: "mid", Priority: 50, Content: "middle"},
	}

	expected := "first" + LayerSeparator + "middle" + LayerSeparator + "last"
	assert.Equal(t, expected, Assemble(layers))
}

func TestAssemble_StableTies(t *testing.T) {
	layers := []PopulatedLayer{
		{ID: "a", Priority: 50, Content: "A"},
		{ID: "b", Priority: 50, Content: "B"},
		{ID: "c", Priority: 50, Content: "C"},
	}

	assert.Equal(t, "A"+LayerSeparator+"B"+LayerSeparator+"C", Assemble(layers))
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	layers := []PopulatedLayer{
		{ID: "low", Priority: 1, Content: "last"},
		{ID: "high", Priority: 100, Content: "first"},
	}

	_ = Assemble(layers)
	assert.Equal(t, "low", layers[0].ID)
	assert.Equal(t, "high", layers[1].ID)
}

func TestSortByPriority(t *testing.T) {
	layers := []PopulatedLayer{
		{ID: "b", Priority: 50},
		{ID: "a", Priority: 100},
		{ID: "c", Priority: 50},
	}

	sorted := SortByPriority(layers)
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)
}
