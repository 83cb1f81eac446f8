package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_JSONShape(t *testing.T) {
	state := State{
		Books:      []Book{{ID: "ab-1", Title: "Dune", Author: "Herbert"}},
		CheckedOut: []BookID{"cd-2", "ab-1"},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"books":[{"id":"ab-1","title":"Dune","author":"Herbert"}],"checkedOutBooks":["ab-1","cd-2"]}`,
		string(data))
}

func TestState_EmptyEncodesAsLists(t *testing.T) {
	data, err := json.Marshal(State{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"books":[],"checkedOutBooks":[]}`, string(data))
}

func TestState_UnmarshalDropsDuplicateIDs(t *testing.T) {
	var state State
	err := json.Unmarshal([]byte(`{"books":[],"checkedOutBooks":["ab-1","ab-1","cd-2"]}`), &state)
	require.NoError(t, err)
	assert.Equal(t, []BookID{"ab-1", "cd-2"}, state.CheckedOut)
	assert.NotNil(t, state.Books)
}

func TestState_Validate(t *testing.T) {
	good := &State{
		Books:      []Book{{ID: "ab-1", Title: "Dune", Author: "Herbert"}},
		CheckedOut: []BookID{"ab-1", "ff-9"},
	}
	require.NoError(t, good.Validate())

	badBook := &State{Books: []Book{{ID: "zz-1", Title: "Dune", Author: "Herbert"}}}
	assert.Error(t, badBook.Validate())

	badID := &State{CheckedOut: []BookID{"nope"}}
	assert.Error(t, badID.Validate())

	emptyTitle := &State{Books: []Book{{ID: "ab-1", Title: " ", Author: "Herbert"}}}
	assert.True(t, IsValidationError(emptyTitle.Validate()))

	nonCanonical := &State{
		Books:      []Book{{ID: "AB-07", Title: "Emma", Author: "Austen"}},
		CheckedOut: []BookID{"ab-007"},
	}
	assert.NoError(t, nonCanonical.Validate())
}

func TestState_JSONCanonicalisesIDs(t *testing.T) {
	state := State{
		Books:      []Book{{ID: "AB-07", Title: "Emma", Author: "Austen"}},
		CheckedOut: []BookID{"ab-007", "ab-7"},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"books":[{"id":"ab-7","title":"Emma","author":"Austen"}],"checkedOutBooks":["ab-7"]}`,
		string(data))

	var got State
	require.NoError(t, json.Unmarshal(
		[]byte(`{"books":[{"id":"Cd-010","title":"Persuasion","author":"Austen"}],"checkedOutBooks":["cd-10","CD-0010"]}`),
		&got))
	assert.Equal(t, BookID("cd-10"), got.Books[0].ID)
	assert.Equal(t, []BookID{"cd-10"}, got.CheckedOut)
}

func TestParseSearchMode(t *testing.T) {
	m, err := ParseSearchMode("")
	require.NoError(t, err)
	assert.Equal(t, SearchLiteral, m)

	m, err = ParseSearchMode(" Pattern ")
	require.NoError(t, err)
	assert.Equal(t, SearchPattern, m)

	_, err = ParseSearchMode("fuzzy")
	assert.True(t, IsValidationError(err))
}
