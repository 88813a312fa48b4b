package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailClean(t *testing.T) {
	d := Detail{
		Meaning:  "  to run fast ",
		Examples: []string{" He sprints. ", "", "   "},
		POS:      []string{"v", "verb", "v", "n"},
	}.Clean()

	assert.Equal(t, "to run fast", d.Meaning)
	assert.Equal(t, []string{"He sprints."}, d.Examples)
	assert.Equal(t, []string{"v", "n"}, d.POS)
	assert.True(t, Detail{Meaning: " ", POS: []string{"x"}}.Clean().Empty())
}

func TestSetNotes_ReplacesAndClears(t *testing.T) {
	m := New([]string{"sprint"})

	m.SetNotes("Sprint", Notes{
		Details:       []Detail{{Meaning: "run"}, {Meaning: " "}},
		IPA:           " sprɪnt ",
		TongueTwister: true,
	})
	n := m.NotesFor("sprint")
	require.Len(t, n.Details, 1)
	assert.Equal(t, "sprɪnt", n.IPA)
	assert.True(t, n.TongueTwister)

	m.SetNotes("sprint", Notes{})
	assert.NotContains(t, m.Details, "sprint")
	assert.NotContains(t, m.IPA, "sprint")
	assert.False(t, m.TongueTwisters.Has("sprint"))
}

func TestMergeNotes_OnlyFilled(t *testing.T) {
	m := New([]string{"sprint"})
	m.SetNotes("sprint", Notes{Details: []Detail{{Meaning: "run"}}, IPA: "sprɪnt"})

	assert.False(t, m.MergeNotes("sprint", Notes{}))
	assert.True(t, m.MergeNotes("sprint", Notes{TongueTwister: true}))

	n := m.NotesFor("sprint")
	assert.Equal(t, "sprɪnt", n.IPA)
	assert.Len(t, n.Details, 1)
	assert.True(t, n.TongueTwister)
}

func TestAddExpression(t *testing.T) {
	m := New(nil)

	added, err := m.AddExpression(" Break a leg ", "good luck", nil)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = m.AddExpression("Break a leg", "", []string{"Break a leg tonight!"})
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, []string{"Break a leg"}, m.Expressions)
	require.Len(t, m.Details["break a leg"], 2)
	assert.Equal(t, []string{}, m.Details["break a leg"][0].POS)
	assert.Empty(t, m.Vocabulary(), "expressions stay out of the vocabulary")

	_, err = m.AddExpression("   ", "meaning", nil)
	require.ErrorIs(t, err, ErrInvalidExpression)
	_, err = m.AddExpression("phrase", " ", []string{""})
	require.ErrorIs(t, err, ErrInvalidExpression)

	assert.True(t, m.RemoveExpression("Break a leg"))
	assert.Empty(t, m.Expressions)
	assert.NotContains(t, m.Details, "break a leg")
	assert.False(t, m.RemoveExpression("Break a leg"))
}

func TestParseBaseDictionary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"bare list", `["pear", " Apple ", "apple", "b", 3, "Banana"]`, []string{"Apple", "Banana", "pear"}},
		{"words object", `{"words": ["zeta", "Alpha"], "version": 2}`, []string{"Alpha", "zeta"}},
		{"object without words", `{"other": []}`, []string{}},
		{"length in characters", `["é", "x", "ça", "Émigré", "émigré"]`, []string{"ça", "Émigré"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBaseDictionary([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseBaseDictionary([]byte(`"just a string"`))
	assert.Error(t, err)
	_, err = ParseBaseDictionary([]byte(`{not json`))
	assert.Error(t, err)
}

func TestLoadBaseDictionary(t *testing.T) {
	dir := t.TempDir()

	got, err := LoadBaseDictionary(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, got)

	path := filepath.Join(dir, "dict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"words":["b2","a1"]}`), 0o644))
	got, err = LoadBaseDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "b2"}, got)
}

func TestStarterDictionary(t *testing.T) {
	list := StarterDictionary()
	require.NotEmpty(t, list)
	assert.Equal(t, list, UniqueFold(list))
}
