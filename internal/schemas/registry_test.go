package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesSchema_AcceptsConformingPayload(t *testing.T) {
	doc := `{"names": ["Сварщик", "Электрик"], "sourceNote": null}`
	assert.NoError(t, Names.Check(doc))
}

func TestNamesSchema_RejectsMissingNames(t *testing.T) {
	err := Names.Check(`{"sourceNote": "нет данных"}`)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestNamesSchema_RejectsExtraFields(t *testing.T) {
	assert.Error(t, Names.Check(`{"names": [], "extra": true}`))
}

func TestDetailSchema_AcceptsConformingPayload(t *testing.T) {
	doc := `{
		"name": "Инженер по данным",
		"category": "TECHNOLOGY",
		"description": null,
		"startSalary": 500000,
		"endSalary": 1200000,
		"popularity": "HIGH",
		"skills": ["SQL", "Spark", "Python"]
	}`
	assert.NoError(t, Detail.Check(doc))
}

func TestDetailSchema_Violations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "category outside enum",
			doc:  `{"name": "Маг", "category": "WIZARDRY", "skills": ["a", "b", "c"]}`,
		},
		{
			name: "too few skills",
			doc:  `{"name": "X", "category": "BUSINESS", "skills": ["a"]}`,
		},
		{
			name: "duplicate skills",
			doc:  `{"name": "X", "category": "BUSINESS", "skills": ["a", "a", "b"]}`,
		},
		{
			name: "negative salary",
			doc:  `{"name": "X", "category": "BUSINESS", "skills": ["a", "b", "c"], "startSalary": -5}`,
		},
		{
			name: "missing required skills",
			doc:  `{"name": "X", "category": "BUSINESS"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Detail.Check(tt.doc)
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestListSchema_AcceptsConformingPayload(t *testing.T) {
	doc := `{"professions": [{"name": "Аудитор", "category": "BUSINESS", "skills": ["a", "b", "c"]}]}`
	assert.NoError(t, List.Check(doc))
}

func TestSchema_TextIsCompactJSON(t *testing.T) {
	text := Names.Text()
	assert.Contains(t, text, `"names"`)
	assert.NotContains(t, text, "\n")

	assert.Contains(t, Detail.Text(), `"TECHNOLOGY"`)
}

func TestSchema_CheckReportsLoadErrors(t *testing.T) {
	err := Names.Check("{not valid json")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_ErrorMessageListsFields(t *testing.T) {
	err := Detail.Check(`{"category": "BUSINESS", "skills": ["a","b","c"]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}
