package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-wizard/internal/schemas"
)

func TestLoadProfile_Single(t *testing.T) {
	p, err := LoadProfile(filepath.Join("..", "..", "testdata", "profiles", "profile.json"), "tr")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Deniz Kaya", p.Personal.FullName)
	require.Len(t, p.Experience, 2)
	assert.Equal(t, "Senior Data Analyst", p.Experience[0].Title)
	assert.Equal(t, "2021-03", p.Experience[0].StartDate)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "Python, SQL, Excel, Power BI, Git", p.Skills["technical"])
	require.Len(t, p.Certificates, 1)
}

func TestLoadProfile_Bundle(t *testing.T) {
	path := filepath.Join("..", "..", "testdata", "profiles", "profile_bundle.json")

	tr, err := LoadProfile(path, "tr")
	require.NoError(t, err)
	assert.Equal(t, "Kıdemli Veri Analisti", tr.Experience[0].Title)

	en, err := LoadProfile(path, "en")
	require.NoError(t, err)
	assert.Equal(t, "Senior Data Analyst", en.Experience[0].Title)
}

func TestLoadProfile_BundleMissingLanguage(t *testing.T) {
	_, err := LoadProfile(filepath.Join("..", "..", "testdata", "profiles", "profile_bundle.json"), "de")
	require.Error(t, err)

	var notFound *LanguageNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "de", notFound.Language)
	assert.Equal(t, []string{"en", "tr"}, notFound.Available)
	assert.Contains(t, err.Error(), "en, tr")
}

func TestLoadProfile_FileNotFound(t *testing.T) {
	_, err := LoadProfile(filepath.Join("..", "..", "testdata", "profiles", "missing.json"), "tr")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadProfile_SchemaViolation(t *testing.T) {
	_, err := LoadProfile(filepath.Join("..", "..", "testdata", "profiles", "invalid_profile.json"), "tr")
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		lang        string
		wantSummary string
		wantErr     bool
	}{
		{name: "single profile ignores lang", content: `{"personal": {"summary": "Analyst"}}`, lang: "en", wantSummary: "Analyst"},
		{name: "empty object is an empty profile", content: `{}`, lang: "tr"},
		{name: "bundle entry", content: `{"en": {"personal": {"summary": "Analyst"}}}`, lang: "en", wantSummary: "Analyst"},
		{name: "malformed JSON", content: `{"personal": `, lang: "tr", wantErr: true},
		{name: "top-level array", content: `[]`, lang: "tr", wantErr: true},
		{name: "bundle entry with wrong type", content: `{"en": {"skills": "Python"}}`, lang: "en", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode([]byte(tt.content), tt.lang)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSummary, p.Personal.Summary)
		})
	}
}
