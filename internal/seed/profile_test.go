package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile_Valid(t *testing.T) {
	require.NoError(t, DefaultProfile().Validate())
	assert.Equal(t, "JOB-2024-001", DefaultProfile().JobNumber(1))
	assert.Equal(t, "JOB-2024-1000", DefaultProfile().JobNumber(1000))
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
	}{
		{"zero jobs", func(p *Profile) { p.Jobs = 0 }},
		{"negative customers", func(p *Profile) { p.Customers = -1 }},
		{"zero org interval", func(p *Profile) { p.OrgMemberEvery = 0 }},
		{"negative customer users", func(p *Profile) { p.CustomerUsers = -2 }},
		{"markup below cost", func(p *Profile) { p.Markup = 0.9 }},
		{"inverted window", func(p *Profile) { p.End = p.Start.Add(-time.Hour) }},
		{"empty window", func(p *Profile) { p.End = p.Start }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidProfile)
		})
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jobs: 10
customers: 6
start: 2023-06-01T00:00:00Z
end: 2023-07-01T00:00:00Z
`), 0o644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Jobs)
	assert.Equal(t, 6, p.Customers)
	assert.Equal(t, 5, p.Workers, "missing keys keep defaults")
	assert.Equal(t, "JOB-2023-010", p.JobNumber(10))

	ds := generate(t, p, 1)
	assert.Len(t, ds.Jobs, 10)
	for _, j := range ds.Jobs {
		assert.Equal(t, 2023, j.DateReceived.Year())
		assert.Equal(t, time.June, j.DateReceived.Month())
	}
}

func TestLoadProfile_Errors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: 0\n"), 0o644))
	_, err = LoadProfile(path)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}
