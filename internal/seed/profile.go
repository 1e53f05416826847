package seed

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidProfile = errors.New("invalid seed profile")

// Profile fixes the shape of a generated dataset. Content is random; counts
// and the date window are not.
type Profile struct {
	Organizations  int       `yaml:"organizations"`
	Customers      int       `yaml:"customers"`
	OrgMemberEvery int       `yaml:"org_member_every"`
	Workers        int       `yaml:"workers"`
	CustomerUsers  int       `yaml:"customer_users"`
	Suppliers      int       `yaml:"suppliers"`
	Jobs           int       `yaml:"jobs"`
	StockQuantity  int       `yaml:"stock_quantity"`
	Markup         float64   `yaml:"markup"`
	Start          time.Time `yaml:"start"`
	End            time.Time `yaml:"end"`
}

func DefaultProfile() Profile {
	return Profile{
		Organizations:  5,
		Customers:      20,
		OrgMemberEvery: 3,
		Workers:        5,
		CustomerUsers:  5,
		Suppliers:      3,
		Jobs:           50,
		StockQuantity:  100,
		Markup:         1.5,
		Start:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// LoadProfile reads a YAML profile. Keys missing from the file keep their
// default values.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read seed profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse seed profile: %w", err)
	}
	return p, p.Validate()
}

// Validate reports the first setting of p that cannot produce a dataset.
func (p Profile) Validate() error {
	counts := map[string]int{
		"organizations":    p.Organizations,
		"customers":        p.Customers,
		"org_member_every": p.OrgMemberEvery,
		"workers":          p.Workers,
		"suppliers":        p.Suppliers,
		"jobs":             p.Jobs,
	}
	for name, n := range counts {
		if n <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidProfile, name, n)
		}
	}
	if p.CustomerUsers < 0 || p.StockQuantity < 0 {
		return fmt.Errorf("%w: customer_users and stock_quantity must not be negative", ErrInvalidProfile)
	}
	if p.Markup < 1 {
		return fmt.Errorf("%w: markup must be at least 1, got %v", ErrInvalidProfile, p.Markup)
	}
	if !p.End.After(p.Start) {
		return fmt.Errorf("%w: end %s is not after start %s", ErrInvalidProfile,
			p.End.Format(time.DateOnly), p.Start.Format(time.DateOnly))
	}
	return nil
}

// JobNumber formats the seq-th job number of this profile.
func (p Profile) JobNumber(seq int) string {
	return fmt.Sprintf("JOB-%d-%03d", p.Start.Year(), seq)
}
