package seed

import (
	"fmt"
	"testing"

	"github.com/pumpshop/seed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHash(t *testing.T) string {
	t.Helper()
	hash, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func generate(t *testing.T, profile Profile, seed int64) *models.Dataset {
	t.Helper()
	g, err := NewGenerator(profile, testHash(t), NewRand(seed))
	require.NoError(t, err)
	ds, err := g.Generate()
	require.NoError(t, err)
	return ds
}

func TestGenerate_DefaultProfileCounts(t *testing.T) {
	ds := generate(t, DefaultProfile(), 1)

	assert.Len(t, ds.Organizations, 5)
	assert.Len(t, ds.Customers, 20)
	assert.Len(t, ds.Workers, 5)
	assert.Len(t, ds.Users, 2+5+5)
	assert.Len(t, ds.Suppliers, 3)
	assert.Len(t, ds.Parts, 7)
	assert.Len(t, ds.Jobs, 50)
	assert.Len(t, ds.Documents, 50)
	assert.GreaterOrEqual(t, len(ds.MobileNumbers), 20)
	assert.LessOrEqual(t, len(ds.MobileNumbers), 40)
}

func TestGenerate_Consistent(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		ds := generate(t, DefaultProfile(), seed)
		assert.Empty(t, Validate(ds), "seed %d", seed)
	}
}

func TestGenerate_JobNumbersSequential(t *testing.T) {
	ds := generate(t, DefaultProfile(), 3)
	for i, j := range ds.Jobs {
		assert.Equal(t, fmt.Sprintf("JOB-2024-%03d", i+1), j.JobNumber)
	}
}

func TestGenerate_OrganizationMembership(t *testing.T) {
	ds := generate(t, DefaultProfile(), 5)
	for _, c := range ds.Customers {
		if c.CustomerID%3 == 0 {
			assert.Equal(t, models.CustomerOrganizationMember, c.CustomerType)
			require.NotNil(t, c.OrganizationID)
			require.NotNil(t, c.CompanyName)
			assert.Equal(t, c.CustomerName+" Corp", *c.CompanyName)
		} else {
			assert.Equal(t, models.CustomerIndividual, c.CustomerType)
			assert.Nil(t, c.OrganizationID)
			assert.Nil(t, c.CompanyName)
		}
	}
}

func TestGenerate_StatusRules(t *testing.T) {
	ds := generate(t, Profile{
		Organizations: 2, Customers: 4, OrgMemberEvery: 3, Workers: 2, CustomerUsers: 1,
		Suppliers: 1, Jobs: 500, StockQuantity: 10, Markup: 1.5,
		Start: DefaultProfile().Start, End: DefaultProfile().End,
	}, 11)

	perJob := func(jobs []string) map[string]int {
		m := make(map[string]int)
		for _, j := range jobs {
			m[j]++
		}
		return m
	}
	var logJobs, partJobs, payJobs []string
	for _, w := range ds.WorkLogs {
		logJobs = append(logJobs, w.JobNumber)
	}
	for _, p := range ds.PartsUsed {
		partJobs = append(partJobs, p.JobNumber)
	}
	for _, p := range ds.Payments {
		payJobs = append(payJobs, p.JobNumber)
	}
	logs, parts, pays := perJob(logJobs), perJob(partJobs), perJob(payJobs)

	seen := make(map[Status]bool)
	for _, j := range ds.Jobs {
		status := Status(j.Status)
		seen[status] = true

		want := 0
		if status.WorkStarted() {
			want = 1
		}
		assert.Equal(t, want, logs[j.JobNumber], "work logs for %s (%s)", j.JobNumber, status)
		assert.Equal(t, want, parts[j.JobNumber], "parts for %s (%s)", j.JobNumber, status)

		want = 0
		if status.Terminal() {
			want = 1
		}
		assert.Equal(t, want, pays[j.JobNumber], "payments for %s (%s)", j.JobNumber, status)

		if status.Declined() {
			assert.NotNil(t, j.DeclinedReason)
			assert.NotNil(t, j.DeclinedNotes)
			assert.Nil(t, j.ApprovalDate)
		}
		if status.ApprovalWithheld() {
			assert.Nil(t, j.ApprovalDate)
		} else {
			require.NotNil(t, j.ApprovalDate)
			assert.True(t, j.ApprovalDate.After(*j.EstimationDate))
			assert.True(t, j.EstimationDate.After(j.DateReceived))
		}
	}
	assert.Len(t, seen, len(Statuses), "500 draws should cover every status")
	assert.NotEmpty(t, ds.Windings)
	assert.Less(t, len(ds.Windings), len(ds.Jobs))
}

func TestGenerate_Users(t *testing.T) {
	ds := generate(t, DefaultProfile(), 9)

	assert.Equal(t, "admin", ds.Users[0].Username)
	assert.Equal(t, models.RoleAdmin, ds.Users[0].Role)
	assert.Equal(t, "owner", ds.Users[1].Username)
	assert.Equal(t, models.RoleOwner, ds.Users[1].Role)

	for i, u := range ds.Users {
		assert.Equal(t, i+1, u.UserID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")), u.Username)
	}
	u, ok := ds.UserByName("worker3")
	require.True(t, ok)
	require.NotNil(t, u.WorkerID)
	assert.Equal(t, 3, *u.WorkerID)

	u, ok = ds.UserByName("customer5")
	require.True(t, ok)
	require.NotNil(t, u.CustomerID)
	assert.Equal(t, 5, *u.CustomerID)

	_, ok = ds.UserByName("customer6")
	assert.False(t, ok)
}

func TestGenerate_Inventory(t *testing.T) {
	ds := generate(t, DefaultProfile(), 2)
	for _, p := range ds.Parts {
		assert.True(t, p.DefaultSellingPrice.Equal(p.DefaultCostPrice.Mul(decimalFromString(t, "1.5"))), p.PartName)
		assert.Equal(t, 100, p.QuantityInStock)
	}
	assert.Equal(t, "Copper Wire 24SWG", ds.Parts[0].PartName)
	assert.Equal(t, "1275.00", ds.Parts[0].DefaultSellingPrice.StringFixed(2))
}

func TestGenerate_SameSeedSameJobs(t *testing.T) {
	a := generate(t, DefaultProfile(), 77)
	b := generate(t, DefaultProfile(), 77)
	assert.Equal(t, a.Jobs, b.Jobs)
	assert.Equal(t, a.Customers, b.Customers)
}

func TestNewGenerator_Errors(t *testing.T) {
	p := DefaultProfile()
	p.Jobs = 0
	_, err := NewGenerator(p, "hash", nil)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewGenerator(DefaultProfile(), "", nil)
	assert.ErrorIs(t, err, ErrNoPasswordHash)
}
