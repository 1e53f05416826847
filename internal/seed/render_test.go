package seed

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/pumpshop/seed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableCounts(lines []string) map[string]int {
	re := regexp.MustCompile(`^INSERT INTO "?(\w+)"? `)
	counts := make(map[string]int)
	for _, l := range lines {
		if m := re.FindStringSubmatch(l); m != nil {
			counts[m[1]]++
		}
	}
	return counts
}

func TestStatements_Framing(t *testing.T) {
	ds := generate(t, DefaultProfile(), 4)
	lines := Statements(ds, MySQL)

	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "--"))
	assert.Equal(t, "SET FOREIGN_KEY_CHECKS = 0;", lines[1])
	assert.Equal(t, "SET FOREIGN_KEY_CHECKS = 1;", lines[len(lines)-1])

	for _, l := range lines {
		if l == "" || strings.HasPrefix(l, "--") {
			continue
		}
		assert.True(t, strings.HasSuffix(l, ";"), l)
		assert.NotContains(t, l, "\n")
	}
}

func TestStatements_CountsMatchDataset(t *testing.T) {
	ds := generate(t, DefaultProfile(), 8)
	assert.Equal(t, ds.Counts(), tableCounts(Statements(ds, MySQL)))
	assert.Equal(t, ds.Counts(), tableCounts(Statements(ds, Postgres)))
}

func TestStatements_ParentsBeforeChildren(t *testing.T) {
	ds := generate(t, DefaultProfile(), 6)
	lines := Statements(ds, MySQL)

	first := func(prefix string) int {
		for i, l := range lines {
			if strings.HasPrefix(l, prefix) {
				return i
			}
		}
		return -1
	}
	order := []string{
		"INSERT INTO organizations ",
		"INSERT INTO customerdetails ",
		"INSERT INTO worker ",
		"INSERT INTO users ",
		"INSERT INTO suppliers ",
		"INSERT INTO inventory ",
		"INSERT INTO servicerequest ",
		"INSERT INTO documents ",
	}
	prev := -1
	for _, p := range order {
		at := first(p)
		require.NotEqual(t, -1, at, p)
		assert.Greater(t, at, prev, p)
		prev = at
	}

	// each dependent row follows its own job
	current := ""
	jobRe := regexp.MustCompile(`'(JOB-\d{4}-\d{3})'`)
	for _, l := range lines {
		m := jobRe.FindStringSubmatch(l)
		if m == nil {
			continue
		}
		if strings.HasPrefix(l, "INSERT INTO servicerequest ") {
			current = m[1]
			continue
		}
		assert.Equal(t, current, m[1], l)
	}
}

func TestStatements_RowFormat(t *testing.T) {
	ds := &models.Dataset{
		Organizations: []models.Organization{{
			OrganizationID: 1, OrganizationName: "Org_1_Solutions", Email: "contact@Org_1_Solutions.com",
			PrimaryContact: "9988776651", Address: "Address 1", City: "CityA", State: "StateA", OrganizationType: "Dealers",
		}},
		Customers: []models.CustomerDetail{{
			CustomerID: 1, CustomerName: "Customer_1", Address: "Street 1, Area", PrimaryContact: "9876543201",
			CustomerType: models.CustomerIndividual,
		}},
	}
	lines := Statements(ds, MySQL)
	assert.Contains(t, lines,
		"INSERT INTO organizations (OrganizationId, OrganizationName, Email, PrimaryContact, Address, City, State, OrganizationType) "+
			"VALUES (1, 'Org_1_Solutions', 'contact@Org_1_Solutions.com', '9988776651', 'Address 1', 'CityA', 'StateA', 'Dealers');")
	assert.Contains(t, lines,
		"INSERT INTO customerdetails (CustomerId, CustomerName, CompanyName, Address, PrimaryContact, OrganizationId, CustomerType) "+
			"VALUES (1, 'Customer_1', NULL, 'Street 1, Area', '9876543201', NULL, 'Individual');")
}

func TestStatements_NotApprovedRow(t *testing.T) {
	ds := generate(t, DefaultProfile(), 12)
	for _, l := range Statements(ds, MySQL) {
		if !strings.HasPrefix(l, "INSERT INTO servicerequest ") || !strings.Contains(l, "'Not Approved'") {
			continue
		}
		// ApprovalDate is the third value after Status
		idx := strings.Index(l, "'Not Approved', ")
		rest := l[idx+len("'Not Approved', "):]
		parts := strings.SplitN(rest, ", ", 3)
		require.Len(t, parts, 3)
		assert.NotEqual(t, "NULL", parts[0], "estimation date")
		assert.Equal(t, "NULL", parts[1], "approval date")
		assert.NotContains(t, parts[2], "NULL, NULL")
	}
}

func TestStatements_StructureStableAcrossRuns(t *testing.T) {
	a := Statements(generate(t, DefaultProfile(), 100), MySQL)
	b := Statements(generate(t, DefaultProfile(), 200), MySQL)

	ca, cb := tableCounts(a), tableCounts(b)
	for _, table := range []string{"organizations", "customerdetails", "worker", "users", "suppliers", "inventory", "servicerequest", "documents"} {
		assert.Equal(t, ca[table], cb[table], table)
	}
	assert.Equal(t, a[:3], b[:3])
	assert.Equal(t, a[len(a)-2:], b[len(b)-2:])
	assert.NotEqual(t, a, b)
}

func TestWrite(t *testing.T) {
	ds := generate(t, DefaultProfile(), 13)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds, SQLite))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "PRAGMA foreign_keys = ON;\n"))
	assert.Equal(t, len(Statements(ds, SQLite)), strings.Count(out, "\n"))
	assert.Contains(t, out, `INSERT INTO "servicerequest" ("JobNumber", `)
}
