package seed

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pumpshop/seed/internal/models"
)

var jobNumberPattern = regexp.MustCompile(`^JOB-\d{4}-\d{3,}$`)

// Violation is one broken consistency rule in a dataset.
type Violation struct {
	Table string
	Key   string
	Rule  string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s[%s]: %s", v.Table, v.Key, v.Rule)
}

type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.String()
	}
	return fmt.Sprintf("%d consistency violations: %s", len(v), strings.Join(parts, "; "))
}

// Validate checks referential integrity and the status-dependent rules of a
// dataset, whether freshly generated or loaded back from a database.
func Validate(ds *models.Dataset) Violations {
	var out Violations
	add := func(table, key, rule string, args ...any) {
		out = append(out, Violation{Table: table, Key: key, Rule: fmt.Sprintf(rule, args...)})
	}

	orgs := make(map[int]bool, len(ds.Organizations))
	for _, o := range ds.Organizations {
		orgs[o.OrganizationID] = true
	}
	customers := make(map[int]bool, len(ds.Customers))
	for _, c := range ds.Customers {
		key := fmt.Sprint(c.CustomerID)
		customers[c.CustomerID] = true
		member := c.CustomerType == models.CustomerOrganizationMember
		switch {
		case member && c.OrganizationID == nil:
			add(c.TableName(), key, "organization member without organization")
		case !member && c.OrganizationID != nil:
			add(c.TableName(), key, "%s customer has organization %d", c.CustomerType, *c.OrganizationID)
		case c.OrganizationID != nil && !orgs[*c.OrganizationID]:
			add(c.TableName(), key, "unknown organization %d", *c.OrganizationID)
		}
	}
	for _, m := range ds.MobileNumbers {
		if !customers[m.CustomerID] {
			add(m.TableName(), m.MobileNumber, "unknown customer %d", m.CustomerID)
		}
	}

	workers := make(map[int]bool, len(ds.Workers))
	for _, w := range ds.Workers {
		workers[w.WorkerID] = true
	}
	for _, u := range ds.Users {
		switch u.Role {
		case models.RoleWorker:
			if u.WorkerID == nil || !workers[*u.WorkerID] || u.CustomerID != nil {
				add(u.TableName(), u.Username, "worker user must reference exactly one known worker")
			}
		case models.RoleCustomer:
			if u.CustomerID == nil || !customers[*u.CustomerID] || u.WorkerID != nil {
				add(u.TableName(), u.Username, "customer user must reference exactly one known customer")
			}
		default:
			if u.WorkerID != nil || u.CustomerID != nil {
				add(u.TableName(), u.Username, "%s user must not reference a worker or customer", u.Role)
			}
		}
	}

	jobs := make(map[string]Status, len(ds.Jobs))
	for _, j := range ds.Jobs {
		if _, dup := jobs[j.JobNumber]; dup {
			add(j.TableName(), j.JobNumber, "duplicate job number")
		}
		status := Status(j.Status)
		jobs[j.JobNumber] = status

		if !jobNumberPattern.MatchString(j.JobNumber) {
			add(j.TableName(), j.JobNumber, "job number does not match JOB-<year>-<seq>")
		}
		if !status.Valid() {
			add(j.TableName(), j.JobNumber, "unknown status %q", j.Status)
		}
		if !customers[j.CustomerID] {
			add(j.TableName(), j.JobNumber, "unknown customer %d", j.CustomerID)
		}
		declined := j.DeclinedReason != nil || j.DeclinedNotes != nil
		if status.Declined() {
			if j.DeclinedReason == nil || j.DeclinedNotes == nil {
				add(j.TableName(), j.JobNumber, "not approved job without declined reason and notes")
			}
			if j.ApprovalDate != nil {
				add(j.TableName(), j.JobNumber, "not approved job has an approval date")
			}
		} else if declined {
			add(j.TableName(), j.JobNumber, "declined fields set for status %q", j.Status)
		}
		if j.ApprovalDate != nil {
			if j.EstimationDate == nil || !j.ApprovalDate.After(*j.EstimationDate) || !j.EstimationDate.After(j.DateReceived) {
				add(j.TableName(), j.JobNumber, "dates must satisfy approval > estimation > received")
			}
		}
	}

	gate := func(table, job, what string, allowed func(Status) bool) {
		status, ok := jobs[job]
		switch {
		case !ok:
			add(table, job, "unknown job")
		case !allowed(status):
			add(table, job, "%s not allowed for status %q", what, status)
		}
	}
	for _, w := range ds.WorkLogs {
		gate(w.TableName(), w.JobNumber, "work log", Status.WorkStarted)
		if !workers[w.WorkerID] {
			add(w.TableName(), w.JobNumber, "unknown worker %d", w.WorkerID)
		}
	}
	for _, p := range ds.PartsUsed {
		gate(p.TableName(), p.JobNumber, "parts", Status.WorkStarted)
	}
	for _, w := range ds.Windings {
		gate(w.TableName(), w.JobNumber, "winding detail", Status.WindingEligible)
	}
	for _, p := range ds.Payments {
		gate(p.TableName(), p.JobNumber, "payment", Status.Terminal)
	}
	for _, doc := range ds.Documents {
		gate(doc.TableName(), doc.JobNumber, "document", Status.Valid)
		if !customers[doc.CustomerID] {
			add(doc.TableName(), doc.JobNumber, "unknown customer %d", doc.CustomerID)
		}
	}
	return out
}
