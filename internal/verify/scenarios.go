package verify

import (
	"errors"

	"github.com/pumpshop/seed/internal/models"
)

var ErrNoFixture = errors.New("dataset has no suitable verification fixture")

// Fixtures are the seeded accounts and records the built-in scenarios log
// in with and look for.
type Fixtures struct {
	Password   string
	Admin      string
	Owner      string
	Worker     string
	DetailJob  string
	DetailPart string
	// OwnerToken, when set, is injected into localStorage instead of
	// logging the owner in through the form.
	OwnerToken string
}

// BuildFixtures picks a worker who has logged work and a job with parts
// from ds.
func BuildFixtures(ds *models.Dataset, password string) (Fixtures, error) {
	f := Fixtures{Password: password}
	for _, u := range ds.Users {
		switch u.Role {
		case models.RoleAdmin:
			if f.Admin == "" {
				f.Admin = u.Username
			}
		case models.RoleOwner:
			if f.Owner == "" {
				f.Owner = u.Username
			}
		}
	}

	workers := make(map[int]string)
	for _, u := range ds.Users {
		if u.Role == models.RoleWorker && u.WorkerID != nil {
			workers[*u.WorkerID] = u.Username
		}
	}
	for _, w := range ds.WorkLogs {
		if name, ok := workers[w.WorkerID]; ok {
			f.Worker = name
			break
		}
	}
	if len(ds.PartsUsed) > 0 {
		f.DetailJob = ds.PartsUsed[0].JobNumber
		f.DetailPart = ds.PartsUsed[0].PartName
	}

	if f.Admin == "" || f.Owner == "" || f.Worker == "" || f.DetailJob == "" {
		return f, ErrNoFixture
	}
	return f, nil
}

func login(username, password string) []Step {
	return []Step{
		Navigate("/login"),
		Fill(`input[name="username"]`, username),
		Fill(`input[name="password"]`, password),
		Click(`button[type="submit"]`),
		WaitURL("**/dashboard"),
	}
}

func scenario(name string, groups ...[]Step) Scenario {
	sc := Scenario{Name: name}
	for _, g := range groups {
		sc.Steps = append(sc.Steps, g...)
	}
	return sc
}

// BuiltinScenarios are the recorded dashboard, jobs list, job details, user
// management and theme checks, parameterized by seeded data.
func BuiltinScenarios(f Fixtures) []Scenario {
	ownerEntry := login(f.Owner, f.Password)
	if f.OwnerToken != "" {
		ownerEntry = []Step{
			Navigate("/login"),
			SetLocalStorage("token", f.OwnerToken),
			SetLocalStorage("role", models.RoleOwner),
		}
	}

	return []Scenario{
		scenario("dashboard_admin",
			login(f.Admin, f.Password),
			[]Step{
				ExpectVisible("", "ServicePortal"),
				ExpectVisible("h1, h2", "Dashboard"),
				ExpectVisible("", "Total Jobs"),
				ExpectVisible("", "Revenue Trend"),
				ExpectVisible("button", "New Job"),
				ExpectVisible("button", "Add Customer"),
				Screenshot("dashboard_admin.png"),
			}),
		scenario("dashboard_worker",
			login(f.Worker, f.Password),
			[]Step{
				ExpectVisible("", "My Active Jobs"),
				ExpectVisible("button", "Update Job"),
				ExpectVisible("button", "Log Work"),
				ExpectHidden("", "Revenue Trend"),
				ExpectHidden("button", "New Job"),
				Screenshot("dashboard_worker.png"),
			}),
		scenario("jobs_list_admin",
			login(f.Admin, f.Password),
			[]Step{
				Click(`a[href="/dashboard/jobs"]`),
				ExpectVisible("th", "Customer"),
				ExpectVisible("th", "Amount"),
				Screenshot("jobs_list_admin.png"),
			}),
		scenario("jobs_list_worker",
			login(f.Worker, f.Password),
			[]Step{
				Click(`a[href="/dashboard/jobs"]`),
				ExpectHidden("th", "Customer"),
				ExpectHidden("th", "Amount"),
				Screenshot("jobs_list_worker.png"),
			}),
		scenario("job_details",
			ownerEntry,
			[]Step{
				Navigate("/dashboard/jobs/" + f.DetailJob),
				ExpectVisible("", "Job #"+f.DetailJob),
				ClickText("button", "Update Status"),
				ExpectVisible("", "Update Job Status"),
				Screenshot("job_details_modal.png"),
				ClickText("button", "Cancel"),
				ClickText("button", "Parts Used"),
				ExpectVisible("", f.DetailPart),
				Screenshot("job_details_parts.png"),
			}),
		scenario("user_management",
			ownerEntry,
			[]Step{
				Navigate("/dashboard/users"),
				ExpectVisible("", "User Management"),
				ExpectVisible("", f.Worker),
				ClickText("button", "Add User"),
				ExpectVisible("", "Add New User"),
				Fill(`input[name="Username"]`, "newadmin"),
				Select(`select[name="Role"]`, models.RoleAdmin),
				Fill(`input[name="Password"]`, f.Password),
				Screenshot("user_mgmt.png"),
			}),
		scenario("theme_toggle",
			login(f.Admin, f.Password),
			[]Step{
				ExpectNoClass("html", "dark"),
				Click(`button[aria-label="Toggle theme"]`),
				ExpectClass("html", "dark"),
				Screenshot("theme_dark.png"),
			}),
	}
}
