package seed

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pumpshop/seed/internal/models"
)

const scriptHeader = "-- Generated sample data for the job-tracking schema"

// Statements renders ds as an ordered script: FK checks off, one INSERT per
// line grouped by entity with comment and blank separator lines, FK checks on.
func Statements(ds *models.Dataset, d Dialect) []string {
	var r renderer

	r.line(scriptHeader)
	r.line(d.DisableForeignKeys())
	r.line("")

	r.section("Organizations")
	for _, o := range ds.Organizations {
		r.line(d.insert(o.TableName(),
			[]string{"OrganizationId", "OrganizationName", "Email", "PrimaryContact", "Address", "City", "State", "OrganizationType"},
			[]string{intLiteral(o.OrganizationID), Escape(o.OrganizationName), Escape(o.Email), Escape(o.PrimaryContact),
				Escape(o.Address), Escape(o.City), Escape(o.State), Escape(o.OrganizationType)}))
	}
	r.line("")

	r.section("Customers")
	numbers := make(map[int][]models.CustomerMobileNumber)
	for _, m := range ds.MobileNumbers {
		numbers[m.CustomerID] = append(numbers[m.CustomerID], m)
	}
	for _, c := range ds.Customers {
		r.line(d.insert(c.TableName(),
			[]string{"CustomerId", "CustomerName", "CompanyName", "Address", "PrimaryContact", "OrganizationId", "CustomerType"},
			[]string{intLiteral(c.CustomerID), Escape(c.CustomerName), Escape(c.CompanyName), Escape(c.Address),
				Escape(c.PrimaryContact), nullIntLiteral(c.OrganizationID), Escape(c.CustomerType)}))
		for _, m := range numbers[c.CustomerID] {
			r.line(d.insert(m.TableName(),
				[]string{"CustomerId", "MobileNumber"},
				[]string{intLiteral(m.CustomerID), Escape(m.MobileNumber)}))
		}
	}
	r.line("")

	r.section("Workers")
	for _, w := range ds.Workers {
		r.line(d.insert(w.TableName(),
			[]string{"WorkerId", "WorkerName", "MobileNumber", "Skills"},
			[]string{intLiteral(w.WorkerID), Escape(w.WorkerName), Escape(w.MobileNumber), Escape(w.Skills)}))
	}
	r.line("")

	r.section("Users")
	for _, u := range ds.Users {
		cols := []string{"UserId", "Username", "PasswordHash", "Role"}
		vals := []string{intLiteral(u.UserID), Escape(u.Username), Escape(u.PasswordHash), Escape(u.Role)}
		switch {
		case u.WorkerID != nil:
			cols, vals = append(cols, "WorkerId"), append(vals, nullIntLiteral(u.WorkerID))
		case u.CustomerID != nil:
			cols, vals = append(cols, "CustomerId"), append(vals, nullIntLiteral(u.CustomerID))
		}
		r.line(d.insert(u.TableName(), cols, vals))
	}
	r.line("")

	r.section("Suppliers & inventory")
	for _, s := range ds.Suppliers {
		r.line(d.insert(s.TableName(),
			[]string{"SupplierId", "SupplierName"},
			[]string{intLiteral(s.SupplierID), Escape(s.SupplierName)}))
	}
	for _, p := range ds.Parts {
		r.line(d.insert(p.TableName(),
			[]string{"PartId", "PartName", "Unit", "DefaultCostPrice", "DefaultSellingPrice", "QuantityInStock"},
			[]string{intLiteral(p.PartID), Escape(p.PartName), Escape(p.Unit), decimalLiteral(p.DefaultCostPrice),
				decimalLiteral(p.DefaultSellingPrice), intLiteral(p.QuantityInStock)}))
	}
	r.line("")

	r.section("Service requests")
	deps := indexDependents(ds)
	for _, j := range ds.Jobs {
		r.line(d.insert(j.TableName(),
			[]string{"JobNumber", "CustomerId", "PumpBrand", "PumpModel", "MotorBrand", "MotorModel", "HP", "Warranty",
				"DateReceived", "Status", "EstimationDate", "ApprovalDate", "DeclinedReason", "DeclinedNotes", "EstimatedAmount"},
			[]string{Escape(j.JobNumber), intLiteral(j.CustomerID), Escape(j.PumpBrand), Escape(j.PumpModel),
				Escape(j.MotorBrand), Escape(j.MotorModel), decimalLiteral(j.HP), Escape(j.Warranty),
				Escape(j.DateReceived), Escape(j.Status), Escape(j.EstimationDate), Escape(j.ApprovalDate),
				Escape(j.DeclinedReason), Escape(j.DeclinedNotes), decimalLiteral(j.EstimatedAmount)}))

		dep := deps[j.JobNumber]
		if dep == nil {
			continue
		}
		for _, w := range dep.workLogs {
			r.line(d.insert(w.TableName(),
				[]string{"JobNumber", "WorkerId", "WorkDone", "StartTime", "EndTime"},
				[]string{Escape(w.JobNumber), intLiteral(w.WorkerID), Escape(w.WorkDone), Escape(w.StartTime), Escape(w.EndTime)}))
		}
		for _, p := range dep.partsUsed {
			r.line(d.insert(p.TableName(),
				[]string{"JobNumber", "PartName", "Unit", "Qty", "CostPrice"},
				[]string{Escape(p.JobNumber), Escape(p.PartName), Escape(p.Unit), intLiteral(p.Qty), decimalLiteral(p.CostPrice)}))
		}
		for _, w := range dep.windings {
			r.line(d.insert(w.TableName(),
				[]string{"jobNumber", "hp", "phase", "connection_type", "swg_run", "turns_run"},
				[]string{Escape(w.JobNumber), decimalLiteral(w.HP), Escape(w.Phase), Escape(w.ConnectionType),
					intLiteral(w.SWGRun), intLiteral(w.TurnsRun)}))
		}
		for _, p := range dep.payments {
			r.line(d.insert(p.TableName(),
				[]string{"JobNumber", "Amount", "PaymentType", "PaymentMode"},
				[]string{Escape(p.JobNumber), decimalLiteral(p.Amount), Escape(p.PaymentType), Escape(p.PaymentMode)}))
		}
		for _, doc := range dep.documents {
			r.line(d.insert(doc.TableName(),
				[]string{"JobNumber", "CustomerId", "DocumentType", "EmbedTag", "CreatedBy"},
				[]string{Escape(doc.JobNumber), intLiteral(doc.CustomerID), Escape(doc.DocumentType), Escape(doc.EmbedTag),
					intLiteral(doc.CreatedBy)}))
		}
	}

	r.line("")
	r.line(d.EnableForeignKeys())
	return r.lines
}

// Write renders ds to w, one statement per line.
func Write(w io.Writer, ds *models.Dataset, d Dialect) error {
	bw := bufio.NewWriter(w)
	for _, line := range Statements(ds, d) {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write script: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}

type renderer struct {
	lines []string
}

func (r *renderer) line(s string) { r.lines = append(r.lines, s) }

func (r *renderer) section(name string) { r.line("-- " + name) }

type dependents struct {
	workLogs  []models.WorkLog
	partsUsed []models.PartUsed
	windings  []models.WindingDetail
	payments  []models.Payment
	documents []models.Document
}

func indexDependents(ds *models.Dataset) map[string]*dependents {
	idx := make(map[string]*dependents, len(ds.Jobs))
	get := func(job string) *dependents {
		if idx[job] == nil {
			idx[job] = &dependents{}
		}
		return idx[job]
	}
	for _, w := range ds.WorkLogs {
		get(w.JobNumber).workLogs = append(get(w.JobNumber).workLogs, w)
	}
	for _, p := range ds.PartsUsed {
		get(p.JobNumber).partsUsed = append(get(p.JobNumber).partsUsed, p)
	}
	for _, w := range ds.Windings {
		get(w.JobNumber).windings = append(get(w.JobNumber).windings, w)
	}
	for _, p := range ds.Payments {
		get(p.JobNumber).payments = append(get(p.JobNumber).payments, p)
	}
	for _, doc := range ds.Documents {
		get(doc.JobNumber).documents = append(get(doc.JobNumber).documents, doc)
	}
	return idx
}
