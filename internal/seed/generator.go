package seed

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pumpshop/seed/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var ErrNoPasswordHash = errors.New("password hash is required")

// HashPassword produces the credential hash shared by every seeded user.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash seed password: %w", err)
	}
	return string(hash), nil
}

// Generator builds one randomized Dataset per call to Generate.
type Generator struct {
	profile      Profile
	passwordHash string
	rng          *rand.Rand
}

// NewGenerator validates profile and returns a generator whose users all
// share passwordHash. A nil rng is seeded from the clock.
func NewGenerator(profile Profile, passwordHash string, rng *rand.Rand) (*Generator, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, ErrNoPasswordHash
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Generator{profile: profile, passwordHash: passwordHash, rng: rng}, nil
}

// sequence hands out per-table identifiers for a single generation pass.
type sequence map[string]int

func (s sequence) next(table string) int {
	s[table]++
	return s[table]
}

// Generate builds every entity group in dependency order. Nothing is
// returned unless the whole dataset was built.
func (g *Generator) Generate() (*models.Dataset, error) {
	ds := &models.Dataset{}
	ids := sequence{}

	g.organizations(ds, ids)
	g.customers(ds, ids)
	g.workers(ds, ids)
	g.users(ds, ids)
	if err := g.inventory(ds, ids); err != nil {
		return nil, err
	}
	if err := g.jobs(ds, ids); err != nil {
		return nil, err
	}
	return ds, nil
}

func (g *Generator) organizations(ds *models.Dataset, ids sequence) {
	for range g.profile.Organizations {
		id := ids.next(models.Organization{}.TableName())
		name := fmt.Sprintf("Org_%d_Solutions", id)
		ds.Organizations = append(ds.Organizations, models.Organization{
			OrganizationID:   id,
			OrganizationName: name,
			Email:            fmt.Sprintf("contact@%s.com", name),
			PrimaryContact:   fmt.Sprintf("998877665%d", id),
			Address:          fmt.Sprintf("Address %d", id),
			City:             "CityA",
			State:            "StateA",
			OrganizationType: pick(g.rng, organizationTypes),
		})
	}
}

func (g *Generator) customers(ds *models.Dataset, ids sequence) {
	for range g.profile.Customers {
		id := ids.next(models.CustomerDetail{}.TableName())
		name := fmt.Sprintf("Customer_%d", id)
		c := models.CustomerDetail{
			CustomerID:     id,
			CustomerName:   name,
			Address:        fmt.Sprintf("Street %d, Area", id),
			PrimaryContact: fmt.Sprintf("98765432%02d", id),
			CustomerType:   models.CustomerIndividual,
		}
		if id%g.profile.OrgMemberEvery == 0 {
			org := pick(g.rng, ds.Organizations).OrganizationID
			company := name + " Corp"
			c.CustomerType = models.CustomerOrganizationMember
			c.OrganizationID = &org
			c.CompanyName = &company
		}
		ds.Customers = append(ds.Customers, c)

		ds.MobileNumbers = append(ds.MobileNumbers, models.CustomerMobileNumber{
			MobileNumberID: ids.next(models.CustomerMobileNumber{}.TableName()),
			CustomerID:     id,
			MobileNumber:   c.PrimaryContact,
		})
		if g.rng.Intn(2) == 0 {
			ds.MobileNumbers = append(ds.MobileNumbers, models.CustomerMobileNumber{
				MobileNumberID: ids.next(models.CustomerMobileNumber{}.TableName()),
				CustomerID:     id,
				MobileNumber:   fmt.Sprintf("88765432%02d", id),
			})
		}
	}
}

func (g *Generator) workers(ds *models.Dataset, ids sequence) {
	for range g.profile.Workers {
		id := ids.next(models.Worker{}.TableName())
		ds.Workers = append(ds.Workers, models.Worker{
			WorkerID:     id,
			WorkerName:   fmt.Sprintf("Worker_%d", id),
			MobileNumber: fmt.Sprintf("900000000%d", id),
			Skills:       pick(g.rng, workerSkills),
		})
	}
}

func (g *Generator) users(ds *models.Dataset, ids sequence) {
	table := models.User{}.TableName()
	add := func(username, role string, workerID, customerID *int) {
		ds.Users = append(ds.Users, models.User{
			UserID:       ids.next(table),
			Username:     username,
			PasswordHash: g.passwordHash,
			Role:         role,
			WorkerID:     workerID,
			CustomerID:   customerID,
		})
	}

	add("admin", models.RoleAdmin, nil, nil)
	add("owner", models.RoleOwner, nil, nil)
	for _, w := range ds.Workers {
		id := w.WorkerID
		add(fmt.Sprintf("worker%d", id), models.RoleWorker, &id, nil)
	}
	for i, c := range ds.Customers {
		if i >= g.profile.CustomerUsers {
			break
		}
		id := c.CustomerID
		add(fmt.Sprintf("customer%d", id), models.RoleCustomer, nil, &id)
	}
}

func (g *Generator) inventory(ds *models.Dataset, ids sequence) error {
	for range g.profile.Suppliers {
		id := ids.next(models.Supplier{}.TableName())
		ds.Suppliers = append(ds.Suppliers, models.Supplier{
			SupplierID:   id,
			SupplierName: fmt.Sprintf("Supplier_%d", id),
		})
	}

	markup := decimal.NewFromFloat(g.profile.Markup)
	for _, part := range partCatalog {
		cost, err := decimal.NewFromString(part.cost)
		if err != nil {
			return fmt.Errorf("invalid catalog price for %s: %w", part.name, err)
		}
		ds.Parts = append(ds.Parts, models.InventoryPart{
			PartID:              ids.next(models.InventoryPart{}.TableName()),
			PartName:            part.name,
			Unit:                part.unit,
			DefaultCostPrice:    cost,
			DefaultSellingPrice: cost.Mul(markup).Round(2),
			QuantityInStock:     g.profile.StockQuantity,
		})
	}
	return nil
}

func (g *Generator) jobs(ds *models.Dataset, ids sequence) error {
	adminID := ds.Users[0].UserID

	for range g.profile.Jobs {
		seq := ids.next(models.ServiceRequest{}.TableName())
		job, err := g.serviceRequest(ds, seq)
		if err != nil {
			return fmt.Errorf("failed to generate job %d: %w", seq, err)
		}
		ds.Jobs = append(ds.Jobs, job)

		status := Status(job.Status)
		if status.WorkStarted() {
			if err := g.workRows(ds, ids, job); err != nil {
				return fmt.Errorf("failed to generate work for %s: %w", job.JobNumber, err)
			}
		}
		if status.WindingEligible() && g.rng.Float64() < windingProbability {
			ds.Windings = append(ds.Windings, g.winding(ids, job))
		}
		if status.Terminal() {
			ds.Payments = append(ds.Payments, models.Payment{
				PaymentID:   ids.next(models.Payment{}.TableName()),
				JobNumber:   job.JobNumber,
				Amount:      job.EstimatedAmount,
				PaymentType: paymentTypeFinal,
				PaymentMode: pick(g.rng, paymentModes),
			})
		}

		ds.Documents = append(ds.Documents, models.Document{
			DocumentID:   ids.next(models.Document{}.TableName()),
			JobNumber:    job.JobNumber,
			CustomerID:   job.CustomerID,
			DocumentType: documentTypeQuote,
			EmbedTag:     "quote-" + uuid.NewString(),
			CreatedBy:    adminID,
		})
	}
	return nil
}

func (g *Generator) serviceRequest(ds *models.Dataset, seq int) (models.ServiceRequest, error) {
	status := pick(g.rng, Statuses)

	received, err := RandomDateBetween(g.rng, g.profile.Start, g.profile.End)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	estimated := received.Add(24 * time.Hour)
	var approved *time.Time
	if !status.ApprovalWithheld() {
		a := estimated.Add(24 * time.Hour)
		approved = &a
	}

	var reason, notes *string
	if status.Declined() {
		r, n := pick(g.rng, declinedReasons), declinedNotes
		reason, notes = &r, &n
		approved = nil
	}

	warranty := "No"
	if g.rng.Intn(2) == 0 {
		warranty = "Yes"
	}

	return models.ServiceRequest{
		JobNumber:       g.profile.JobNumber(seq),
		CustomerID:      pick(g.rng, ds.Customers).CustomerID,
		PumpBrand:       pick(g.rng, pumpBrands),
		PumpModel:       pick(g.rng, unitModels),
		MotorBrand:      pick(g.rng, motorBrands),
		MotorModel:      pick(g.rng, unitModels),
		HP:              decimal.RequireFromString(pick(g.rng, horsepowers)),
		Warranty:        warranty,
		DateReceived:    received,
		Status:          string(status),
		EstimationDate:  &estimated,
		ApprovalDate:    approved,
		DeclinedReason:  reason,
		DeclinedNotes:   notes,
		EstimatedAmount: decimal.NewFromInt(int64(between(g.rng, 1000, 10000))),
	}, nil
}

func (g *Generator) workRows(ds *models.Dataset, ids sequence, job models.ServiceRequest) error {
	from := *job.EstimationDate
	if job.ApprovalDate != nil {
		from = *job.ApprovalDate
	}
	start, err := RandomDateBetween(g.rng, from, from.Add(24*time.Hour))
	if err != nil {
		return err
	}
	ds.WorkLogs = append(ds.WorkLogs, models.WorkLog{
		WorkLogID: ids.next(models.WorkLog{}.TableName()),
		JobNumber: job.JobNumber,
		WorkerID:  pick(g.rng, ds.Workers).WorkerID,
		WorkDone:  pick(g.rng, workDescriptions),
		StartTime: start,
		EndTime:   start.Add(time.Duration(between(g.rng, 1, 8)) * time.Hour),
	})

	part := pick(g.rng, ds.Parts)
	ds.PartsUsed = append(ds.PartsUsed, models.PartUsed{
		PartUsedID: ids.next(models.PartUsed{}.TableName()),
		JobNumber:  job.JobNumber,
		PartName:   part.PartName,
		Unit:       part.Unit,
		Qty:        between(g.rng, 1, 3),
		CostPrice:  part.DefaultCostPrice,
	})
	return nil
}

func (g *Generator) winding(ids sequence, job models.ServiceRequest) models.WindingDetail {
	phase, connection := phaseSingle, connectionNone
	if g.rng.Intn(2) == 0 {
		phase, connection = phaseThree, pick(g.rng, []string{"STAR", "DELTA"})
	}
	return models.WindingDetail{
		ID:             ids.next(models.WindingDetail{}.TableName()),
		JobNumber:      job.JobNumber,
		HP:             job.HP,
		Phase:          phase,
		ConnectionType: connection,
		SWGRun:         between(g.rng, minWindingSWG, maxWindingSWG),
		TurnsRun:       between(g.rng, minWindingTurns, maxWindingTurns),
	}
}
