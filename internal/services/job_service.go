package services

import (
	"errors"
	"strings"

	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/seed"
	"github.com/shopspring/decimal"
)

var ErrJobNotFound = errors.New("service request not found")

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// JobService answers job queries from a seeded dataset, scoped to what the
// viewer's role may see.
type JobService struct {
	ds       *models.Dataset
	assigned map[int]map[string]bool
}

func NewJobService(ds *models.Dataset) *JobService {
	assigned := make(map[int]map[string]bool)
	for _, w := range ds.WorkLogs {
		if assigned[w.WorkerID] == nil {
			assigned[w.WorkerID] = make(map[string]bool)
		}
		assigned[w.WorkerID][w.JobNumber] = true
	}
	return &JobService{ds: ds, assigned: assigned}
}

func (s *JobService) visible(v Viewer, job *models.ServiceRequest) bool {
	switch v.Role {
	case models.RoleWorker:
		return v.WorkerID != nil && s.assigned[*v.WorkerID][job.JobNumber]
	case models.RoleCustomer:
		return v.CustomerID != nil && *v.CustomerID == job.CustomerID
	default:
		return v.Staff()
	}
}

func (s *JobService) customerName(id int) string {
	if c, ok := s.ds.Customer(id); ok {
		return c.CustomerName
	}
	return ""
}

// List filters by status and a case-insensitive search over job number,
// brands and customer name, then pages the newest jobs first.
func (s *JobService) List(v Viewer, q dto.JobQuery) dto.JobListResponse {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))

	var matched []*models.ServiceRequest
	for i := len(s.ds.Jobs) - 1; i >= 0; i-- {
		job := &s.ds.Jobs[i]
		if !s.visible(v, job) {
			continue
		}
		if q.Status != "" && job.Status != q.Status {
			continue
		}
		if search != "" && !s.matches(job, search) {
			continue
		}
		matched = append(matched, job)
	}

	resp := dto.JobListResponse{
		Data: []dto.JobSummary{},
		Pagination: dto.Pagination{
			TotalItems:   len(matched),
			TotalPages:   (len(matched) + limit - 1) / limit,
			CurrentPage:  page,
			ItemsPerPage: limit,
		},
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return resp
	}
	end := min(start+limit, len(matched))
	for _, job := range matched[start:end] {
		resp.Data = append(resp.Data, s.summary(v, job))
	}
	return resp
}

func (s *JobService) matches(job *models.ServiceRequest, search string) bool {
	for _, field := range []string{job.JobNumber, job.PumpBrand, job.MotorBrand, s.customerName(job.CustomerID)} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (s *JobService) summary(v Viewer, job *models.ServiceRequest) dto.JobSummary {
	sum := dto.JobSummary{
		JobNumber:    job.JobNumber,
		PumpBrand:    job.PumpBrand,
		PumpModel:    job.PumpModel,
		MotorBrand:   job.MotorBrand,
		MotorModel:   job.MotorModel,
		HP:           job.HP,
		DateReceived: job.DateReceived,
		Status:       job.Status,
	}
	if v.Role != models.RoleWorker {
		amount := job.EstimatedAmount
		sum.CustomerName = s.customerName(job.CustomerID)
		sum.EstimatedAmount = &amount
	}
	return sum
}

// Get returns a job with its dependent rows. Jobs the viewer may not see
// are reported as not found.
func (s *JobService) Get(v Viewer, jobNumber string) (*dto.JobDetail, error) {
	job, ok := s.ds.Job(jobNumber)
	if !ok || !s.visible(v, job) {
		return nil, ErrJobNotFound
	}

	detail := &dto.JobDetail{
		ServiceRequest: *job,
		Parts:          []models.PartUsed{},
		WorkLogs:       []models.WorkLog{},
		Payments:       []models.Payment{},
		Documents:      []models.Document{},
	}
	if v.Role != models.RoleWorker {
		amount := job.EstimatedAmount
		detail.EstimatedAmount = &amount
		if c, ok := s.ds.Customer(job.CustomerID); ok {
			detail.CustomerName = c.CustomerName
			detail.PrimaryContact = c.PrimaryContact
		}
	}
	for _, p := range s.ds.PartsUsed {
		if p.JobNumber == jobNumber {
			detail.Parts = append(detail.Parts, p)
		}
	}
	for _, w := range s.ds.WorkLogs {
		if w.JobNumber == jobNumber {
			detail.WorkLogs = append(detail.WorkLogs, w)
		}
	}
	for i := range s.ds.Windings {
		if s.ds.Windings[i].JobNumber == jobNumber {
			detail.Winding = &s.ds.Windings[i]
			break
		}
	}
	if v.Role != models.RoleWorker {
		for _, p := range s.ds.Payments {
			if p.JobNumber == jobNumber {
				detail.Payments = append(detail.Payments, p)
			}
		}
	}
	for _, d := range s.ds.Documents {
		if d.JobNumber == jobNumber {
			detail.Documents = append(detail.Documents, d)
		}
	}
	return detail, nil
}

// Stats counts visible jobs per status. Revenue is only reported to staff.
func (s *JobService) Stats(v Viewer) dto.DashboardStats {
	stats := dto.DashboardStats{ByStatus: make(map[string]int), Revenue: decimal.Zero}
	for i := range s.ds.Jobs {
		job := &s.ds.Jobs[i]
		if !s.visible(v, job) {
			continue
		}
		stats.TotalJobs++
		stats.ByStatus[job.Status]++
		status := seed.Status(job.Status)
		if status == seed.StatusPendingApproval {
			stats.PendingApproval++
		}
		if status.WorkStarted() && !status.Terminal() {
			stats.ActiveJobs++
		}
	}
	if v.Staff() {
		for _, p := range s.ds.Payments {
			stats.Revenue = stats.Revenue.Add(p.Amount)
		}
	}
	return stats
}
