package seed

// Status is a service request lifecycle state.
type Status string

const (
	StatusEstimationInProgress Status = "Estimation in Progress"
	StatusPendingApproval      Status = "Pending Approval"
	StatusApprovedByCustomer   Status = "Approved by Customer"
	StatusNotApproved          Status = "Not Approved"
	StatusReadyForReturn       Status = "Ready for Return"
	StatusWorkInProgress       Status = "Work In Progress"
	StatusWorkComplete         Status = "Work Complete"
	StatusDelivered            Status = "Delivered"
	StatusReturnedToCustomer   Status = "Returned to Customer"
	StatusClosed               Status = "Closed"
)

// Statuses is the closed set a job status is drawn from.
var Statuses = []Status{
	StatusEstimationInProgress,
	StatusPendingApproval,
	StatusApprovedByCustomer,
	StatusNotApproved,
	StatusReadyForReturn,
	StatusWorkInProgress,
	StatusWorkComplete,
	StatusDelivered,
	StatusReturnedToCustomer,
	StatusClosed,
}

type statusSet map[Status]struct{}

func newStatusSet(statuses ...Status) statusSet {
	s := make(statusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

func (s statusSet) has(st Status) bool {
	_, ok := s[st]
	return ok
}

// The subsets overlap on purpose; membership must stay exactly as listed.
var (
	approvalWithheld = newStatusSet(
		StatusEstimationInProgress,
		StatusPendingApproval,
		StatusNotApproved,
	)
	workStarted = newStatusSet(
		StatusWorkInProgress,
		StatusWorkComplete,
		StatusDelivered,
		StatusReturnedToCustomer,
		StatusClosed,
		StatusReadyForReturn,
	)
	windingEligible = newStatusSet(
		StatusWorkInProgress,
		StatusWorkComplete,
		StatusDelivered,
		StatusClosed,
		StatusReadyForReturn,
	)
	terminal = newStatusSet(
		StatusClosed,
		StatusDelivered,
		StatusReturnedToCustomer,
	)
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

// ApprovalWithheld reports whether a job in this status has no approval date.
func (s Status) ApprovalWithheld() bool { return approvalWithheld.has(s) }

// WorkStarted gates WorkLog and PartUsed rows.
func (s Status) WorkStarted() bool { return workStarted.has(s) }

// WindingEligible gates WindingDetail rows.
func (s Status) WindingEligible() bool { return windingEligible.has(s) }

// Terminal gates Payment rows.
func (s Status) Terminal() bool { return terminal.has(s) }

func (s Status) Declined() bool { return s == StatusNotApproved }
