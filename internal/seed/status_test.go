package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusSubsets(t *testing.T) {
	tests := []struct {
		status   Status
		withheld bool
		started  bool
		winding  bool
		terminal bool
		declined bool
	}{
		{StatusEstimationInProgress, true, false, false, false, false},
		{StatusPendingApproval, true, false, false, false, false},
		{StatusApprovedByCustomer, false, false, false, false, false},
		{StatusNotApproved, true, false, false, false, true},
		{StatusReadyForReturn, false, true, true, false, false},
		{StatusWorkInProgress, false, true, true, false, false},
		{StatusWorkComplete, false, true, true, false, false},
		{StatusDelivered, false, true, true, true, false},
		{StatusReturnedToCustomer, false, true, false, true, false},
		{StatusClosed, false, true, true, true, false},
	}
	assert.Len(t, tests, len(Statuses))

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.True(t, tt.status.Valid())
			assert.Equal(t, tt.withheld, tt.status.ApprovalWithheld(), "approval withheld")
			assert.Equal(t, tt.started, tt.status.WorkStarted(), "work started")
			assert.Equal(t, tt.winding, tt.status.WindingEligible(), "winding")
			assert.Equal(t, tt.terminal, tt.status.Terminal(), "terminal")
			assert.Equal(t, tt.declined, tt.status.Declined(), "declined")
		})
	}
}

func TestStatusValid_Unknown(t *testing.T) {
	assert.False(t, Status("Received").Valid())
	assert.False(t, Status("").Valid())
}
