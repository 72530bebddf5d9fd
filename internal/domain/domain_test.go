package domain_test

import (
	"encoding/json"
	"testing"

	"go-hiring-pipeline/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNotifyFlagTruthiness(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`"true"`, true},
		{`false`, false},
		{`"false"`, false},
		{`"yes"`, false},
		{`"TRUE"`, false}, // case sensitive on purpose
		{`1`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			var input domain.InterviewInput
			err := json.Unmarshal([]byte(`{"candidate_id":1,"job_position":"Engineer","notify_manager":`+tc.raw+`}`), &input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, input.NotifyManager.Bool())
		})
	}

	t.Run("Should default to false when omitted", func(t *testing.T) {
		var input domain.InterviewInput
		err := json.Unmarshal([]byte(`{"candidate_id":1,"job_position":"Engineer"}`), &input)
		assert.NoError(t, err)
		assert.False(t, input.NotifyManager.Bool())
	})
}

func TestRoleCapabilities(t *testing.T) {
	t.Run("Should give candidates submission and resume rights only", func(t *testing.T) {
		assert.True(t, domain.RoleCandidate.Can(domain.CapSubmitCandidate))
		assert.True(t, domain.RoleCandidate.Can(domain.CapOwnResume))
		assert.False(t, domain.RoleCandidate.Can(domain.CapManagePipeline))
		assert.False(t, domain.RoleCandidate.Can(domain.CapManagePurchaseOrders))
	})

	t.Run("Should let recruiters submit and manage but not approve spend", func(t *testing.T) {
		assert.True(t, domain.RoleRecruiter.Can(domain.CapSubmitCandidate))
		assert.True(t, domain.RoleRecruiter.Can(domain.CapManagePipeline))
		assert.False(t, domain.RoleRecruiter.Can(domain.CapManagePurchaseOrders))
	})

	t.Run("Should give admins everything", func(t *testing.T) {
		for _, capability := range []domain.Capability{
			domain.CapSubmitCandidate, domain.CapManagePipeline, domain.CapManagePositions,
			domain.CapManagePurchaseOrders, domain.CapOwnResume,
		} {
			assert.True(t, domain.RoleAdmin.Can(capability))
		}
	})
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, domain.RoleHiringManager, domain.ParseRole("hiring_manager"))
	assert.Equal(t, domain.RoleAdmin, domain.ParseRole("admin"))

	t.Run("Should fall back to least privilege for unknown roles", func(t *testing.T) {
		assert.Equal(t, domain.RoleCandidate, domain.ParseRole("superuser"))
		assert.Equal(t, domain.RoleCandidate, domain.ParseRole(""))
	})
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, (&domain.Candidate{Status: domain.CandidateStatusHired}).IsTerminal())
	assert.True(t, (&domain.Candidate{Status: domain.CandidateStatusRejected}).IsTerminal())
	assert.False(t, (&domain.Candidate{Status: domain.CandidateStatusShortlisted}).IsTerminal())

	assert.True(t, (&domain.Application{Status: domain.ApplicationStatusHired}).IsTerminal())
	assert.False(t, (&domain.Application{Status: domain.ApplicationStatusOffer}).IsTerminal())
}
