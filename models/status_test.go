package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequisitionStatusTransitions(t *testing.T) {
	t.Run(`draft can only move to pending`, func(t *testing.T) {
		require.True(t, RequisitionStatusDraft.IsAllowChange(RequisitionStatusPendingApproval))
		require.False(t, RequisitionStatusDraft.IsAllowChange(RequisitionStatusApproved))
		require.False(t, RequisitionStatusDraft.IsAllowChange(RequisitionStatusRejected))
	})
	t.Run(`pending resolves to approved or rejected`, func(t *testing.T) {
		require.True(t, RequisitionStatusPendingApproval.IsAllowChange(RequisitionStatusApproved))
		require.True(t, RequisitionStatusPendingApproval.IsAllowChange(RequisitionStatusRejected))
		require.False(t, RequisitionStatusPendingApproval.IsAllowChange(RequisitionStatusDraft))
	})
	t.Run(`final statuses are terminal`, func(t *testing.T) {
		for _, status := range []RequisitionStatus{RequisitionStatusApproved, RequisitionStatusRejected} {
			require.False(t, status.IsAllowChange(RequisitionStatusDraft))
			require.False(t, status.IsAllowChange(RequisitionStatusPendingApproval))
		}
	})
}

func TestJobStatusTransitions(t *testing.T) {
	t.Run(`open job can be held or closed`, func(t *testing.T) {
		require.True(t, JobStatusOpen.IsAllowChange(JobStatusHold))
		require.True(t, JobStatusOpen.IsAllowChange(JobStatusClosed))
	})
	t.Run(`closed job can be reopened`, func(t *testing.T) {
		require.True(t, JobStatusClosed.IsAllowChange(JobStatusOpen))
		require.False(t, JobStatusClosed.IsAllowChange(JobStatusHold))
	})
	t.Run(`hold resumes or closes`, func(t *testing.T) {
		require.True(t, JobStatusHold.IsAllowChange(JobStatusOpen))
		require.True(t, JobStatusHold.IsAllowChange(JobStatusClosed))
	})
}

func TestCandidateStatusTransitions(t *testing.T) {
	t.Run(`pipeline moves forward only`, func(t *testing.T) {
		require.True(t, CandidateStatusApplied.IsAllowChange(CandidateStatusShortlisted))
		require.True(t, CandidateStatusShortlisted.IsAllowChange(CandidateStatusInterviewed))
		require.True(t, CandidateStatusInterviewed.IsAllowChange(CandidateStatusOffered))
		require.True(t, CandidateStatusOffered.IsAllowChange(CandidateStatusHired))
	})
	t.Run(`no stage skipping`, func(t *testing.T) {
		require.False(t, CandidateStatusApplied.IsAllowChange(CandidateStatusInterviewed))
		require.False(t, CandidateStatusApplied.IsAllowChange(CandidateStatusHired))
		require.False(t, CandidateStatusShortlisted.IsAllowChange(CandidateStatusHired))
	})
	t.Run(`hired and rejected are terminal`, func(t *testing.T) {
		require.True(t, CandidateStatusHired.IsTerminal())
		require.True(t, CandidateStatusRejected.IsTerminal())
		require.False(t, CandidateStatusHired.IsAllowChange(CandidateStatusApplied))
		require.False(t, CandidateStatusRejected.IsAllowChange(CandidateStatusShortlisted))
	})
	t.Run(`hold resumes anywhere but applied and hired`, func(t *testing.T) {
		require.True(t, CandidateStatusHold.IsAllowChange(CandidateStatusShortlisted))
		require.True(t, CandidateStatusHold.IsAllowChange(CandidateStatusInterviewed))
		require.True(t, CandidateStatusHold.IsAllowChange(CandidateStatusOffered))
		require.True(t, CandidateStatusHold.IsAllowChange(CandidateStatusRejected))
		require.False(t, CandidateStatusHold.IsAllowChange(CandidateStatusApplied))
		require.False(t, CandidateStatusHold.IsAllowChange(CandidateStatusHired))
	})
	t.Run(`rejection is possible at any live stage`, func(t *testing.T) {
		for _, status := range []CandidateStatus{CandidateStatusApplied, CandidateStatusShortlisted, CandidateStatusInterviewed, CandidateStatusOffered} {
			require.True(t, status.IsAllowChange(CandidateStatusRejected), string(status))
		}
	})
}

func TestEmployeeStatusTransitions(t *testing.T) {
	t.Run(`active employee may resign or leave`, func(t *testing.T) {
		require.True(t, EmployeeStatusActive.IsAllowChange(EmployeeStatusServingNotice))
		require.True(t, EmployeeStatusActive.IsAllowChange(EmployeeStatusInactive))
	})
	t.Run(`withdrawn resignation returns to active`, func(t *testing.T) {
		require.True(t, EmployeeStatusServingNotice.IsAllowChange(EmployeeStatusActive))
		require.True(t, EmployeeStatusServingNotice.IsAllowChange(EmployeeStatusInactive))
	})
	t.Run(`inactive is terminal`, func(t *testing.T) {
		require.False(t, EmployeeStatusInactive.IsAllowChange(EmployeeStatusActive))
		require.False(t, EmployeeStatusInactive.IsAllowChange(EmployeeStatusServingNotice))
	})
	t.Run(`separating statuses require metadata`, func(t *testing.T) {
		require.True(t, EmployeeStatusServingNotice.IsSeparating())
		require.True(t, EmployeeStatusInactive.IsSeparating())
		require.False(t, EmployeeStatusActive.IsSeparating())
	})
}
