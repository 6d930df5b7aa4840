package services

import (
	"net/http"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitRepeatVisitsAreRecordedSeparately(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	visits := NewVisitService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")

	_, err := visits.Create(VisitInput{Visitor: a.ID, TargetMember: b.ID})
	require.NoError(t, err)
	_, err = visits.Create(VisitInput{Visitor: a.ID, TargetMember: b.ID})
	require.NoError(t, err)

	list, err := visits.ListByVisitor(a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestVisitUnknownParty(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	visits := NewVisitService(db)
	a := mustSignup(t, members, "janedoe")

	_, err := visits.Create(VisitInput{Visitor: a.ID, TargetMember: 9999})
	var httpErr *models.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestVisitListOnlyByVisitor(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	visits := NewVisitService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")

	_, err := visits.Create(VisitInput{Visitor: a.ID, TargetMember: b.ID})
	require.NoError(t, err)
	_, err = visits.Create(VisitInput{Visitor: b.ID, TargetMember: a.ID})
	require.NoError(t, err)

	list, err := visits.ListByVisitor(a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].VisitorID)
}

func TestVisitDelete(t *testing.T) {
	db := openTestDB(t)
	members, _, _ := newTestMemberService(db)
	visits := NewVisitService(db)
	a := mustSignup(t, members, "janedoe")
	b := mustSignup(t, members, "johndoe")

	visit, err := visits.Create(VisitInput{Visitor: a.ID, TargetMember: b.ID})
	require.NoError(t, err)

	require.NoError(t, visits.Delete(visit.ID))

	err = visits.Delete(visit.ID)
	var httpErr *models.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}
