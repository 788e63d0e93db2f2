package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/models"
)

type fakeLeadRepo struct {
	leads     map[int]*models.Lead
	nextID    int
	updateErr error
	updates   int
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[int]*models.Lead{}, nextID: 1}
}

func (r *fakeLeadRepo) Create(lead *models.Lead) error {
	lead.ID = r.nextID
	r.nextID++
	cp := *lead
	r.leads[lead.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) GetByID(id int) (*models.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) List(limit, offset int) ([]*models.Lead, error) {
	var out []*models.Lead
	for _, l := range r.leads {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeLeadRepo) ListByStatus(status string, limit, offset int) ([]*models.Lead, error) {
	var out []*models.Lead
	for _, l := range r.leads {
		if l.Status == status {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) UpdateStatusRemark(id int, status, remark string) (*models.Lead, error) {
	r.updates++
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	l.Status = status
	rv := remark
	l.Remark = &rv
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) CountByStatus() (map[string]int, error) {
	out := map[string]int{}
	for _, l := range r.leads {
		out[l.Status]++
	}
	return out, nil
}

func TestLeadCreateDefaults(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)

	lead := &models.Lead{Name: "Ravi", Phone: "9876543210", Status: "converted"}
	require.NoError(t, svc.Create(lead))

	// intake always starts at the top of the funnel
	assert.Equal(t, "new", lead.Status)
	assert.Equal(t, "Bhopal", lead.City)
	assert.Equal(t, "Website", lead.Source)
	assert.False(t, lead.CreatedAt.IsZero())
	assert.NotZero(t, lead.ID)
}

func TestLeadCreateValidation(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)

	assert.ErrorIs(t, svc.Create(&models.Lead{Phone: "9876543210"}), ErrMissingFields)
	assert.ErrorIs(t, svc.Create(&models.Lead{Name: "Ravi", Phone: "12345"}), ErrBadPhone)
	assert.ErrorIs(t, svc.Create(&models.Lead{Name: "Ravi", Phone: "98765abcde"}), ErrBadPhone)
	assert.Empty(t, repo.leads)
}

func TestLeadTransition(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)
	lead := &models.Lead{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.Create(lead))

	updated, err := svc.Transition(lead.ID, "contacted", "Follow up")
	require.NoError(t, err)
	assert.Equal(t, "contacted", updated.Status)
	require.NotNil(t, updated.Remark)
	assert.Equal(t, "Follow up", *updated.Remark)
}

func TestLeadTransitionEmptyRemarkAllowed(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)
	lead := &models.Lead{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.Create(lead))

	updated, err := svc.Transition(lead.ID, "lost", "")
	require.NoError(t, err)
	require.NotNil(t, updated.Remark)
	assert.Equal(t, "", *updated.Remark)
}

func TestLeadTransitionInvalidStatus(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)
	lead := &models.Lead{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.Create(lead))

	_, err := svc.Transition(lead.ID, "archived", "x")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Zero(t, repo.updates)
}

func TestLeadTransitionNotFound(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), nil)
	_, err := svc.Transition(99, "contacted", "x")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestLeadTransitionFailedWriteChangesNothing(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)
	lead := &models.Lead{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.Create(lead))

	repo.updateErr = errors.New("connection reset")
	_, err := svc.Transition(lead.ID, "contacted", "Follow up")
	require.Error(t, err)

	// the stored lead is untouched after a failed write
	stored, err := svc.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Status)
	assert.Nil(t, stored.Remark)
}

func TestLeadMove(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)
	lead := &models.Lead{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.Create(lead))

	updated, err := svc.Move(lead.ID, "new", "interested", "Negotiate")
	require.NoError(t, err)
	assert.Equal(t, "interested", updated.Status)
}

func TestLeadMoveStale(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)
	lead := &models.Lead{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.Create(lead))

	// someone moved the card to contacted while this drag was in flight
	_, err := svc.Transition(lead.ID, "contacted", "Follow up")
	require.NoError(t, err)

	_, err = svc.Move(lead.ID, "new", "interested", "Negotiate")
	assert.ErrorIs(t, err, ErrStaleMove)

	stored, err := svc.GetByID(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "contacted", stored.Status)
}

func TestLeadMoveSameColumnIsNoop(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, nil)
	lead := &models.Lead{Name: "Ravi", Phone: "9876543210"}
	require.NoError(t, svc.Create(lead))

	updates := repo.updates
	got, err := svc.Move(lead.ID, "new", "new", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Status)
	assert.Equal(t, updates, repo.updates)
}

type countingNotifier struct {
	calls int
	fail  bool
}

func (n *countingNotifier) NotifyNewLead(*models.Lead) error {
	n.calls++
	if n.fail {
		return errors.New("telegram unreachable")
	}
	return nil
}

func TestLeadCreateNotifies(t *testing.T) {
	notifier := &countingNotifier{}
	svc := NewLeadService(newFakeLeadRepo(), notifier)
	require.NoError(t, svc.Create(&models.Lead{Name: "Ravi", Phone: "9876543210"}))
	assert.Equal(t, 1, notifier.calls)
}

func TestLeadCreateNotifyFailureIsNotFatal(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, &countingNotifier{fail: true})
	require.NoError(t, svc.Create(&models.Lead{Name: "Ravi", Phone: "9876543210"}))
	assert.Len(t, repo.leads, 1)
}
