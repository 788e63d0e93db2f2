package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/models"
	"autocare/internal/services"
)

type stubLeadRepo struct {
	lead *models.Lead
}

func (r *stubLeadRepo) Create(lead *models.Lead) error {
	lead.ID = 1
	r.lead = lead
	return nil
}

func (r *stubLeadRepo) GetByID(id int) (*models.Lead, error) {
	if r.lead == nil || r.lead.ID != id {
		return nil, nil
	}
	cp := *r.lead
	return &cp, nil
}

func (r *stubLeadRepo) List(limit, offset int) ([]*models.Lead, error) {
	if r.lead == nil {
		return nil, nil
	}
	cp := *r.lead
	return []*models.Lead{&cp}, nil
}

func (r *stubLeadRepo) ListByStatus(status string, limit, offset int) ([]*models.Lead, error) {
	if r.lead == nil || r.lead.Status != status {
		return nil, nil
	}
	cp := *r.lead
	return []*models.Lead{&cp}, nil
}

func (r *stubLeadRepo) UpdateStatusRemark(id int, status, remark string) (*models.Lead, error) {
	if r.lead == nil || r.lead.ID != id {
		return nil, nil
	}
	r.lead.Status = status
	rv := remark
	r.lead.Remark = &rv
	cp := *r.lead
	return &cp, nil
}

func (r *stubLeadRepo) CountByStatus() (map[string]int, error) {
	out := map[string]int{}
	if r.lead != nil {
		out[r.lead.Status] = 1
	}
	return out, nil
}

func leadTestRouter(repo *stubLeadRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLeadHandler(services.NewLeadService(repo, nil))
	r := gin.New()
	r.POST("/leads/:id/status", h.UpdateStatus)
	r.POST("/leads/:id/move", h.Move)
	return r
}

func seededRepo() *stubLeadRepo {
	return &stubLeadRepo{lead: &models.Lead{ID: 1, Name: "Ravi", Phone: "9876543210", Status: "new"}}
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateStatusRequiresRemarkField(t *testing.T) {
	r := leadTestRouter(seededRepo())

	// remark omitted entirely: rejected
	w := postJSON(r, "/leads/1/status", `{"status":"contacted"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusEmptyRemarkAccepted(t *testing.T) {
	repo := seededRepo()
	r := leadTestRouter(repo)

	w := postJSON(r, "/leads/1/status", `{"status":"contacted","remark":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "contacted", repo.lead.Status)
	require.NotNil(t, repo.lead.Remark)
	assert.Equal(t, "", *repo.lead.Remark)
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	r := leadTestRouter(seededRepo())
	w := postJSON(r, "/leads/1/status", `{"status":"archived","remark":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusUnknownLead(t *testing.T) {
	r := leadTestRouter(&stubLeadRepo{})
	w := postJSON(r, "/leads/5/status", `{"status":"contacted","remark":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveStaleDropConflicts(t *testing.T) {
	repo := seededRepo()
	repo.lead.Status = "contacted" // card moved while the drag was in flight
	r := leadTestRouter(repo)

	w := postJSON(r, "/leads/1/move", `{"from_status":"new","to_status":"interested","remark":"Negotiate"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "contacted", repo.lead.Status)
}

func TestMoveApplies(t *testing.T) {
	repo := seededRepo()
	r := leadTestRouter(repo)

	w := postJSON(r, "/leads/1/move", `{"from_status":"new","to_status":"interested","remark":"Negotiate"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "interested", repo.lead.Status)
}
