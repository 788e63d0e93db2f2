package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocare/internal/models"
)

func TestIsLeadStatus(t *testing.T) {
	for _, s := range LeadStatusOrder {
		assert.True(t, IsLeadStatus(s), s)
	}
	assert.False(t, IsLeadStatus("New"))
	assert.False(t, IsLeadStatus("archived"))
	assert.False(t, IsLeadStatus(""))
}

func TestRemarksForEveryStage(t *testing.T) {
	for _, s := range LeadStatusOrder {
		remarks := RemarksFor(s)
		require.NotEmpty(t, remarks, s)
	}
	assert.Empty(t, RemarksFor("archived"))
}

func TestRemarksForReturnsCopy(t *testing.T) {
	first := RemarksFor("new")
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", RemarksFor("new")[0])
}

func TestDefaultRemark(t *testing.T) {
	own := "Customer asked to call back"
	lead := &models.Lead{Status: "contacted", Remark: &own}
	assert.Equal(t, own, DefaultRemark(lead, "interested"))

	empty := ""
	lead = &models.Lead{Status: "contacted", Remark: &empty}
	assert.Equal(t, "Negotiate", DefaultRemark(lead, "interested"))

	lead = &models.Lead{Status: "new"}
	assert.Equal(t, "Follow up", DefaultRemark(lead, "contacted"))
}

func TestKanbanViewColumns(t *testing.T) {
	leads := []*models.Lead{
		{ID: 1, Status: "new"},
		{ID: 2, Status: "new"},
		{ID: 3, Status: "converted"},
	}
	vm := KanbanView(leads)
	require.Len(t, vm.Columns, len(LeadStatusOrder))
	assert.Equal(t, 3, vm.Total)

	byStatus := map[string]*KanbanColumn{}
	for _, col := range vm.Columns {
		byStatus[col.Status] = col
		// count always mirrors the cards actually in the column
		assert.Equal(t, len(col.Cards), col.Count, col.Status)
	}
	assert.Equal(t, 2, byStatus["new"].Count)
	assert.Equal(t, 1, byStatus["converted"].Count)
	assert.Equal(t, 0, byStatus["lost"].Count)
	assert.Equal(t, "Lost", byStatus["lost"].Label)
}

func TestTableViewRows(t *testing.T) {
	leads := []*models.Lead{
		{ID: 1, Status: "new"},
		{ID: 2, Status: "interested"},
	}
	vm := TableView(leads)
	require.Len(t, vm.Rows, 2)
	assert.Equal(t, 2, vm.Total)
	assert.Equal(t, map[string]int{"new": 1, "interested": 1}, vm.Counts)

	row := vm.Rows[0]
	assert.Equal(t, LeadStatusOrder, row.StatusOptions)
	assert.Equal(t, RemarksFor("new"), row.Remarks)
	assert.Equal(t, "Need to contact", row.DefaultRemark)
}
