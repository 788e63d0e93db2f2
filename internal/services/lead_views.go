package services

import "autocare/internal/models"

// The two pipeline presentations are projections over the same lead list.
// Counts are always derived from the list they render, never tracked
// separately, so they cannot drift from the source data.

type TableRow struct {
	Lead          *models.Lead `json:"lead"`
	StatusOptions []string     `json:"status_options"`
	Remarks       []string     `json:"remarks"`        // suggestions for the current status
	DefaultRemark string       `json:"default_remark"` // what the inline editor submits unchanged
}

type TableViewModel struct {
	Rows   []*TableRow    `json:"rows"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

type KanbanColumn struct {
	Status string         `json:"status"`
	Label  string         `json:"label"`
	Count  int            `json:"count"`
	Cards  []*models.Lead `json:"cards"`
}

type KanbanViewModel struct {
	Columns []*KanbanColumn `json:"columns"`
	Total   int             `json:"total"`
}

// DefaultRemark resolves what the table editor should submit when the
// operator picks a status without touching the remark selector: the lead's
// own remark when it has one, otherwise the first suggestion for the target
// status, otherwise empty.
func DefaultRemark(lead *models.Lead, status string) string {
	if lead.Remark != nil && *lead.Remark != "" {
		return *lead.Remark
	}
	return firstRemarkFor(status)
}

func TableView(leads []*models.Lead) *TableViewModel {
	vm := &TableViewModel{
		Rows:   make([]*TableRow, 0, len(leads)),
		Counts: countByStatus(leads),
		Total:  len(leads),
	}
	for _, l := range leads {
		vm.Rows = append(vm.Rows, &TableRow{
			Lead:          l,
			StatusOptions: append([]string(nil), LeadStatusOrder...),
			Remarks:       RemarksFor(l.Status),
			DefaultRemark: DefaultRemark(l, l.Status),
		})
	}
	return vm
}

func KanbanView(leads []*models.Lead) *KanbanViewModel {
	vm := &KanbanViewModel{Total: len(leads)}
	for _, status := range LeadStatusOrder {
		col := &KanbanColumn{
			Status: status,
			Label:  LeadStatusLabels[status],
			Cards:  []*models.Lead{},
		}
		for _, l := range leads {
			if l.Status == status {
				col.Cards = append(col.Cards, l)
			}
		}
		col.Count = len(col.Cards)
		vm.Columns = append(vm.Columns, col)
	}
	return vm
}

func countByStatus(leads []*models.Lead) map[string]int {
	counts := map[string]int{}
	for _, l := range leads {
		counts[l.Status]++
	}
	return counts
}
