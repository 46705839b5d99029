package payload

import "votehall/internal/core"

type NomineeRequest struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	Category    string `form:"category" json:"category"`
}

func (n NomineeRequest) ToDraft() core.NomineeDraft {
	return core.NomineeDraft{
		Name:        n.Name,
		Description: n.Description,
		Category:    n.Category,
	}
}
