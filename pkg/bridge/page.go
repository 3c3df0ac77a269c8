package bridge

import (
	"embed"
	"html/template"
	"net/http"

	apperrors "github.com/chainsafe/docsign-bridge/pkg/app/errors"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type fieldGroup struct {
	Field   string
	Label   string
	Value   string
	Actions []Action
}

type pageData struct {
	Groups     []fieldGroup
	Standalone []Action
	Status     *Status
	Alert      *Status
}

// fieldGroups pairs every input with the actions reading it
var fieldGroups = []fieldGroup{
	{
		Field:   "documentHash",
		Label:   "Document hash",
		Actions: []Action{ActionSign, ActionCheckAllSigned, ActionGetVoteCount},
	},
	{
		Field:   "newDocumentHash",
		Label:   "New document hash",
		Actions: []Action{ActionSetDocumentHash},
	},
	{
		Field:   "address",
		Label:   "Address",
		Actions: []Action{ActionAddToWhitelist, ActionRemoveFromWhitelist},
	},
}

// page renders the operator page with the current status region.
// Inputs are refilled from the query string written by the form redirect.
func (h *HTTP) page(w http.ResponseWriter, r *http.Request) error {
	current := currentStatus(h.ctrl.Board())

	query := r.URL.Query()
	groups := make([]fieldGroup, len(fieldGroups))
	for i, g := range fieldGroups {
		g.Value = query.Get(g.Field)
		groups[i] = g
	}

	data := pageData{
		Groups:     groups,
		Standalone: []Action{ActionListWhitelist},
		Status:     current.Status,
		Alert:      current.Alert,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		return apperrors.GeneralError(err)
	}
	return nil
}
