package bridge

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/docsign-bridge/pkg/app/errors"
	apphttp "github.com/chainsafe/docsign-bridge/pkg/app/http"
)

const maxBodySize = 1 << 20

// HTTP exposes the controller as operator endpoints
type HTTP struct {
	ctrl   *Controller
	logger *zap.Logger
}

// StatusResponse is the body of GET /status
type StatusResponse struct {
	Status *Status `json:"status"`
	Alert  *Status `json:"alert"`
}

// RegisterRoutes registers the operator page and action endpoints on the given chi router
func RegisterRoutes(r chi.Router, ctrl *Controller, logger *zap.Logger) {
	h := &HTTP{
		ctrl:   ctrl,
		logger: logger,
	}

	r.Get("/", apphttp.HandleError(h.page))
	r.Get("/status", apphttp.HandleError(h.status))
	r.Post("/actions/{action}", apphttp.HandleError(h.action))
}

// action runs one contract action from JSON or form-encoded fields
func (h *HTTP) action(w http.ResponseWriter, r *http.Request) error {
	name := chi.URLParam(r, "action")
	if !KnownAction(name) {
		return apperrors.ResourceNotFoundError(nil, "unknown action: "+name)
	}

	fields, isForm, err := readFields(r)
	if err != nil {
		return err
	}

	st, err := h.ctrl.Do(r.Context(), name, fields)
	if err != nil {
		if errors.Is(err, ErrUnknownAction) {
			return apperrors.ResourceNotFoundError(err, "unknown action: "+name)
		}
		return apperrors.GeneralError(err)
	}

	if isForm {
		http.Redirect(w, r, pageURL(fields), http.StatusSeeOther)
		return nil
	}

	h.writeJSON(w, http.StatusOK, st)
	return nil
}

// status returns the shared status region and the last alert
func (h *HTTP) status(w http.ResponseWriter, _ *http.Request) error {
	h.writeJSON(w, http.StatusOK, currentStatus(h.ctrl.Board()))
	return nil
}

func currentStatus(b *Board) StatusResponse {
	var resp StatusResponse
	if st, ok := b.Current(); ok {
		resp.Status = &st
	}
	if alert, ok := b.LastAlert(); ok {
		resp.Alert = &alert
	}
	return resp
}

func readFields(r *http.Request) (Fields, bool, error) {
	var fields Fields

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(maxBodySize)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return fields, true, apperrors.BadRequestError(err, "invalid form")
		}
		fields.DocumentHash = r.PostForm.Get("documentHash")
		fields.NewDocumentHash = r.PostForm.Get("newDocumentHash")
		fields.Address = r.PostForm.Get("address")
		return fields, true, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return fields, false, apperrors.BadRequestError(err, "failed to read request")
	}
	if len(body) == 0 {
		return fields, false, nil
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return fields, false, apperrors.BadRequestError(err, "invalid JSON")
	}
	return fields, false, nil
}

// pageURL points back at the page with the submitted fields in the query
func pageURL(fields Fields) string {
	q := url.Values{}
	if fields.DocumentHash != "" {
		q.Set("documentHash", fields.DocumentHash)
	}
	if fields.NewDocumentHash != "" {
		q.Set("newDocumentHash", fields.NewDocumentHash)
	}
	if fields.Address != "" {
		q.Set("address", fields.Address)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := apphttp.WriteJSON(w, status, data); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}
