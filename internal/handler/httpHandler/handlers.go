package httpHandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/service/catalogService"
	"file-catalog/internal/store"

	"github.com/go-chi/chi/v5"
)

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formFile returns the optional "file" part of a multipart request. The
// caller closes the returned file when it is non-nil.
func formFile(r *http.Request) (catalogInfo.FileUpload, multipart.File, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return catalogInfo.FileUpload{}, nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	f, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return catalogInfo.FileUpload{}, nil, nil
	}
	if err != nil {
		return catalogInfo.FileUpload{}, nil, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return catalogInfo.FileUpload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, f, nil
}

func itemID(r *http.Request) string {
	return chi.URLParam(r, "itemID")
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	l, err := s.service.ListItems(r.Context(), store.Tab(r.URL.Query().Get("tab")))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	it, err := s.service.GetItem(r.Context(), itemID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

type addItemRequest struct {
	Name       string                 `json:"name"`
	Visibility catalogInfo.Visibility `json:"visibility"`
	Users      []string               `json:"users"`
	Filename   string                 `json:"filename"`
	Size       int64                  `json:"size"`
}

// handleAddItem accepts JSON metadata or a multipart form with name,
// visibility, users and an optional file part.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	in := catalogService.NewItem{}
	if isMultipart(r) {
		file, f, err := formFile(r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if f != nil {
			defer f.Close()
			in.Content = f
		}
		in.Name = r.FormValue("name")
		in.Visibility = catalogInfo.Visibility(r.FormValue("visibility"))
		in.Users = r.MultipartForm.Value["users"]
		in.File = file
	} else {
		var req addItemRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		in.Name = req.Name
		in.Visibility = req.Visibility
		in.Users = req.Users
		in.File = catalogInfo.FileUpload{Name: req.Filename, Size: req.Size}
	}

	it, err := s.service.AddItem(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteItem(r.Context(), itemID(r)); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenameItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	it, err := s.service.RenameItem(r.Context(), itemID(r), req.Name)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleSetVisibility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Visibility catalogInfo.Visibility `json:"visibility"`
		Users      []string               `json:"users"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	it, err := s.service.SetVisibility(r.Context(), itemID(r), req.Visibility, req.Users)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleSetSubscribed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Subscribed bool `json:"subscribed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	it, err := s.service.SetSubscribed(r.Context(), itemID(r), req.Subscribed)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleToggleSubscription(w http.ResponseWriter, r *http.Request) {
	it, err := s.service.ToggleSubscription(r.Context(), itemID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// handleDownload records the download and redirects to the distribution URL.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	it, err := s.service.RecordDownload(r.Context(), itemID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	http.Redirect(w, r, it.DistributionURL, http.StatusFound)
}

func (s *Server) handleAddVersion(w http.ResponseWriter, r *http.Request) {
	var (
		file    catalogInfo.FileUpload
		content io.Reader
	)
	if isMultipart(r) {
		upload, f, err := formFile(r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if f != nil {
			defer f.Close()
			content = f
		}
		file = upload
	} else if r.ContentLength != 0 {
		var req struct {
			Filename string `json:"filename"`
			Size     int64  `json:"size"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}
		file = catalogInfo.FileUpload{Name: req.Filename, Size: req.Size}
	}

	it, v, err := s.service.AddVersion(r.Context(), itemID(r), file, content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Item    catalogInfo.Item    `json:"item"`
		Version catalogInfo.Version `json:"version"`
	}{it, v})
}

func (s *Server) handleSetCurrentVersion(w http.ResponseWriter, r *http.Request) {
	it, err := s.service.SetCurrentVersion(r.Context(), itemID(r), chi.URLParam(r, "versionID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleDeleteVersion(w http.ResponseWriter, r *http.Request) {
	it, err := s.service.DeleteVersion(r.Context(), itemID(r), chi.URLParam(r, "versionID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleVersionContent(w http.ResponseWriter, r *http.Request) {
	rc, v, err := s.service.OpenVersion(r.Context(), itemID(r), chi.URLParam(r, "versionID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", v.Filename))
	_, _ = io.Copy(w, rc)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.service.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			respondError(w, r, fmt.Errorf("%w: limit must be a non-negative integer", errBadRequest))
			return
		}
		limit = n
	}
	ns, err := s.service.Notifications(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ns)
}

func (s *Server) handleUIState(w http.ResponseWriter, r *http.Request) {
	ui, err := s.service.UIState(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ui)
}

func (s *Server) handleSelectItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	ui, err := s.service.SelectItem(r.Context(), req.ItemID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ui)
}

func (s *Server) handleSetAddDialog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Open bool `json:"open"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	ui, err := s.service.SetAddDialogOpen(r.Context(), req.Open)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ui)
}

func (s *Server) handleSetAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Admin bool `json:"admin"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	ui, err := s.service.SetAdmin(r.Context(), req.Admin)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ui)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	if err := s.tokens.Revoke(r.Context(), token); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
