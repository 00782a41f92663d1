package board

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	aqm "github.com/appetiteclub/apt"
	"github.com/go-chi/chi/v5"
)

const MaxBodyBytes = 1 << 20 // 1 MB, a full menu save is small

// Handler handles HTTP requests for the menu board service.
type Handler struct {
	snapshots *SnapshotBuilder
	admin     *AdminFlow
	groups    GroupRepo
	slider    *Slideshow
	allowed   []string
	logger    aqm.Logger
	config    *aqm.Config
	now       func() time.Time
}

// NewHandler creates a new Handler for board operations. The admin allow
// list comes from config key admin.allowed.emails (comma separated); an
// empty list leaves admin routes open, which is the development default.
func NewHandler(snapshots *SnapshotBuilder, admin *AdminFlow, groups GroupRepo, slider *Slideshow, config *aqm.Config, logger aqm.Logger) *Handler {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	var allowed []string
	if config != nil {
		for _, e := range strings.Split(config.GetStringOrDef("admin.allowed.emails", ""), ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e != "" {
				allowed = append(allowed, e)
			}
		}
	}
	return &Handler{
		snapshots: snapshots,
		admin:     admin,
		groups:    groups,
		slider:    slider,
		allowed:   allowed,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// RegisterRoutes registers all routes for the board service.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/screens/{screenId}", h.GetScreen)
	r.Get("/api/themes", h.ListThemes)
	r.Get("/api/slider", h.ListSliderImages)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Get("/api/menu", h.GetMenu)
		r.Post("/api/menu", h.SaveMenu)
		r.Get("/api/groups", h.ListGroups)
		r.Post("/api/groups/{groupId}/theme", h.ApplyTheme)
	})
}

// GetScreen handles GET /api/screens/{screenId}. Responses are never
// cacheable: displays poll this endpoint and must see saves immediately.
func (h *Handler) GetScreen(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	screenID := chi.URLParam(r, "screenId")
	snapshot, err := h.snapshots.Build(ctx, screenID, MonthDayOf(h.now()))
	if err != nil {
		if errors.Is(err, ErrScreenNotFound) {
			aqm.RespondError(w, http.StatusNotFound, "Screen not found")
			return
		}
		log.Error("cannot build screen snapshot", "screen", screenID, "error", err)
		aqm.RespondError(w, http.StatusInternalServerError, "Could not load screen")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	json.NewEncoder(w).Encode(snapshot)
}

// ListThemes handles GET /api/themes.
func (h *Handler) ListThemes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"themes": ThemeRefs(),
	})
}

// ListSliderImages handles GET /api/slider.
func (h *Handler) ListSliderImages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"images": h.slider.List(),
	})
}

// GetMenu handles GET /api/menu.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	state, err := h.admin.ReadMenu(r.Context())
	if err != nil {
		log.Error("cannot read menu", "error", err)
		aqm.RespondError(w, http.StatusInternalServerError, "Could not load menu")
		return
	}
	h.respondMenu(w, state)
}

// SaveMenu handles POST /api/menu.
func (h *Handler) SaveMenu(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	payload, ok := h.decodeSavePayload(w, r, log)
	if !ok {
		return
	}

	if validationErrors := ValidateSaveMenu(payload.MenuSections); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	state, err := h.admin.SaveMenu(ctx, payload.MenuSections)
	if err != nil {
		log.Error("cannot save menu", "error", err)
		aqm.RespondError(w, http.StatusInternalServerError, "Could not save menu")
		return
	}

	log.Info("menu saved", "sections", len(payload.MenuSections))
	h.respondMenu(w, state)
}

// ListGroups handles GET /api/groups.
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)

	groups, err := h.groups.ListGroups(r.Context())
	if err != nil {
		log.Error("cannot list groups", "error", err)
		aqm.RespondError(w, http.StatusInternalServerError, "Could not load groups")
		return
	}
	if groups == nil {
		groups = []Group{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"groups": groups,
	})
}

// ApplyTheme handles POST /api/groups/{groupId}/theme.
func (h *Handler) ApplyTheme(w http.ResponseWriter, r *http.Request) {
	log := h.log(r)
	ctx := r.Context()

	groupID := chi.URLParam(r, "groupId")
	if groupID == "" {
		aqm.RespondError(w, http.StatusBadRequest, "Missing groupId parameter")
		return
	}

	payload, ok := h.decodeThemePayload(w, r, log)
	if !ok {
		return
	}

	if validationErrors := ValidateApplyTheme(payload.ThemeID); len(validationErrors) > 0 {
		log.Debug("validation failed", "errors", validationErrors)
		h.respondValidationErrors(w, validationErrors)
		return
	}

	group, err := h.admin.ApplyTheme(ctx, groupID, payload.ThemeID)
	if err != nil {
		log.Error("cannot apply theme", "group", groupID, "theme", payload.ThemeID, "error", err)
		aqm.RespondError(w, http.StatusInternalServerError, "Could not apply theme")
		return
	}

	log.Info("theme applied", "group", groupID, "theme", payload.ThemeID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"group": group,
	})
}

// Helper methods

func (h *Handler) log(r *http.Request) aqm.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

// requireAdmin gates mutating routes on the authenticated email the edge
// proxy forwards. No configured allow list means open access.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.allowed) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		email := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Auth-Email")))
		for _, a := range h.allowed {
			if a == email {
				next.ServeHTTP(w, r)
				return
			}
		}

		h.log(r).Debug("admin access denied", "email", email)
		aqm.RespondError(w, http.StatusForbidden, "Not authorized")
	})
}

type savePayload struct {
	MenuSections SaveMenuInput `json:"menuSections"`
}

type themePayload struct {
	ThemeID string `json:"themeId"`
}

func (h *Handler) decodeSavePayload(w http.ResponseWriter, r *http.Request, log aqm.Logger) (*savePayload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		aqm.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var payload savePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Debug("error decoding JSON", "error", err)
		aqm.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return &payload, true
}

func (h *Handler) decodeThemePayload(w http.ResponseWriter, r *http.Request, log aqm.Logger) (*themePayload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		aqm.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return nil, false
	}

	var payload themePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Debug("error decoding JSON", "error", err)
		aqm.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return nil, false
	}

	return &payload, true
}

func (h *Handler) respondMenu(w http.ResponseWriter, state MenuState) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"menuSections": state,
	})
}

func (h *Handler) respondValidationErrors(w http.ResponseWriter, errors []ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  "Validation failed",
		"errors": errors,
	})
}
