package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"fusion-site/internal/status"

	"github.com/pocketbase/pocketbase/core"
)

// Images maps the public image type to its file in the asset directory.
var Images = map[string]string{
	"workshop":   "nsfepp_workshop_training_session.png",
	"facility":   "fusion_research_facility_interior.png",
	"conference": "scientific_conference_presentation_hall.png",
	"lab":        "plasma_physics_laboratory_training.png",
	"hero":       "plasma_fusion_reactor_visualization.png",
}

type ImageTracker interface {
	TrackImage(imageType string, status int)
}

type ImageHandler struct {
	assets  fs.FS
	tracker ImageTracker
}

func NewImageHandler(assetsDir string, tracker ImageTracker) *ImageHandler {
	return NewImageHandlerFS(os.DirFS(assetsDir), tracker)
}

func NewImageHandlerFS(assets fs.FS, tracker ImageTracker) *ImageHandler {
	return &ImageHandler{assets: assets, tracker: tracker}
}

// Resolve returns the asset file name for imageType.
func (h *ImageHandler) Resolve(imageType string) (string, error) {
	name, ok := Images[imageType]
	if !ok {
		return "", status.ErrImageNotFound
	}
	if _, err := fs.Stat(h.assets, name); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", status.ErrImageFileMissing
		}
		return "", err
	}
	return name, nil
}

// GetImage - GET /api/images/{type}
func (h *ImageHandler) GetImage(e *core.RequestEvent) error {
	imageType := e.Request.PathValue("type")

	name, err := h.Resolve(imageType)
	switch {
	case errors.Is(err, status.ErrImageNotFound):
		h.track("unknown", http.StatusNotFound)
		return e.JSON(http.StatusNotFound, errorBody("Image not found"))
	case errors.Is(err, status.ErrImageFileMissing):
		slog.Warn("image file missing", "type", imageType, "file", Images[imageType])
		h.track(imageType, http.StatusNotFound)
		return e.JSON(http.StatusNotFound, errorBody("Image file not found"))
	case err != nil:
		slog.Error("stat image", "type", imageType, "error", err)
		h.track(imageType, http.StatusInternalServerError)
		return e.JSON(http.StatusInternalServerError, errorBody("Failed to fetch image"))
	}

	h.track(imageType, http.StatusOK)
	return e.FileFS(h.assets, name)
}

func (h *ImageHandler) track(imageType string, code int) {
	if h.tracker != nil {
		h.tracker.TrackImage(imageType, code)
	}
}
