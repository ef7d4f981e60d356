package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/devfolio/portfolio-api/internal/models"
	"github.com/devfolio/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

const profileImageField = "profile_image"

type ProfileHandler struct {
	service       services.ProfileServiceInterface
	maxImageBytes int64
}

func NewProfileHandler(service services.ProfileServiceInterface, maxImageBytes int64) *ProfileHandler {
	return &ProfileHandler{service: service, maxImageBytes: maxImageBytes}
}

func (h *ProfileHandler) Show(c *gin.Context) {
	profile, err := h.service.Show(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, profile)
}

// Update accepts either a JSON body or a multipart form with an optional
// profile_image file.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req models.UpdateProfileRequest
	var image *models.ImageUpload

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Malformed form body", err)
			return
		}

		var err error
		image, err = h.readImage(c)
		if err != nil {
			if ve, ok := services.AsValidationError(err); ok {
				respondValidation(c, ve)
				return
			}
			respondError(c, http.StatusBadRequest, "Malformed form body", err)
			return
		}
	} else if !bindJSON(c, &req) {
		return
	}

	profile, err := h.service.Update(c.Request.Context(), &req, image)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Profile updated successfully", profile)
}

func (h *ProfileHandler) RemoveImage(c *gin.Context) {
	profile, err := h.service.RemoveImage(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Profile image removed successfully", profile)
}

// readImage returns the uploaded profile image, or nil when none was sent.
// The content type is sniffed from the bytes rather than trusted from the client.
func (h *ProfileHandler) readImage(c *gin.Context) (*models.ImageUpload, error) {
	header, err := c.FormFile(profileImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if h.maxImageBytes > 0 && header.Size > h.maxImageBytes {
		return nil, services.NewValidationError(profileImageField,
			fmt.Sprintf("The profile image must not be greater than %d kilobytes.", h.maxImageBytes/1024))
	}

	data, err := readFormFile(header)
	if err != nil {
		return nil, err
	}

	return &models.ImageUpload{
		Data:        data,
		ContentType: http.DetectContentType(data),
		Size:        int64(len(data)),
	}, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}
