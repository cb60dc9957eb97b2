package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

type ResumeHandler struct {
	resumes  *services.ResumeService
	maxBytes int64
}

func NewResumeHandler(resumes *services.ResumeService, maxBytes int64) *ResumeHandler {
	return &ResumeHandler{resumes: resumes, maxBytes: maxBytes}
}

// Get returns the resume metadata, or a JSON null when none exists.
func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.resumes.Metadata(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) View(c *gin.Context) {
	resume, data, err := h.resumes.View(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	contentType := resume.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", resume.FileName))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, contentType, data)
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	// Bound the multipart parse before touching the body. Some slack beyond
	// the file cap covers the form framing.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+64<<10)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.Error(utils.ErrInvalidInput("File too large"))
			return
		}
		c.Error(utils.ErrInvalidInput("No file uploaded"))
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		c.Error(utils.ErrInvalidInput("File too large"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(utils.WrapAppError(http.StatusInternalServerError, "could not read upload", err))
		return
	}

	resume, err := h.resumes.Upload(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Resume uploaded successfully",
		"fileName": resume.FileName,
		"url":      resume.URL,
	})
}
