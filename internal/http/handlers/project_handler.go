package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/models"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

type ProjectCreateRequest struct {
	Title    string   `json:"title" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Problem  string   `json:"problem" binding:"required"`
	Solution string   `json:"solution" binding:"required"`
	Tech     []string `json:"tech" binding:"required,min=1"`
	Github   *string  `json:"github"`
	Demo     *string  `json:"demo"`
	Features []string `json:"features"`
	Featured bool     `json:"featured"`
	Image    *string  `json:"image"`
}

type ProjectUpdateRequest struct {
	Title    *string   `json:"title"`
	Category *string   `json:"category"`
	Problem  *string   `json:"problem"`
	Solution *string   `json:"solution"`
	Tech     *[]string `json:"tech"`
	Github   *string   `json:"github"`
	Demo     *string   `json:"demo"`
	Features *[]string `json:"features"`
	Featured *bool     `json:"featured"`
	Image    *string   `json:"image"`
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) List(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.ErrInvalidInput(err.Error()))
		return
	}

	features := req.Features
	if features == nil {
		features = []string{}
	}

	created, err := h.projects.Create(c.Request.Context(), &models.Project{
		Title:    req.Title,
		Category: req.Category,
		Problem:  req.Problem,
		Solution: req.Solution,
		Tech:     req.Tech,
		Github:   req.Github,
		Demo:     req.Demo,
		Features: features,
		Featured: req.Featured,
		Image:    req.Image,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update merges the supplied fields into the existing record; absent fields
// keep their stored values.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.ErrInvalidInput(err.Error()))
		return
	}

	project, err := h.projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Problem != nil {
		project.Problem = *req.Problem
	}
	if req.Solution != nil {
		project.Solution = *req.Solution
	}
	if req.Tech != nil {
		project.Tech = *req.Tech
	}
	if req.Github != nil {
		project.Github = req.Github
	}
	if req.Demo != nil {
		project.Demo = req.Demo
	}
	if req.Features != nil {
		project.Features = *req.Features
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Image != nil {
		project.Image = req.Image
	}

	updated, err := h.projects.Update(c.Request.Context(), project)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project removed"})
}
