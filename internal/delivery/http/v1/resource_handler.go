package v1

import (
	"net/http"

	"go-resume-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// resourceHandler exposes the CRUD operations of one entity.
type resourceHandler[E any, I any] struct {
	uc       domain.EntryUsecase[E, I]
	newInput func() I
}

// registerResource mounts the CRUD routes of an entity under group.
func registerResource[E any, I any](group *gin.RouterGroup, uc domain.EntryUsecase[E, I], newInput func() I) {
	h := &resourceHandler[E, I]{uc: uc, newInput: newInput}

	group.GET("", h.Find)
	group.GET("/count", h.Count)
	group.GET("/ids", h.IDs)
	group.GET("/:id", h.FindOne)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.PATCH("/:id", h.Patch)
	group.DELETE("/:id", h.Delete)
}

func (h *resourceHandler[E, I]) Find(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	items, err := h.uc.Find(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}
	if items == nil {
		items = []E{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *resourceHandler[E, I]) Count(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	n, err := h.uc.Count(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *resourceHandler[E, I]) IDs(c *gin.Context) {
	q, err := parseListQuery(c)
	if err != nil {
		c.Error(err)
		return
	}
	ids, err := h.uc.IDs(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, ids)
}

func (h *resourceHandler[E, I]) FindOne(c *gin.Context) {
	e, err := h.uc.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *resourceHandler[E, I]) Create(c *gin.Context) {
	in := h.newInput()
	if _, err := readObject(c, in); err != nil {
		c.Error(err)
		return
	}
	e, err := h.uc.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *resourceHandler[E, I]) Update(c *gin.Context) {
	in := h.newInput()
	if _, err := readObject(c, in); err != nil {
		c.Error(err)
		return
	}
	e, err := h.uc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *resourceHandler[E, I]) Patch(c *gin.Context) {
	in := h.newInput()
	if _, err := readObject(c, in); err != nil {
		c.Error(err)
		return
	}
	e, err := h.uc.Patch(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *resourceHandler[E, I]) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
