package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/models"
)

// GET /api/lexical-queries
func (d *Dashboard) ListLexicalQueries(c *gin.Context) {
	list, err := d.client(c).GetAllLexicalQueries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"queries": list})
}

// GET /api/lexical-queries/:name
func (d *Dashboard) GetLexicalQuery(c *gin.Context) {
	q, err := d.client(c).GetLexicalQuery(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/lexical-queries/validate
func (d *Dashboard) ValidateLexicalQuery(c *gin.Context) {
	var q models.LexicalQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		bindError(c, err)
		return
	}
	data, err := d.client(c).ValidateLexicalQuery(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "result": data})
}

// POST /api/lexical-queries
func (d *Dashboard) SaveLexicalQuery(c *gin.Context) {
	var q models.LexicalQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		bindError(c, err)
		return
	}
	data, err := d.client(c).SubmitLexicalQuery(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"query_name": q.QueryName, "result": data})
}

// DELETE /api/lexical-queries/:name
func (d *Dashboard) DeleteLexicalQuery(c *gin.Context) {
	data, err := d.client(c).DeleteLexicalQuery(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query_name": c.Param("name"), "result": data})
}

// POST /api/lexical-queries/hits
func (d *Dashboard) LexicalQueryHits(c *gin.Context) {
	var q models.LexicalQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		bindError(c, err)
		return
	}
	groups, err := d.client(c).GetLexicalQueryHits(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hits": groups})
}
