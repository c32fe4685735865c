package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/insights-dashboard/upload"
)

const defaultIDColumn = "interaction_id"

type pasteReq struct {
	Column string `json:"column"`
	Text   string `json:"text"`
}

type saveListReq struct {
	Name   string   `json:"name"`
	Column string   `json:"column"`
	Values []string `json:"values"`
}

func idColumn(col string) string {
	if strings.TrimSpace(col) == "" {
		return defaultIDColumn
	}
	return col
}

// POST /api/id-lists/upload (multipart: file, column, name tuỳ chọn)
func (d *Dashboard) UploadIDList(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}
	defer f.Close()

	loader := upload.NewLoader(idColumn(c.PostForm("column")), d.client(c))
	n, err := loader.UploadCSV(f, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	if name := c.PostForm("name"); name != "" {
		if err := loader.Save(c.Request.Context(), name); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"filter": loader.Filter(), "notification": n})
}

// POST /api/id-lists/paste
func (d *Dashboard) PasteIDList(c *gin.Context) {
	var req pasteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	loader := upload.NewLoader(idColumn(req.Column), d.client(c))
	n := loader.Paste(req.Text)
	c.JSON(http.StatusOK, gin.H{"filter": loader.Filter(), "notification": n})
}

// GET /api/id-lists/:name?column=
func (d *Dashboard) LoadIDList(c *gin.Context) {
	loader := upload.NewLoader(idColumn(c.Query("column")), d.client(c))
	n, err := loader.Load(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"filter": loader.Filter(), "notification": n})
}

// POST /api/id-lists
func (d *Dashboard) SaveIDList(c *gin.Context) {
	var req saveListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, upload.ErrNameRequired)
		return
	}
	if err := d.client(c).SaveNamedValues(c.Request.Context(), req.Name, req.Values); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name, "filter": upload.NewFilter(idColumn(req.Column), req.Values)})
}

// DELETE /api/id-lists?column=
// Bỏ danh sách đang dùng; trả notification rỗng để trang cha gỡ bộ lọc.
func (d *Dashboard) ClearIDList(c *gin.Context) {
	loader := upload.NewLoader(idColumn(c.Query("column")), d.client(c))
	c.JSON(http.StatusOK, gin.H{"filter": loader.Filter(), "notification": loader.Clear()})
}
