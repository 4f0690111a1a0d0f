package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ragunandhant/photo-overlay/internal/entity"
)

type overlayRequest struct {
	Text              string `form:"text"`
	Offset            int    `form:"offset,default=100" binding:"min=0"`
	FontSize          int    `form:"font_size,default=40" binding:"min=1,max=500"`
	FontColor         string `form:"font_color,default=#FFFFFF"`
	Background        bool   `form:"background,default=true"`
	BackgroundColor   string `form:"background_color,default=#000000"`
	BackgroundOpacity int    `form:"background_opacity,default=50" binding:"min=0,max=100"`
	BackgroundPadding int    `form:"background_padding,default=10" binding:"min=0,max=200"`
}

func (r overlayRequest) style() entity.OverlayStyle {
	return entity.OverlayStyle{
		OffsetFromBottom:  r.Offset,
		FontSize:          r.FontSize,
		FontColor:         r.FontColor,
		Background:        r.Background,
		BackgroundColor:   r.BackgroundColor,
		BackgroundOpacity: r.BackgroundOpacity,
		BackgroundPadding: r.BackgroundPadding,
	}
}

func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req overlayRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Malformed colors are caught here so the whole request fails fast
	// instead of failing every single image downstream.
	if _, err := entity.ParseHexColor(req.FontColor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Background {
		if _, err := entity.ParseHexColor(req.BackgroundColor); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrEmptyBatch.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrEmptyBatch.Error()})
		return
	}
	if len(files) > h.maxFiles {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%d images uploaded, please upload no more than %d at once", len(files), h.maxFiles),
		})
		return
	}

	uploads := make([]entity.Upload, 0, len(files))
	for _, fh := range files {
		if !isValidImageType(filepath.Ext(fh.Filename)) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("%s: %s, supported: png, jpg, jpeg", fh.Filename, entity.ErrUnsupportedType),
			})
			return
		}
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", fh.Filename, err.Error())})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", fh.Filename, err.Error())})
			return
		}
		uploads = append(uploads, entity.Upload{Name: fh.Filename, Data: data})
	}

	batch, err := h.service.ProcessBatch(uploads, req.Text, req.style())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrEmptyBatch) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entity.BatchResponse{
		ID:        batch.ID,
		Processed: batch.Processed(),
		Failed:    batch.Failed(),
		Results:   batch.Results,
	})
}

func (h *BatchHandler) GetBatch(c *gin.Context) {
	batch, err := h.service.GetBatch(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entity.BatchResponse{
		ID:        batch.ID,
		Processed: batch.Processed(),
		Failed:    batch.Failed(),
		Results:   batch.Results,
	})
}

func (h *BatchHandler) DownloadArchive(c *gin.Context) {
	data, err := h.service.GetArchive(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="processed_images.zip"`)
	c.Data(http.StatusOK, "application/zip", data)
}

func (h *BatchHandler) DownloadImage(c *gin.Context) {
	name := c.Param("name")
	data, err := h.service.GetImage(c.Param("id"), name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "image/png", data)
}

func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	if err := h.service.DeleteBatch(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Batch deleted successfully"})
}

func isValidImageType(ext string) bool {
	validTypes := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
	return validTypes[strings.ToLower(ext)]
}
