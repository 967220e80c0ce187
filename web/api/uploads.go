package api

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// UploadImage handles POST /api/upload/image
func UploadImage(ctx rweb.Context) error {
	return handleUpload(ctx, "image/")
}

// UploadAudio handles POST /api/upload/audio
func UploadAudio(ctx rweb.Context) error {
	return handleUpload(ctx, "audio/")
}

// handleUpload stores a multipart file under a fresh uuid filename,
// keeping the original extension. Content type must match the prefix.
func handleUpload(ctx rweb.Context, typePrefix string) error {
	file, header, err := ctx.Request().GetFormFile("file")
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to read upload"), "upload")
		return writeError(ctx, http.StatusBadRequest, "no file uploaded")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, typePrefix) {
		return writeError(ctx, http.StatusBadRequest,
			"file must be of type "+strings.TrimSuffix(typePrefix, "/"))
	}

	ext := filepath.Ext(header.Filename)
	filename := uuid.NewString() + ext

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to create uploads dir"), "upload")
		return writeError(ctx, http.StatusInternalServerError, "failed to store file")
	}

	dst, err := os.Create(filepath.Join(cfg.UploadsDir, filename))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to create upload file"), "filename", filename)
		return writeError(ctx, http.StatusInternalServerError, "failed to store file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to write upload"), "filename", filename)
		return writeError(ctx, http.StatusInternalServerError, "failed to store file")
	}

	logger.Info("File uploaded", "filename", filename, "content_type", contentType)
	return writeSuccess(ctx, http.StatusOK, map[string]string{
		"filename": filename,
		"url":      "/api/uploads/" + filename,
	})
}

// GetUpload handles GET /api/uploads/:filename
func GetUpload(ctx rweb.Context) error {
	filename := filepath.Base(ctx.Request().Param("filename"))

	data, err := os.ReadFile(filepath.Join(cfg.UploadsDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return writeError(ctx, http.StatusNotFound, "file not found")
		}
		logger.LogErr(serr.Wrap(err, "failed to read upload"), "filename", filename)
		return writeError(ctx, http.StatusInternalServerError, "failed to read file")
	}

	if contentType := uploadContentType(filename); contentType != "" {
		ctx.Response().SetHeader("Content-Type", contentType)
	}
	ctx.Response().SetHeader("Cache-Control", "public, max-age=3600")

	return ctx.Bytes(data)
}

// uploadContentType returns the content type based on file extension
func uploadContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".webp":
		return "image/webp"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".ogg":
		return "audio/ogg"
	}
	return ""
}
