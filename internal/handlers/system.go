package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
)

// InstallDatabase checks for database schema and installs it if missing
// @Summary Install Database Schema
// @Description Executes the consolidated SQL migration for PostgreSQL
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /system/install [post]
func (h *Handler) InstallDatabase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	schemaPath := filepath.Join("migrations", "postgres", "001_initial_schema.sql")
	if err := h.executePostgresSQL(ctx, schemaPath); err != nil {
		h.jsonResponse(w, http.StatusInternalServerError, map[string]interface{}{
			"status": "failed",
			"error":  true,
		})
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status": "completed",
		"error":  false,
	})
}

// executePostgresSQL reads a SQL file and executes it on Postgres
func (h *Handler) executePostgresSQL(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		h.logger.Errorw("failed to read schema file", "path", path, "error", err)
		return err
	}

	if _, err := h.pg.Exec(ctx, string(content)); err != nil {
		h.logger.Errorw("failed to execute schema", "error", err)
		return err
	}

	h.logger.Infow("successfully installed schema")
	return nil
}
