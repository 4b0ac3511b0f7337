// Package server is the HTTP surface: invoice uploads in, one combined XLSX
// workbook out. It owns the temporary file lifecycle for uploads; the core
// never touches upload handling.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/fotara-tools/invoice2excel/internal/common"
	"github.com/fotara-tools/invoice2excel/internal/export"
	"github.com/fotara-tools/invoice2excel/internal/pipeline"
)

type Server struct {
	cfg    *common.Config
	proc   *pipeline.Processor
	export *export.Service
	logger *slog.Logger
}

func New(cfg *common.Config, proc *pipeline.Processor, exportSvc *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, proc: proc, export: exportSvc, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = int64(s.cfg.Server.MaxUploadMB) << 20

	r.GET("/health", s.handleHealth)
	r.POST("/upload", s.handleUpload)
	return r
}
