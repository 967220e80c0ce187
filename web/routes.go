package web

import (
	"pageforge/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server) {
	// Pages index and rendered previews - HTML responses
	s.Get("/", api.Home)
	s.Get("/preview/:id", api.Preview)
	s.Get("/health", api.HealthCheck)

	// Service banner
	s.Get("/api/", api.Banner)

	// Status checks
	s.Post("/api/status", api.CreateStatusCheck)
	s.Get("/api/status", api.ListStatusChecks)

	// Pages CRUD
	s.Post("/api/pages", api.CreatePage)
	s.Get("/api/pages", api.ListPages)
	s.Get("/api/pages/:id", api.GetPage)
	s.Put("/api/pages/:id", api.UpdatePage)
	s.Delete("/api/pages/:id", api.DeletePage)

	// Component operations on a page's array
	s.Post("/api/pages/:id/components", api.AddComponent)
	s.Put("/api/pages/:id/components/:component_id", api.UpdateComponent)
	s.Delete("/api/pages/:id/components/:component_id", api.DeleteComponent)

	// Export, embed, revisions
	s.Post("/api/pages/:id/export", api.ExportPage)
	s.Post("/api/pages/:id/embed-code", api.EmbedCode)
	s.Get("/api/pages/:id/revisions", api.ListRevisions)
	s.Get("/api/pages/:id/revisions/:from/diff/:to", api.DiffRevisions)

	// Publishing (authenticated)
	s.Post("/api/pages/:id/ftp-upload", api.FTPUpload)
	s.Post("/api/pages/:id/email", api.EmailPage)

	// Uploads
	s.Post("/api/upload/image", api.UploadImage)
	s.Post("/api/upload/audio", api.UploadAudio)
	s.Get("/api/uploads/:filename", api.GetUpload)

	// Sounds catalog and the slot-machine mini-game
	s.Get("/api/royalty-free-sounds", api.RoyaltyFreeSounds)
	s.Post("/api/slot/:machine_id/play", api.SlotPlay)

	// Auth
	s.Post("/api/auth/register", api.Register)
	s.Post("/api/auth/login", api.Login)
}
