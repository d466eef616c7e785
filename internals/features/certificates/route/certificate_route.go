package route

import (
	"github.com/gofiber/fiber/v2"

	certController "sertifikatku_backend/internals/features/certificates/controller"
	"sertifikatku_backend/internals/features/certificates/repository"
)

/*
Certificate routes: full CRUD, tanpa auth (API publik).
Mount contoh: CertificateRoutes(app.Group("/api"), repo)
*/
func CertificateRoutes(r fiber.Router, repo repository.CertificateRepository) {
	ctrl := certController.NewCertificateController(repo)

	certs := r.Group("/certificates")
	certs.Post("/save", ctrl.Save)                                // POST   /api/certificates/save
	certs.Get("/list", ctrl.List)                                 // GET    /api/certificates/list
	certs.Get("/image/:id", ctrl.GetImage)                        // GET    /api/certificates/image/:id
	certs.Get("/search/byRegNumber/:regNum", ctrl.SearchByRegNumber) // GET /api/certificates/search/byRegNumber/:regNum
	certs.Get("/:id", ctrl.GetByID)                               // GET    /api/certificates/:id
	certs.Delete("/:id", ctrl.Delete)                             // DELETE /api/certificates/:id
}
