package controller

import (
	"encoding/base64"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sertifikatku_backend/internals/databases/mongodb"
	"sertifikatku_backend/internals/features/certificates/dto"
	"sertifikatku_backend/internals/features/certificates/repository"
	helper "sertifikatku_backend/internals/helpers"
)

const defaultImageMime = "image/png"

type CertificateController struct {
	Repo repository.CertificateRepository
}

func NewCertificateController(repo repository.CertificateRepository) *CertificateController {
	return &CertificateController{Repo: repo}
}

// POST /api/certificates/save — upsert by id (create atau full overwrite).
func (ctrl *CertificateController) Save(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}

	cert := dto.NormalizeCertificate(raw)
	if err := dto.ValidateSave(cert); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "registrationNumber dan studentName wajib diisi")
	}

	saved, err := ctrl.Repo.Upsert(c.Context(), cert)
	if err != nil {
		return ctrl.storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"id":          saved.ID,
		"certificate": saved,
	})
}

// GET /api/certificates/list — semua sertifikat tanpa image, terbaru dulu.
func (ctrl *CertificateController) List(c *fiber.Ctx) error {
	certs, err := ctrl.Repo.ListAll(c.Context())
	if err != nil {
		return ctrl.storeError(c, err)
	}
	return c.JSON(dto.ToListItems(certs))
}

// GET /api/certificates/:id
func (ctrl *CertificateController) GetByID(c *fiber.Ctx) error {
	cert, err := ctrl.Repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return ctrl.storeError(c, err)
	}
	return c.JSON(cert)
}

// GET /api/certificates/image/:id — decode base64 jadi bytes mentah.
func (ctrl *CertificateController) GetImage(c *fiber.Ctx) error {
	cert, err := ctrl.Repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return ctrl.storeError(c, err)
	}
	if cert.Image == nil || strings.TrimSpace(*cert.Image) == "" {
		return helper.JsonError(c, http.StatusNotFound, "Sertifikat tidak punya gambar")
	}

	mime, payload := splitDataURI(strings.TrimSpace(*cert.Image))
	raw, err := decodeBase64(payload)
	if err != nil {
		log.Printf("[ERROR] decode image gagal (id=%s): %v", cert.ID, err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gambar rusak")
	}

	c.Set(fiber.HeaderContentType, mime)
	return c.Send(raw)
}

// GET /api/certificates/search/byRegNumber/:regNum
func (ctrl *CertificateController) SearchByRegNumber(c *fiber.Ctx) error {
	cert, err := ctrl.Repo.FindByRegistrationNumber(c.Context(), c.Params("regNum"))
	if err != nil {
		return ctrl.storeError(c, err)
	}
	return c.JSON(cert)
}

// DELETE /api/certificates/:id
func (ctrl *CertificateController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Repo.DeleteByID(c.Context(), c.Params("id")); err != nil {
		return ctrl.storeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// storeError memetakan error repository ke status HTTP.
// Detail error store cuma di-log server-side, tidak bocor ke client.
func (ctrl *CertificateController) storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return helper.JsonError(c, http.StatusNotFound, "Sertifikat tidak ditemukan")
	case errors.Is(err, mongodb.ErrStoreUnavailable):
		log.Printf("[ERROR] %s %s: store unavailable", c.Method(), c.Path())
		return helper.JsonError(c, http.StatusInternalServerError, "Database belum siap")
	default:
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		return helper.JsonError(c, http.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

// splitDataURI memisahkan "data:<mime>;base64,<payload>" jadi (mime, payload).
// String base64 polos (tanpa prefix) dianggap image/png.
func splitDataURI(s string) (mime, payload string) {
	if strings.HasPrefix(s, "data:") {
		if idx := strings.Index(s, ","); idx >= 0 {
			meta := s[len("data:"):idx]
			payload = s[idx+1:]
			mime = strings.TrimSuffix(meta, ";base64")
			if mime == "" {
				mime = defaultImageMime
			}
			return mime, payload
		}
	}
	return defaultImageMime, s
}

func decodeBase64(payload string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return raw, nil
	}
	// toleransi payload tanpa padding
	return base64.RawStdEncoding.DecodeString(payload)
}
