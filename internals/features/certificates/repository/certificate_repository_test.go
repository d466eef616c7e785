package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"sertifikatku_backend/internals/databases/mongodb"
	"sertifikatku_backend/internals/features/certificates/dto"
)

// Manager yang belum pernah Start() = Disconnected; semua operasi harus
// gagal dengan ErrStoreUnavailable, bukan panic atau hang.
func TestRepositoryStoreUnavailable(t *testing.T) {
	repo := NewCertificateRepository(mongodb.NewManager("mongodb://127.0.0.1:1", "sertifikatku_test"))
	ctx := context.Background()

	cert := dto.NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
	})

	_, err := repo.Upsert(ctx, cert)
	assert.ErrorIs(t, err, mongodb.ErrStoreUnavailable)

	_, err = repo.ListAll(ctx)
	assert.ErrorIs(t, err, mongodb.ErrStoreUnavailable)

	_, err = repo.GetByID(ctx, "x")
	assert.ErrorIs(t, err, mongodb.ErrStoreUnavailable)

	_, err = repo.FindByRegistrationNumber(ctx, "R1")
	assert.ErrorIs(t, err, mongodb.ErrStoreUnavailable)

	err = repo.DeleteByID(ctx, "x")
	assert.ErrorIs(t, err, mongodb.ErrStoreUnavailable)
}
