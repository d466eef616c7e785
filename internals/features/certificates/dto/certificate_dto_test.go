package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sertifikatku_backend/internals/features/certificates/model"
)

func TestNormalizeCertificateDefaults(t *testing.T) {
	cert := NormalizeCertificate(map[string]any{
		"registrationNumber": " R100 ",
		"studentName":        "Ali",
	})

	assert.Equal(t, "R100", cert.RegistrationNumber)
	assert.Equal(t, "Ali", cert.StudentName)
	assert.Equal(t, Unspecified, cert.StudentCategory)
	assert.Equal(t, Unspecified, cert.StudentCenter)
	assert.Equal(t, "", cert.SigName)
	assert.Equal(t, "ar", cert.Lang)
	assert.Zero(t, cert.Attendance)
	assert.Zero(t, cert.Absence)
	assert.Zero(t, cert.Average)
	require.NotNil(t, cert.Grades)
	assert.Empty(t, cert.Grades)
	require.NotNil(t, cert.Certification)
	assert.Empty(t, cert.Certification)
	assert.Nil(t, cert.Image)

	// id di-generate kalau client tidak kirim
	_, err := uuid.Parse(cert.ID)
	assert.NoError(t, err)
}

func TestNormalizeCertificateKeepsCallerID(t *testing.T) {
	cert := NormalizeCertificate(map[string]any{
		"id":                 "  cert-7 ",
		"registrationNumber": "R1",
		"studentName":        "Sara",
	})
	assert.Equal(t, "cert-7", cert.ID)
}

func TestNormalizeGradesCoercion(t *testing.T) {
	cert := NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
		"grades": []any{
			map[string]any{"subject": " Math ", "first": "90", "second": nil},
			map[string]any{"subject": "Science", "first": 77.5, "second": "abc"},
		},
	})

	require.Len(t, cert.Grades, 2)
	assert.Equal(t, "Math", cert.Grades[0].Subject)
	assert.Equal(t, 90.0, cert.Grades[0].First)
	assert.Equal(t, 0.0, cert.Grades[0].Second)
	assert.Equal(t, 77.5, cert.Grades[1].First)
	assert.Equal(t, 0.0, cert.Grades[1].Second)
}

func TestNormalizeGradesNonArray(t *testing.T) {
	cert := NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
		"grades":             "bukan array",
	})
	require.NotNil(t, cert.Grades)
	assert.Empty(t, cert.Grades)
}

func TestCategoryCenterResolutionOrder(t *testing.T) {
	// top-level menang atas nested
	cert := NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
		"studentCategory":    "حفظ",
		"certification": map[string]any{
			"studentCategory": "تجويد",
			"studentCenter":   "مركز النور",
			"note":            "extra",
		},
	})
	assert.Equal(t, "حفظ", cert.StudentCategory)

	// top-level absen → ambil dari payload certification
	assert.Equal(t, "مركز النور", cert.StudentCenter)

	// payload certification tetap utuh
	assert.Equal(t, "تجويد", cert.Certification["studentCategory"])
	assert.Equal(t, "extra", cert.Certification["note"])
}

func TestNumberCoercion(t *testing.T) {
	cert := NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
		"attendance":         "12.5",
		"absence":            3,
		"average":            map[string]any{"weird": true},
	})
	assert.Equal(t, 12.5, cert.Attendance)
	assert.Equal(t, 3.0, cert.Absence)
	assert.Equal(t, 0.0, cert.Average)
}

func TestImageBlankBecomesNil(t *testing.T) {
	cert := NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
		"image":              "   ",
	})
	assert.Nil(t, cert.Image)

	cert = NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
		"image":              "aGVsbG8=",
	})
	require.NotNil(t, cert.Image)
	assert.Equal(t, "aGVsbG8=", *cert.Image)
}

func TestValidateSave(t *testing.T) {
	missing := NormalizeCertificate(map[string]any{"studentName": "Ali"})
	assert.Error(t, ValidateSave(missing))

	missing = NormalizeCertificate(map[string]any{"registrationNumber": "R1"})
	assert.Error(t, ValidateSave(missing))

	ok := NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
	})
	assert.NoError(t, ValidateSave(ok))
}

func TestToListItemsDropsImage(t *testing.T) {
	img := "aGVsbG8="
	cert := NormalizeCertificate(map[string]any{
		"registrationNumber": "R1",
		"studentName":        "Ali",
	})
	cert.Image = &img

	items := ToListItems([]m.CertificateModel{*cert})
	require.Len(t, items, 1)
	assert.Equal(t, cert.ID, items[0].ID)
}
