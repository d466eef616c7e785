package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "sertifikatku_backend/internals/features/certificates/model"
)

// Fallback teks lokal: "غير محدد" (tidak ditentukan).
const Unspecified = "غير محدد"

const defaultLang = "ar"

var validate = validator.New()

type saveRequired struct {
	RegistrationNumber string `validate:"required"`
	StudentName        string `validate:"required"`
}

// ValidateSave: presence check registrationNumber + studentName (syarat 400).
func ValidateSave(cert *m.CertificateModel) error {
	return validate.Struct(saveRequired{
		RegistrationNumber: cert.RegistrationNumber,
		StudentName:        cert.StudentName,
	})
}

// NormalizeCertificate menerima body mentah (loosely-typed) dan menghasilkan
// dokumen yang sudah disanitasi. Client boleh kirim shape flat ataupun nested:
// studentCategory/studentCenter dicari di top-level dulu, lalu di dalam
// payload certification, baru jatuh ke default.
func NormalizeCertificate(raw map[string]any) *m.CertificateModel {
	certification := asMap(raw["certification"])

	cert := &m.CertificateModel{
		ID:                 textOr(raw["id"], ""),
		RegistrationNumber: textOr(raw["registrationNumber"], ""),
		StudentName:        textOr(raw["studentName"], ""),
		StudentCategory:    resolveNested(raw, certification, "studentCategory"),
		StudentCenter:      resolveNested(raw, certification, "studentCenter"),
		SigName:            textOr(raw["sigName"], ""),
		Lang:               textOr(raw["lang"], defaultLang),
		Attendance:         numberOr(raw["attendance"], 0),
		Absence:            numberOr(raw["absence"], 0),
		Average:            numberOr(raw["average"], 0),
		Grades:             normalizeGrades(raw["grades"]),
		Certification:      certification,
	}

	if cert.ID == "" {
		cert.ID = uuid.NewString()
	}
	if img := textOr(raw["image"], ""); img != "" {
		cert.Image = &img
	}
	return cert
}

func resolveNested(raw, certification map[string]any, key string) string {
	if v := textOr(raw[key], ""); v != "" {
		return v
	}
	if v := textOr(certification[key], ""); v != "" {
		return v
	}
	return Unspecified
}

func normalizeGrades(v any) []m.GradeModel {
	arr, ok := v.([]any)
	if !ok {
		return []m.GradeModel{}
	}
	grades := make([]m.GradeModel, 0, len(arr))
	for _, el := range arr {
		entry, ok := el.(map[string]any)
		if !ok {
			continue
		}
		grades = append(grades, m.GradeModel{
			Subject: textOr(entry["subject"], ""),
			First:   numberOr(entry["first"], 0),
			Second:  numberOr(entry["second"], 0),
		})
	}
	return grades
}

func asMap(v any) map[string]any {
	if mp, ok := v.(map[string]any); ok {
		return mp
	}
	return map[string]any{}
}

func textOr(v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

func numberOr(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return fallback
}

/* =========================================================
   LIST RESPONSE — tanpa field image (hemat ukuran response)
   ========================================================= */

type CertificateListItem struct {
	ID                 string         `json:"id"`
	RegistrationNumber string         `json:"registrationNumber"`
	StudentName        string         `json:"studentName"`
	StudentCategory    string         `json:"studentCategory"`
	StudentCenter      string         `json:"studentCenter"`
	SigName            string         `json:"sigName"`
	Lang               string         `json:"lang"`
	Attendance         float64        `json:"attendance"`
	Absence            float64        `json:"absence"`
	Average            float64        `json:"average"`
	Grades             []m.GradeModel `json:"grades"`
	Certification      map[string]any `json:"certification"`
	SavedAt            time.Time      `json:"savedAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func ToListItems(certs []m.CertificateModel) []CertificateListItem {
	items := make([]CertificateListItem, 0, len(certs))
	for _, c := range certs {
		items = append(items, CertificateListItem{
			ID:                 c.ID,
			RegistrationNumber: c.RegistrationNumber,
			StudentName:        c.StudentName,
			StudentCategory:    c.StudentCategory,
			StudentCenter:      c.StudentCenter,
			SigName:            c.SigName,
			Lang:               c.Lang,
			Attendance:         c.Attendance,
			Absence:            c.Absence,
			Average:            c.Average,
			Grades:             c.Grades,
			Certification:      c.Certification,
			SavedAt:            c.SavedAt,
			UpdatedAt:          c.UpdatedAt,
		})
	}
	return items
}
