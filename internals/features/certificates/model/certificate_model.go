package model

import "time"

type GradeModel struct {
	Subject string  `bson:"subject" json:"subject"`
	First   float64 `bson:"first" json:"first"`
	Second  float64 `bson:"second" json:"second"`
}

// CertificateModel merepresentasikan 1 dokumen sertifikat (collection: certificates).
// _id dipakai sebagai business key: dikirim client atau di-generate server.
// Certification = extension bag schema-less, disimpan apa adanya.
type CertificateModel struct {
	ID                 string         `bson:"_id" json:"id"`
	RegistrationNumber string         `bson:"registrationNumber" json:"registrationNumber"`
	StudentName        string         `bson:"studentName" json:"studentName"`
	StudentCategory    string         `bson:"studentCategory" json:"studentCategory"`
	StudentCenter      string         `bson:"studentCenter" json:"studentCenter"`
	SigName            string         `bson:"sigName" json:"sigName"`
	Lang               string         `bson:"lang" json:"lang"`
	Attendance         float64        `bson:"attendance" json:"attendance"`
	Absence            float64        `bson:"absence" json:"absence"`
	Average            float64        `bson:"average" json:"average"`
	Grades             []GradeModel   `bson:"grades" json:"grades"`
	Certification      map[string]any `bson:"certification" json:"certification"`
	Image              *string        `bson:"image" json:"image"`
	SavedAt            time.Time      `bson:"savedAt" json:"savedAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}

func (CertificateModel) CollectionName() string {
	return "certificates"
}
