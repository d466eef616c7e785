package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sertifikatku_backend/internals/databases/mongodb"
	m "sertifikatku_backend/internals/features/certificates/model"
)

// ErrNotFound: tidak ada dokumen yang cocok.
var ErrNotFound = errors.New("certificate: not found")

type CertificateRepository interface {
	Upsert(ctx context.Context, cert *m.CertificateModel) (*m.CertificateModel, error)
	ListAll(ctx context.Context) ([]m.CertificateModel, error)
	GetByID(ctx context.Context, id string) (*m.CertificateModel, error)
	FindByRegistrationNumber(ctx context.Context, regNum string) (*m.CertificateModel, error)
	DeleteByID(ctx context.Context, id string) error
}

type MongoCertificateRepository struct {
	Mongo *mongodb.Manager
}

func NewCertificateRepository(mgr *mongodb.Manager) *MongoCertificateRepository {
	return &MongoCertificateRepository{Mongo: mgr}
}

func (r *MongoCertificateRepository) collection() (*mongo.Collection, error) {
	return r.Mongo.Collection(m.CertificateModel{}.CollectionName())
}

// Upsert: insert-or-replace by _id dalam 1 operasi atomik.
// $setOnInsert menjaga savedAt tetap waktu create; updatedAt selalu di-bump.
func (r *MongoCertificateRepository) Upsert(ctx context.Context, cert *m.CertificateModel) (*m.CertificateModel, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"registrationNumber": cert.RegistrationNumber,
			"studentName":        cert.StudentName,
			"studentCategory":    cert.StudentCategory,
			"studentCenter":      cert.StudentCenter,
			"sigName":            cert.SigName,
			"lang":               cert.Lang,
			"attendance":         cert.Attendance,
			"absence":            cert.Absence,
			"average":            cert.Average,
			"grades":             cert.Grades,
			"certification":      cert.Certification,
			"image":              cert.Image,
			"updatedAt":          now,
		},
		"$setOnInsert": bson.M{
			"savedAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var saved m.CertificateModel
	if err := coll.FindOneAndUpdate(ctx, bson.M{"_id": cert.ID}, update, opts).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListAll: semua dokumen, terbaru dulu (updatedAt desc), field image di-exclude.
func (r *MongoCertificateRepository) ListAll(ctx context.Context) ([]m.CertificateModel, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetProjection(bson.M{"image": 0}).
		SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	certs := make([]m.CertificateModel, 0)
	if err := cur.All(ctx, &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *MongoCertificateRepository) GetByID(ctx context.Context, id string) (*m.CertificateModel, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var cert m.CertificateModel
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&cert); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

// FindByRegistrationNumber: registrationNumber tidak unik; ambil 1 dokumen
// apa adanya mengikuti natural order store (tanpa jaminan tie-break).
func (r *MongoCertificateRepository) FindByRegistrationNumber(ctx context.Context, regNum string) (*m.CertificateModel, error) {
	coll, err := r.collection()
	if err != nil {
		return nil, err
	}

	var cert m.CertificateModel
	if err := coll.FindOne(ctx, bson.M{"registrationNumber": regNum}).Decode(&cert); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

func (r *MongoCertificateRepository) DeleteByID(ctx context.Context, id string) error {
	coll, err := r.collection()
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
