package mongodb

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable dikembalikan selama koneksi MongoDB belum/tidak siap.
var ErrStoreUnavailable = errors.New("mongodb: store unavailable")

type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

const (
	retryDelay     = 5 * time.Second
	connectTimeout = 10 * time.Second

	certificatesCollection = "certificates"
)

// Manager memegang koneksi MongoDB untuk di-inject ke repository & health check.
// HTTP server tetap jalan walau koneksi belum siap; operasi store saja yang gagal.
type Manager struct {
	uri    string
	dbName string

	mu     sync.RWMutex
	state  ConnState
	client *mongo.Client
	db     *mongo.Database
}

func NewManager(uri, dbName string) *Manager {
	return &Manager{uri: uri, dbName: dbName, state: StateDisconnected}
}

// Start mencoba konek di background; kalau gagal, retry tiap 5 detik tanpa batas.
func (m *Manager) Start() {
	go m.connectLoop()
}

func (m *Manager) connectLoop() {
	for {
		m.setState(StateConnecting)
		log.Println("🔌 Koneksi ke MongoDB...")

		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.uri))
		if err == nil {
			err = client.Ping(ctx, nil)
		}
		cancel()

		if err != nil {
			if client != nil {
				_ = client.Disconnect(context.Background())
			}
			m.setState(StateDisconnected)
			log.Printf("❌ Gagal konek MongoDB: %v (retry %s lagi)", err, retryDelay)
			time.Sleep(retryDelay)
			continue
		}

		m.mu.Lock()
		m.client = client
		m.db = client.Database(m.dbName)
		m.state = StateConnected
		m.mu.Unlock()

		log.Printf("✅ MongoDB connected (db=%s)", m.dbName)
		m.ensureIndexes()
		return
	}
}

// ensureIndexes: index non-unique di registrationNumber untuk endpoint search.
func (m *Manager) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	coll := m.db.Collection(certificatesCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "registrationNumber", Value: 1}},
	})
	if err != nil {
		log.Printf("⚠️ Gagal bikin index registrationNumber: %v", err)
	}
}

func (m *Manager) setState(s ConnState) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) State() ConnState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) IsConnected() bool {
	return m.State() == StateConnected
}

// Collection mengembalikan handle collection, atau ErrStoreUnavailable kalau belum konek.
func (m *Manager) Collection(name string) (*mongo.Collection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateConnected || m.db == nil {
		return nil, ErrStoreUnavailable
	}
	return m.db.Collection(name), nil
}

func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.client = nil
	m.db = nil
	m.state = StateDisconnected
	m.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
