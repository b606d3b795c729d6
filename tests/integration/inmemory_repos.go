package integration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"marketplace-seller-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Seller Repo ---

type inMemorySellerRepo struct {
	mu      sync.RWMutex
	sellers map[uuid.UUID]*domain.SellerProfile // keyed by user ID
}

func newInMemorySellerRepo() *inMemorySellerRepo {
	return &inMemorySellerRepo{sellers: make(map[uuid.UUID]*domain.SellerProfile)}
}

func (r *inMemorySellerRepo) Create(ctx context.Context, tx pgx.Tx, profile *domain.SellerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sellers[profile.UserID]; exists {
		// Same shape the database driver surfaces when the unique
		// constraint on user_id fires.
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_sellers_user_id"}
	}
	cp := *profile
	r.sellers[profile.UserID] = &cp
	return nil
}

func (r *inMemorySellerRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SellerProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.sellers[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) add(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) PromoteToSeller(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	if u.Role == domain.RoleBuyer {
		u.Role = domain.RoleSeller
	}
	return nil
}

// --- In-Memory Document Repo ---

type inMemoryDocumentRepo struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]map[domain.DocumentType]*domain.VerificationDocument
}

func newInMemoryDocumentRepo() *inMemoryDocumentRepo {
	return &inMemoryDocumentRepo{docs: make(map[uuid.UUID]map[domain.DocumentType]*domain.VerificationDocument)}
}

func (r *inMemoryDocumentRepo) Upsert(ctx context.Context, doc *domain.VerificationDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slots, ok := r.docs[doc.SellerID]
	if !ok {
		slots = make(map[domain.DocumentType]*domain.VerificationDocument)
		r.docs[doc.SellerID] = slots
	}
	cp := *doc
	cp.Submitted = false
	slots[doc.Type] = &cp
	return nil
}

func (r *inMemoryDocumentRepo) ListBySellerID(ctx context.Context, sellerID uuid.UUID) ([]domain.VerificationDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.VerificationDocument
	for _, d := range r.docs[sellerID] {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UploadedAt.Before(result[j].UploadedAt)
	})
	return result, nil
}

func (r *inMemoryDocumentRepo) MarkSubmitted(ctx context.Context, sellerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.docs[sellerID] {
		d.Submitted = true
	}
	return nil
}

// --- In-Memory Object Store ---

type inMemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func newInMemoryObjectStore() *inMemoryObjectStore {
	return &inMemoryObjectStore{objects: make(map[string][]byte)}
}

func (s *inMemoryObjectStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectPath] = buf.Bytes()
	return "https://storage.test/" + objectPath, nil
}

func (s *inMemoryObjectStore) get(objectPath string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[objectPath]
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
