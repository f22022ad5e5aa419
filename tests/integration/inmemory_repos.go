package integration

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *inMemoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
	umas    *inMemoryUmaRepo
}

func newInMemoryWalletRepo(umas *inMemoryUmaRepo) *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet), umas: umas}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[w.ID] = w
	return nil
}

func (r *inMemoryWalletRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID {
			return w, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByUmaUsername(ctx context.Context, username string) (*domain.Wallet, error) {
	uma, err := r.umas.GetByUsername(ctx, username)
	if err != nil || uma == nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[uma.WalletID]
	if !ok {
		return nil, nil
	}
	return w, nil
}

func (r *inMemoryWalletRepo) GetByUmaUsernameForUpdate(ctx context.Context, tx pgx.Tx, username string) (*domain.Wallet, error) {
	return r.GetByUmaUsername(ctx, username)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amountInLowestDenom int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.AmountInLowestDenom = amountInLowestDenom
	w.UpdatedAt = time.Now()
	return nil
}

// --- In-Memory Uma Repo ---

type inMemoryUmaRepo struct {
	mu   sync.RWMutex
	umas map[uuid.UUID]*domain.Uma
}

func newInMemoryUmaRepo() *inMemoryUmaRepo {
	return &inMemoryUmaRepo{umas: make(map[uuid.UUID]*domain.Uma)}
}

func (r *inMemoryUmaRepo) Create(ctx context.Context, u *domain.Uma) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.umas {
		if existing.Username == u.Username {
			return fmt.Errorf("uma username already exists")
		}
	}
	r.umas[u.ID] = u
	return nil
}

func (r *inMemoryUmaRepo) GetByUsername(ctx context.Context, username string) (*domain.Uma, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.umas {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUmaRepo) GetDefaultByUserID(ctx context.Context, userID uuid.UUID) (*domain.Uma, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.umas {
		if u.UserID == userID && u.Default {
			return u, nil
		}
	}
	return nil, nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, t)
	return nil
}

func (r *inMemoryTransactionRepo) ExistsByHash(ctx context.Context, transactionHash string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.TransactionHash == transactionHash {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryTransactionRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for i := len(r.transactions) - 1; i >= 0 && len(result) < limit; i-- {
		if r.transactions[i].UserID == userID {
			result = append(result, *r.transactions[i])
		}
	}
	return result, nil
}

// --- In-Memory Quote Repo ---

type inMemoryQuoteRepo struct {
	mu     sync.RWMutex
	quotes map[uuid.UUID]*domain.Quote
}

func newInMemoryQuoteRepo() *inMemoryQuoteRepo {
	return &inMemoryQuoteRepo{quotes: make(map[uuid.UUID]*domain.Quote)}
}

func (r *inMemoryQuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes[q.ID] = q
	return nil
}

func (r *inMemoryQuoteRepo) GetByPaymentHash(ctx context.Context, paymentHash string) (*domain.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.quotes {
		if q.PaymentHash == paymentHash {
			return q, nil
		}
	}
	return nil, nil
}

func (r *inMemoryQuoteRepo) MarkSettled(ctx context.Context, id uuid.UUID, settledAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotes[id]
	if !ok {
		return fmt.Errorf("quote not found")
	}
	q.SettledAt = &settledAt
	return nil
}

// --- In-Memory PayReqData Repo ---

type inMemoryPayReqDataRepo struct {
	mu   sync.RWMutex
	data map[string]*domain.PayReqData
}

func newInMemoryPayReqDataRepo() *inMemoryPayReqDataRepo {
	return &inMemoryPayReqDataRepo{data: make(map[string]*domain.PayReqData)}
}

func (r *inMemoryPayReqDataRepo) Create(ctx context.Context, d *domain.PayReqData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[d.PaymentHash] = d
	return nil
}

func (r *inMemoryPayReqDataRepo) GetByPaymentHash(ctx context.Context, paymentHash string) (*domain.PayReqData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.data[paymentHash]
	if !ok {
		return nil, nil
	}
	return d, nil
}

// --- In-Memory User Currency Repo ---

type inMemoryUserCurrencyRepo struct {
	mu    sync.RWMutex
	codes map[uuid.UUID][]string
}

func newInMemoryUserCurrencyRepo() *inMemoryUserCurrencyRepo {
	return &inMemoryUserCurrencyRepo{codes: make(map[uuid.UUID][]string)}
}

func (r *inMemoryUserCurrencyRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.codes[userID]...), nil
}

func (r *inMemoryUserCurrencyRepo) Replace(ctx context.Context, userID uuid.UUID, codes []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[userID] = append([]string(nil), codes...)
	return nil
}

// --- In-Memory Push Subscription Repo ---

type inMemoryPushSubscriptionRepo struct {
	mu   sync.RWMutex
	subs map[uuid.UUID][]domain.PushSubscription
}

func newInMemoryPushSubscriptionRepo() *inMemoryPushSubscriptionRepo {
	return &inMemoryPushSubscriptionRepo{subs: make(map[uuid.UUID][]domain.PushSubscription)}
}

func (r *inMemoryPushSubscriptionRepo) Create(ctx context.Context, sub *domain.PushSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.UserID] = append(r.subs[sub.UserID], *sub)
	return nil
}

func (r *inMemoryPushSubscriptionRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.PushSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.PushSubscription(nil), r.subs[userID]...), nil
}

// --- In-Memory WebAuthn Credential Repo ---

type inMemoryCredentialRepo struct {
	mu    sync.RWMutex
	creds map[uuid.UUID][]domain.WebAuthnCredential
}

func newInMemoryCredentialRepo() *inMemoryCredentialRepo {
	return &inMemoryCredentialRepo{creds: make(map[uuid.UUID][]domain.WebAuthnCredential)}
}

func (r *inMemoryCredentialRepo) Create(ctx context.Context, cred *domain.WebAuthnCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds[cred.UserID] = append(r.creds[cred.UserID], *cred)
	return nil
}

func (r *inMemoryCredentialRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WebAuthnCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.WebAuthnCredential(nil), r.creds[userID]...), nil
}

func (r *inMemoryCredentialRepo) UpdateSignCount(ctx context.Context, credentialID []byte, signCount uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, creds := range r.creds {
		for i := range creds {
			if bytes.Equal(creds[i].CredentialID, credentialID) {
				r.creds[userID][i].SignCount = signCount
				return nil
			}
		}
	}
	return fmt.Errorf("credential not found")
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transaction blocks with a single mutex,
// standing in for the row locks SELECT FOR UPDATE takes in Postgres.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &noopTx{mu: &t.mu}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing. Commit
// and Rollback both release the transactor lock, whichever comes first.
type noopTx struct {
	mu   *sync.Mutex
	once sync.Once
}

func (t *noopTx) release() {
	if t.mu != nil {
		t.once.Do(t.mu.Unlock)
	}
}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { t.release(); return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { t.release(); return nil }
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
