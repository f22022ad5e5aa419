package ports

import (
	"context"
	"net/url"
	"time"

	"uma-vasp-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
)

// CurrencyService converts between currencies using live exchange rates.
type CurrencyService interface {
	// MillisatoshiPerUnit returns how many millisatoshis one smallest unit
	// of the given currency is worth.
	MillisatoshiPerUnit(ctx context.Context, code string) (float64, error)
	// Multiplier returns the conversion rate between two currencies in
	// their primary units.
	Multiplier(ctx context.Context, fromCode, toCode string) (float64, error)
	// SmallestUnitMultiplier returns the conversion rate between the
	// smallest units of two currencies, corrected for their decimals.
	SmallestUnitMultiplier(ctx context.Context, fromCode, toCode string) (float64, error)
	// Currencies returns the currencies the user can receive, in the UMA
	// wire shape.
	Currencies(ctx context.Context, userID uuid.UUID) ([]protocol.Currency, error)
}

// LedgerEntryParams identifies one balance mutation.
type LedgerEntryParams struct {
	Uma             string
	Amount          int64
	CurrencyCode    string
	SenderUma       string
	ReceiverUma     string
	TransactionHash string
}

// LedgerService mutates wallet balances. Every successful mutation writes
// exactly one transaction row, atomically with the balance change.
type LedgerService interface {
	Balance(ctx context.Context, uma string) (int64, error)
	Add(ctx context.Context, params LedgerEntryParams) (int64, error)
	Subtract(ctx context.Context, params LedgerEntryParams) (int64, error)
}

// LnurlpResponseData is what the sending flow caches between lookup and
// pay request.
type LnurlpResponseData struct {
	Response    protocol.LnurlpResponse `json:"response"`
	ReceiverUma string                  `json:"receiver_uma"`
}

// PayReqCacheData is what the sending flow caches between pay request and
// payment.
type PayReqCacheData struct {
	EncodedInvoice        string    `json:"encoded_invoice"`
	UtxoCallbackUUID      uuid.UUID `json:"utxo_callback_uuid"`
	InvoiceExpiresAt      time.Time `json:"invoice_expires_at"`
	AmountMsats           int64     `json:"amount_msats"`
	ReceivingCurrencyCode string    `json:"receiving_currency_code"`
	ReceivingAmount       int64     `json:"receiving_amount"`
	ExchangeFeesMsats     int64     `json:"exchange_fees_msats"`
	Multiplier            float64   `json:"multiplier"`
	PaymentHash           string    `json:"payment_hash"`
	SendingUserID         uuid.UUID `json:"sending_user_id"`
	ReceiverUma           string    `json:"receiver_uma"`
	UtxoCallbackURL       string    `json:"utxo_callback_url"`
}

// RequestCache correlates the steps of an outgoing payment by UUID, and
// holds short-lived session blobs.
type RequestCache interface {
	SaveLnurlpResponseData(ctx context.Context, data LnurlpResponseData) (uuid.UUID, error)
	GetLnurlpResponseData(ctx context.Context, id uuid.UUID) (*LnurlpResponseData, error)
	SavePayReqData(ctx context.Context, data PayReqCacheData) (uuid.UUID, error)
	GetPayReqData(ctx context.Context, id uuid.UUID) (*PayReqCacheData, error)
	DeletePayReqData(ctx context.Context, id uuid.UUID) error
	SaveSession(ctx context.Context, key string, value []byte, ttl time.Duration) error
	GetSession(ctx context.Context, key string) ([]byte, error)
	DeleteSession(ctx context.Context, key string) error
}

// LookupResult is the sending VASP's answer to an address lookup.
type LookupResult struct {
	SenderCurrencies   []protocol.Currency `json:"senderCurrencies"`
	ReceiverCurrencies []protocol.Currency `json:"receiverCurrencies"`
	MinSendableMsats   int64               `json:"minSendableMsats"`
	MaxSendableMsats   int64               `json:"maxSendableMsats"`
	CallbackUUID       uuid.UUID           `json:"callbackUuid"`
	ReceiverKycStatus  protocol.KycStatus  `json:"receiverKycStatus"`
}

// PayReqParams selects the amount and currency for a pay request.
type PayReqParams struct {
	// Amount is in the smallest unit of the sending currency, or in the
	// receiving currency when IsAmountInReceivingCurrency is set.
	Amount                      int64
	ReceivingCurrencyCode       string
	IsAmountInReceivingCurrency bool
}

// PayReqResult is the sending VASP's answer to a pay request.
type PayReqResult struct {
	CallbackUUID            uuid.UUID `json:"callbackUuid"`
	EncodedInvoice          string    `json:"encodedInvoice"`
	AmountMsats             int64     `json:"amountMsats"`
	ReceivingCurrencyCode   string    `json:"receivingCurrencyCode"`
	AmountReceivingCurrency int64     `json:"amountReceivingCurrency"`
	ConversionRate          float64   `json:"conversionRate"`
	ExchangeFeesMsats       int64     `json:"exchangeFeesMsats"`
	PaymentHash             string    `json:"paymentHash"`
	InvoiceExpiresAt        int64     `json:"invoiceExpiresAt"`
}

// SendPaymentResult reports a completed outgoing payment.
type SendPaymentResult struct {
	PaymentID string    `json:"paymentId"`
	Status    string    `json:"status"`
	SettledAt time.Time `json:"settledAt"`
	Preimage  string    `json:"preimage"`
}

// SendingVaspService drives the three-step outgoing payment flow.
type SendingVaspService interface {
	Lookup(ctx context.Context, userID uuid.UUID, receiverUma string) (*LookupResult, error)
	PayRequest(ctx context.Context, userID uuid.UUID, callbackID uuid.UUID, params PayReqParams) (*PayReqResult, error)
	SendPayment(ctx context.Context, userID uuid.UUID, callbackID uuid.UUID) (*SendPaymentResult, error)
}

// LnWebhookEvent is the payload posted by the Lightning node on payment
// state changes.
type LnWebhookEvent struct {
	EventType   string `json:"event_type"`
	PaymentHash string `json:"payment_hash"`
	Status      string `json:"status"`
	AmountMsats int64  `json:"amount_msats"`
}

// ReceivingVaspService answers lnurlp and pay requests and settles
// incoming payments.
type ReceivingVaspService interface {
	HandleLnurlpRequest(ctx context.Context, requestURL url.URL) (*protocol.LnurlpResponse, error)
	HandlePayRequest(ctx context.Context, receiverID uuid.UUID, request *protocol.PayRequest) (*protocol.PayReqResponse, error)
	HandleUtxoCallback(ctx context.Context, callback *protocol.PostTransactionCallback) error
	SettleIncomingPayment(ctx context.Context, event LnWebhookEvent) error
}

// QuoteParams describes a requested exchange quote.
type QuoteParams struct {
	SendingCurrencyCode   string
	ReceivingCurrencyCode string
	LockedCurrencySide    string // "sending" or "receiving"
	Amount                int64
	ReceiverUma           string
}

// QuoteService creates and executes locked-in payment quotes.
type QuoteService interface {
	CreateQuote(ctx context.Context, userID uuid.UUID, params QuoteParams) (*domain.Quote, error)
	ExecuteQuote(ctx context.Context, userID uuid.UUID, paymentHash string) (string, error) // preimage
}

// ComplianceService gates counterparties and screens payments. The demo
// implementation allows everything but keeps the hooks the flows call.
type ComplianceService interface {
	ShouldAcceptTransactionFromVasp(ctx context.Context, sendingVaspDomain, receiverUma string) (bool, error)
	ShouldAcceptTransactionToVasp(ctx context.Context, receivingVaspDomain, senderUma, receiverUma string) (bool, error)
	PreScreenPayment(ctx context.Context, senderUma, receiverUma string, amountMsats int64) (bool, error)
	RegisterTransactionMonitoring(ctx context.Context, paymentHash string) error
	TravelRuleInfoForTransaction(ctx context.Context, senderUserID uuid.UUID, receiverUma string, amountMsats int64) (*string, error)
}

// DecodedInvoice is the subset of a bolt11 invoice the flows need.
type DecodedInvoice struct {
	PaymentHash string
	AmountMsats int64
	ExpiresAt   time.Time
}

// PaymentStatus is the lifecycle state of an outgoing node payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailure PaymentStatus = "FAILURE"
)

// OutgoingPayment is a payment attempt tracked on the Lightning node.
type OutgoingPayment struct {
	ID              string
	Status          PaymentStatus
	TransactionHash *string
	Preimage        *string
	ResolvedAt      *time.Time
	Utxos           []protocol.UtxoWithAmount
}

// LightningClient talks to the Lightning node backing this VASP.
// CreateInvoice deliberately takes no context so the client can be
// passed straight to the UMA SDK as an invoice creator.
type LightningClient interface {
	CreateInvoice(amountMsats int64, metadata string) (*string, error)
	DecodeInvoice(ctx context.Context, encodedInvoice string) (*DecodedInvoice, error)
	PayInvoice(ctx context.Context, encodedInvoice string, maxFeesMsats int64) (*OutgoingPayment, error)
	GetOutgoingPayment(ctx context.Context, paymentID string) (*OutgoingPayment, error)
	GetNodePubKey(ctx context.Context) (string, error)
	GetChannelUtxos(ctx context.Context) ([]string, error)
}

// RateProvider returns exchange rates as currency units per BTC.
type RateProvider interface {
	Rates(ctx context.Context) (map[string]float64, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// SignatureService handles HMAC-SHA256 signing and verification for the
// Lightning node webhook.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
}

// RegisterRequest holds input for user registration.
type RegisterRequest struct {
	Username     string
	Password     string
	EmailAddress *string
	FullName     *string
}

// Profile is the authenticated user's view of their own account.
type Profile struct {
	User     *domain.User `json:"user"`
	Uma      string       `json:"uma"`
	Balance  int64        `json:"balance"`
	Currency string       `json:"currency"`
	Color    string       `json:"color"`
}

// UserService manages accounts, wallets and preferences.
type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
	Profile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Balance(ctx context.Context, userID uuid.UUID) (int64, string, error)
	Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error)
	Currencies(ctx context.Context, userID uuid.UUID) ([]string, error)
	SetCurrencies(ctx context.Context, userID uuid.UUID, codes []string) error
	RegisterPushSubscription(ctx context.Context, sub *domain.PushSubscription) error
}

// NotificationService delivers payment notifications to users.
type NotificationService interface {
	PaymentReceived(ctx context.Context, userID uuid.UUID, amount int64, currencyCode, senderUma string) error
}
