package dto

// RegisterRequest is the request body for demo user registration.
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=3,max=32,safe_id"`
	Password     string  `json:"password" binding:"required,min=8,max=128"`
	EmailAddress *string `json:"email,omitempty" binding:"omitempty,email"`
	FullName     *string `json:"fullName,omitempty" binding:"omitempty,max=100"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	UserID string `json:"userId"`
	Uma    string `json:"uma"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// WebAuthnLoginBeginRequest selects the account to authenticate.
type WebAuthnLoginBeginRequest struct {
	Username string `json:"username" binding:"required"`
}

// PayReqRequest is the request body for POST /api/umapayreq/:callbackUuid.
type PayReqRequest struct {
	Amount                      int64  `json:"amount" binding:"required,gt=0"`
	ReceivingCurrencyCode       string `json:"receivingCurrencyCode,omitempty"`
	IsAmountInReceivingCurrency bool   `json:"isAmountInReceivingCurrency,omitempty"`
}

// QuoteRequest is the request body for POST /api/quotes.
type QuoteRequest struct {
	SendingCurrencyCode   string `json:"sendingCurrencyCode" binding:"required,len=3"`
	ReceivingCurrencyCode string `json:"receivingCurrencyCode" binding:"required,len=3"`
	LockedCurrencySide    string `json:"lockedCurrencySide" binding:"required,oneof=sending receiving"`
	Amount                int64  `json:"amount" binding:"required,gt=0"`
	ReceiverUma           string `json:"receiverUma" binding:"required,uma_address"`
}

// ExecuteQuoteResponse returns the proof of an executed quote.
type ExecuteQuoteResponse struct {
	Preimage string `json:"preimage"`
}

// CurrenciesRequest replaces the user's receivable currency list.
type CurrenciesRequest struct {
	Currencies []string `json:"currencies" binding:"required,min=1,dive,len=3"`
}

// PushSubscriptionRequest registers a web push subscription. The shape
// mirrors the browser PushSubscription.toJSON() output.
type PushSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required,safe_url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// TransactionResponse is one ledger entry as shown to the user.
type TransactionResponse struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
	SenderUma    string `json:"senderUma"`
	ReceiverUma  string `json:"receiverUma"`
	IsCredit     bool   `json:"isCredit"`
	CreatedAt    string `json:"createdAt"`
}

// BalanceResponse is the response for the balance query.
type BalanceResponse struct {
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// CurrenciesResponse lists the user's receivable currency codes.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// PubKeyResponse is served at /.well-known/lnurlpubkey so counterparty
// VASPs can verify our signatures.
type PubKeyResponse struct {
	SigningPubKeyHex    string `json:"signingPubKey"`
	EncryptionPubKeyHex string `json:"encryptionPubKey"`
}

// UmaConfigurationResponse is served at /.well-known/uma-configuration.
type UmaConfigurationResponse struct {
	Name                 string `json:"name"`
	UmaMajorVersions     []int  `json:"uma_major_versions"`
	UmaRequestEndpoint   string `json:"uma_request_endpoint"`
	LnurlpEndpoint       string `json:"lnurlp_endpoint"`
	PublicKeysEndpoint   string `json:"public_keys_endpoint"`
	UtxoCallbackEndpoint string `json:"utxo_callback_endpoint"`
}
