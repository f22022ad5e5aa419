package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/uma-universal-money-address/uma-go-sdk/uma"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
)

const (
	counterpartyTimeout = 20 * time.Second

	paymentPollAttempts = 40
	paymentPollInterval = 250 * time.Millisecond

	// Routing fee budget: 0.17% of the invoice amount, 5000 msats minimum.
	maxRoutingFeeRate  = 0.0017
	minRoutingFeeMsats = 5_000
)

// HTTPClient is the outbound HTTP surface used to call counterparty VASPs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SendingVasp implements ports.SendingVaspService: the lookup, payreq and
// send steps of an outgoing UMA payment.
type SendingVasp struct {
	cfg         config.UmaConfig
	users       ports.UserRepository
	umas        ports.UmaRepository
	wallets     ports.WalletRepository
	ledger      ports.LedgerService
	currency    ports.CurrencyService
	compliance  ports.ComplianceService
	lightning   ports.LightningClient
	cache       ports.RequestCache
	pubKeyCache uma.PublicKeyCache
	nonceCache  uma.NonceCache
	httpClient  HTTPClient
	log         zerolog.Logger
}

// NewSendingVasp creates a new sending VASP service.
func NewSendingVasp(
	cfg config.UmaConfig,
	users ports.UserRepository,
	umas ports.UmaRepository,
	wallets ports.WalletRepository,
	ledger ports.LedgerService,
	currency ports.CurrencyService,
	compliance ports.ComplianceService,
	lightning ports.LightningClient,
	cache ports.RequestCache,
	pubKeyCache uma.PublicKeyCache,
	nonceCache uma.NonceCache,
	httpClient HTTPClient,
	log zerolog.Logger,
) *SendingVasp {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: counterpartyTimeout}
	}
	return &SendingVasp{
		cfg:         cfg,
		users:       users,
		umas:        umas,
		wallets:     wallets,
		ledger:      ledger,
		currency:    currency,
		compliance:  compliance,
		lightning:   lightning,
		cache:       cache,
		pubKeyCache: pubKeyCache,
		nonceCache:  nonceCache,
		httpClient:  httpClient,
		log:         log.With().Str("component", "sending_vasp").Logger(),
	}
}

func (s *SendingVasp) do(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, counterpartyTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}

func (s *SendingVasp) senderUma(ctx context.Context, userID uuid.UUID) (*domain.Uma, error) {
	umaRecord, err := s.umas.GetDefaultByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if umaRecord == nil {
		return nil, apperror.ErrNotFound("UMA")
	}
	return umaRecord, nil
}

// Lookup resolves a receiver address at its VASP and caches the response.
func (s *SendingVasp) Lookup(ctx context.Context, userID uuid.UUID, receiverUma string) (*ports.LookupResult, error) {
	if !domain.IsValidUmaAddress(receiverUma) {
		return nil, apperror.ErrInvalidUma(receiverUma)
	}
	receiverDomain, err := domain.DomainFromUma(receiverUma)
	if err != nil {
		return nil, apperror.ErrInvalidUma(receiverUma)
	}

	senderRecord, err := s.senderUma(ctx, userID)
	if err != nil {
		return nil, err
	}
	senderAddress := senderRecord.Address(s.cfg.VaspDomain)

	accepted, err := s.compliance.ShouldAcceptTransactionToVasp(ctx, receiverDomain, senderAddress, receiverUma)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !accepted {
		return nil, apperror.ErrForbidden("Payments to this VASP are not allowed")
	}

	signingKey, err := s.cfg.SigningPrivKey()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	lnurlpURL, err := uma.GetSignedLnurlpRequestUrl(signingKey, receiverUma, s.cfg.VaspDomain, true, nil)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	status, body, err := s.do(ctx, http.MethodGet, lnurlpURL.String(), nil)
	if err != nil {
		return nil, apperror.Counterparty("Failed to reach receiving VASP", err)
	}

	if status == http.StatusPreconditionFailed {
		supported, err := uma.GetSupportedMajorVersionsFromErrorResponseBody(body)
		if err != nil {
			return nil, apperror.Counterparty("Invalid version negotiation response", err)
		}
		highest := uma.SelectHighestSupportedVersion(supported)
		if highest == nil {
			return nil, apperror.ErrUnsupportedVersion()
		}
		lnurlpURL, err = uma.GetSignedLnurlpRequestUrl(signingKey, receiverUma, s.cfg.VaspDomain, true, highest)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		status, body, err = s.do(ctx, http.MethodGet, lnurlpURL.String(), nil)
		if err != nil {
			return nil, apperror.Counterparty("Failed to reach receiving VASP", err)
		}
	}
	if status != http.StatusOK {
		return nil, apperror.Counterparty(fmt.Sprintf("Receiving VASP returned status %d", status), nil)
	}

	lnurlpResponse, err := uma.ParseLnurlpResponse(body)
	if err != nil {
		return nil, apperror.Counterparty("Invalid lnurlp response", err)
	}

	receiverKycStatus := protocol.KycStatusUnknown
	if umaResponse := lnurlpResponse.AsUmaResponse(); umaResponse != nil {
		receiverKycStatus = umaResponse.Compliance.KycStatus
		if !s.cfg.Testing {
			pubKeys, err := uma.FetchPublicKeyForVasp(receiverDomain, s.pubKeyCache)
			if err != nil {
				return nil, apperror.Counterparty("Failed to fetch receiving VASP public keys", err)
			}
			receiverSigningKey, err := pubKeys.SigningPubKey()
			if err != nil {
				return nil, apperror.Counterparty("Invalid receiving VASP public keys", err)
			}
			if err := uma.VerifyUmaLnurlpResponseSignature(*umaResponse, receiverSigningKey, s.nonceCache); err != nil {
				return nil, apperror.Counterparty("Invalid lnurlp response signature", err)
			}
		}
	}

	callbackID, err := s.cache.SaveLnurlpResponseData(ctx, ports.LnurlpResponseData{
		Response:    *lnurlpResponse,
		ReceiverUma: receiverUma,
	})
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	senderCurrencies, err := s.currency.Currencies(ctx, userID)
	if err != nil {
		return nil, err
	}
	var receiverCurrencies []protocol.Currency
	if lnurlpResponse.Currencies != nil {
		receiverCurrencies = *lnurlpResponse.Currencies
	}

	return &ports.LookupResult{
		SenderCurrencies:   senderCurrencies,
		ReceiverCurrencies: receiverCurrencies,
		MinSendableMsats:   lnurlpResponse.MinSendable,
		MaxSendableMsats:   lnurlpResponse.MaxSendable,
		CallbackUUID:       callbackID,
		ReceiverKycStatus:  receiverKycStatus,
	}, nil
}

// PayRequest requests an invoice from the receiving VASP for the looked-up
// receiver and caches everything needed to pay it.
func (s *SendingVasp) PayRequest(ctx context.Context, userID uuid.UUID, callbackID uuid.UUID, params ports.PayReqParams) (*ports.PayReqResult, error) {
	data, err := s.cache.GetLnurlpResponseData(ctx, callbackID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if data == nil {
		return nil, apperror.ErrNotFound("Lookup")
	}
	if params.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	code := params.ReceivingCurrencyCode
	if code == "" {
		code = "SAT"
	}
	var receiverCurrency *protocol.Currency
	if data.Response.Currencies != nil {
		for i := range *data.Response.Currencies {
			if (*data.Response.Currencies)[i].Code == code {
				receiverCurrency = &(*data.Response.Currencies)[i]
				break
			}
		}
	}
	if receiverCurrency == nil && code != "SAT" {
		return nil, apperror.ErrUnsupportedCurrency(code)
	}
	if params.IsAmountInReceivingCurrency && receiverCurrency != nil {
		if params.Amount < receiverCurrency.Convertible.MinSendable || params.Amount > receiverCurrency.Convertible.MaxSendable {
			return nil, apperror.Validation("Amount is outside the receiver's sendable range")
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	senderRecord, err := s.senderUma(ctx, userID)
	if err != nil {
		return nil, err
	}
	senderAddress := senderRecord.Address(s.cfg.VaspDomain)

	amount := params.Amount
	if !params.IsAmountInReceivingCurrency {
		wallet, err := s.wallets.GetByUserID(ctx, userID)
		if err != nil {
			return nil, apperror.ErrDatabaseError(err)
		}
		if wallet == nil {
			return nil, apperror.ErrNotFound("Wallet")
		}
		msatsPerUnit, err := s.currency.MillisatoshiPerUnit(ctx, wallet.CurrencyCode)
		if err != nil {
			return nil, err
		}
		amount = int64(math.Round(float64(params.Amount) * msatsPerUnit))
	}

	receiverDomain, err := domain.DomainFromUma(data.ReceiverUma)
	if err != nil {
		return nil, apperror.ErrInvalidUma(data.ReceiverUma)
	}
	pubKeys, err := uma.FetchPublicKeyForVasp(receiverDomain, s.pubKeyCache)
	if err != nil {
		return nil, apperror.Counterparty("Failed to fetch receiving VASP public keys", err)
	}
	encryptionKey, err := pubKeys.EncryptionPubKey()
	if err != nil {
		return nil, apperror.Counterparty("Invalid receiving VASP public keys", err)
	}
	receiverSigningKey, err := pubKeys.SigningPubKey()
	if err != nil {
		return nil, apperror.Counterparty("Invalid receiving VASP public keys", err)
	}

	trInfo, err := s.compliance.TravelRuleInfoForTransaction(ctx, userID, data.ReceiverUma, amount)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	var utxosPtr *[]string
	if utxos, err := s.lightning.GetChannelUtxos(ctx); err == nil {
		utxosPtr = &utxos
	} else {
		s.log.Warn().Err(err).Msg("failed to fetch channel utxos")
	}
	var nodePubKeyPtr *string
	if nodePubKey, err := s.lightning.GetNodePubKey(ctx); err == nil {
		nodePubKeyPtr = &nodePubKey
	} else {
		s.log.Warn().Err(err).Msg("failed to fetch node pubkey")
	}

	signingKey, err := s.cfg.SigningPrivKey()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	utxoCallback := fmt.Sprintf("/api/uma/utxocallback?txid=%s", uuid.NewString())
	requestedPayeeData := protocol.CounterPartyDataOptions{
		protocol.CounterPartyDataFieldIdentifier.String(): {Mandatory: true},
		protocol.CounterPartyDataFieldCompliance.String(): {Mandatory: true},
	}

	payreq, err := uma.GetUmaPayRequest(
		amount,
		encryptionKey,
		signingKey,
		code,
		params.IsAmountInReceivingCurrency,
		senderAddress,
		nil,
		nil,
		trInfo,
		nil,
		protocol.KycStatus(user.KycStatus),
		utxosPtr,
		nodePubKeyPtr,
		utxoCallback,
		&requestedPayeeData,
		nil,
	)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	payreqBody, err := payreq.Encode()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	status, body, err := s.do(ctx, http.MethodPost, data.Response.Callback, payreqBody)
	if err != nil {
		return nil, apperror.Counterparty("Failed to reach receiving VASP", err)
	}
	if status != http.StatusOK {
		return nil, apperror.Counterparty(fmt.Sprintf("Receiving VASP returned status %d", status), nil)
	}

	payreqResponse, err := uma.ParsePayReqResponse(body)
	if err != nil {
		return nil, apperror.Counterparty("Invalid payreq response", err)
	}
	if payreqResponse.IsUmaResponse() && !s.cfg.Testing {
		if err := uma.VerifyPayReqResponseSignature(payreqResponse, receiverSigningKey, s.nonceCache, senderAddress, data.ReceiverUma); err != nil {
			return nil, apperror.Counterparty("Invalid payreq response signature", err)
		}
	}

	invoice, err := s.lightning.DecodeInvoice(ctx, payreqResponse.EncodedInvoice)
	if err != nil {
		return nil, apperror.Counterparty("Invalid invoice in payreq response", err)
	}

	accepted, err := s.compliance.PreScreenPayment(ctx, senderAddress, data.ReceiverUma, invoice.AmountMsats)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if !accepted {
		return nil, apperror.ErrForbidden("Payment rejected by compliance screening")
	}

	receivingAmount := int64(0)
	conversionRate := float64(1)
	exchangeFees := int64(0)
	if payreqResponse.PaymentInfo != nil {
		if payreqResponse.PaymentInfo.Amount != nil {
			receivingAmount = *payreqResponse.PaymentInfo.Amount
		}
		conversionRate = payreqResponse.PaymentInfo.Multiplier
		exchangeFees = payreqResponse.PaymentInfo.ExchangeFeesMillisatoshi
	}

	receiverUtxoCallback := ""
	if payreqResponse.PayeeData != nil {
		if payeeCompliance, err := payreqResponse.PayeeData.Compliance(); err == nil && payeeCompliance != nil && payeeCompliance.UtxoCallback != nil {
			receiverUtxoCallback = *payeeCompliance.UtxoCallback
		}
	}

	payReqID, err := s.cache.SavePayReqData(ctx, ports.PayReqCacheData{
		EncodedInvoice:        payreqResponse.EncodedInvoice,
		UtxoCallbackUUID:      uuid.New(),
		InvoiceExpiresAt:      invoice.ExpiresAt,
		AmountMsats:           invoice.AmountMsats,
		ReceivingCurrencyCode: code,
		ReceivingAmount:       receivingAmount,
		ExchangeFeesMsats:     exchangeFees,
		Multiplier:            conversionRate,
		PaymentHash:           invoice.PaymentHash,
		SendingUserID:         userID,
		ReceiverUma:           data.ReceiverUma,
		UtxoCallbackURL:       receiverUtxoCallback,
	})
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	return &ports.PayReqResult{
		CallbackUUID:            payReqID,
		EncodedInvoice:          payreqResponse.EncodedInvoice,
		AmountMsats:             invoice.AmountMsats,
		ReceivingCurrencyCode:   code,
		AmountReceivingCurrency: receivingAmount,
		ConversionRate:          conversionRate,
		ExchangeFeesMsats:       exchangeFees,
		PaymentHash:             invoice.PaymentHash,
		InvoiceExpiresAt:        invoice.ExpiresAt.Unix(),
	}, nil
}

// SendPayment pays a previously requested invoice and debits the sender's
// wallet once the node reports success.
func (s *SendingVasp) SendPayment(ctx context.Context, userID uuid.UUID, callbackID uuid.UUID) (*ports.SendPaymentResult, error) {
	data, err := s.cache.GetPayReqData(ctx, callbackID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if data == nil {
		return nil, apperror.ErrNotFound("Pay request")
	}
	if data.SendingUserID != userID {
		return nil, apperror.ErrForbidden("This pay request belongs to another user")
	}
	if time.Now().After(data.InvoiceExpiresAt) {
		return nil, apperror.Validation("Invoice has expired")
	}

	senderRecord, err := s.senderUma(ctx, userID)
	if err != nil {
		return nil, err
	}
	senderAddress := senderRecord.Address(s.cfg.VaspDomain)

	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("Wallet")
	}
	msatsPerUnit, err := s.currency.MillisatoshiPerUnit(ctx, wallet.CurrencyCode)
	if err != nil {
		return nil, err
	}
	sendingAmount := int64(math.Round(float64(data.AmountMsats+data.ExchangeFeesMsats) / msatsPerUnit))
	if sendingAmount < 1 {
		sendingAmount = 1
	}
	if wallet.AmountInLowestDenom < sendingAmount {
		return nil, apperror.ErrInsufficientFunds()
	}

	maxRoutingFee := int64(math.Round(float64(data.AmountMsats) * maxRoutingFeeRate))
	if maxRoutingFee < minRoutingFeeMsats {
		maxRoutingFee = minRoutingFeeMsats
	}

	payment, err := s.lightning.PayInvoice(ctx, data.EncodedInvoice, maxRoutingFee)
	if err != nil {
		return nil, apperror.Counterparty("Failed to initiate payment", err)
	}
	for attempt := 0; attempt < paymentPollAttempts && payment.Status == ports.PaymentStatusPending; attempt++ {
		select {
		case <-ctx.Done():
			return nil, apperror.Counterparty("Payment status polling cancelled", ctx.Err())
		case <-time.After(paymentPollInterval):
		}
		payment, err = s.lightning.GetOutgoingPayment(ctx, payment.ID)
		if err != nil {
			return nil, apperror.Counterparty("Failed to poll payment status", err)
		}
	}
	if payment.Status != ports.PaymentStatusSuccess {
		return nil, apperror.Counterparty("Payment did not complete", nil)
	}
	if payment.TransactionHash == nil {
		return nil, apperror.Counterparty("Payment settled without a transaction hash", nil)
	}

	if _, err := s.ledger.Subtract(ctx, ports.LedgerEntryParams{
		Uma:             senderRecord.Username,
		Amount:          sendingAmount,
		CurrencyCode:    wallet.CurrencyCode,
		SenderUma:       senderAddress,
		ReceiverUma:     data.ReceiverUma,
		TransactionHash: *payment.TransactionHash,
	}); err != nil {
		return nil, err
	}

	s.sendPostTransactionCallback(ctx, data.UtxoCallbackURL, payment.Utxos)

	if err := s.cache.DeletePayReqData(ctx, callbackID); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete payreq cache entry")
	}

	settledAt := time.Now()
	if payment.ResolvedAt != nil {
		settledAt = *payment.ResolvedAt
	}
	preimage := ""
	if payment.Preimage != nil {
		preimage = *payment.Preimage
	}
	return &ports.SendPaymentResult{
		PaymentID: payment.ID,
		Status:    string(payment.Status),
		SettledAt: settledAt,
		Preimage:  preimage,
	}, nil
}

// sendPostTransactionCallback informs the receiving VASP which UTXOs the
// payment moved through. Failures are logged, never fatal.
func (s *SendingVasp) sendPostTransactionCallback(ctx context.Context, callbackURL string, utxos []protocol.UtxoWithAmount) {
	if callbackURL == "" {
		return
	}
	signingKey, err := s.cfg.SigningPrivKey()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load signing key for post-transaction callback")
		return
	}
	callback, err := uma.GetPostTransactionCallback(utxos, s.cfg.VaspDomain, signingKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to build post-transaction callback")
		return
	}
	body, err := json.Marshal(callback)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode post-transaction callback")
		return
	}
	status, _, err := s.do(ctx, http.MethodPost, callbackURL, body)
	if err != nil {
		s.log.Warn().Err(err).Str("url", callbackURL).Msg("post-transaction callback failed")
		return
	}
	if status != http.StatusOK {
		s.log.Warn().Int("status", status).Str("url", callbackURL).Msg("post-transaction callback rejected")
	}
}
