package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/core/domain"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/uma-universal-money-address/uma-go-sdk/uma"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
	umautils "github.com/uma-universal-money-address/uma-go-sdk/uma/utils"
)

const (
	minSendableSats     = 1
	maxSendableSats     = 10_000_000
	commentCharsAllowed = 255
)

// ReceivingVasp implements ports.ReceivingVaspService. It answers lnurlp
// and pay requests from other VASPs and settles incoming payments off the
// Lightning node webhook.
type ReceivingVasp struct {
	cfg          config.UmaConfig
	users        ports.UserRepository
	umas         ports.UmaRepository
	payReqData   ports.PayReqDataRepository
	transactions ports.TransactionRepository
	ledger       ports.LedgerService
	currency     ports.CurrencyService
	compliance   ports.ComplianceService
	lightning    ports.LightningClient
	notifier     ports.NotificationService
	pubKeyCache  uma.PublicKeyCache
	nonceCache   uma.NonceCache
	log          zerolog.Logger
}

// NewReceivingVasp creates a new receiving VASP service.
func NewReceivingVasp(
	cfg config.UmaConfig,
	users ports.UserRepository,
	umas ports.UmaRepository,
	payReqData ports.PayReqDataRepository,
	transactions ports.TransactionRepository,
	ledger ports.LedgerService,
	currency ports.CurrencyService,
	compliance ports.ComplianceService,
	lightning ports.LightningClient,
	notifier ports.NotificationService,
	pubKeyCache uma.PublicKeyCache,
	nonceCache uma.NonceCache,
	log zerolog.Logger,
) *ReceivingVasp {
	return &ReceivingVasp{
		cfg:          cfg,
		users:        users,
		umas:         umas,
		payReqData:   payReqData,
		transactions: transactions,
		ledger:       ledger,
		currency:     currency,
		compliance:   compliance,
		lightning:    lightning,
		notifier:     notifier,
		pubKeyCache:  pubKeyCache,
		nonceCache:   nonceCache,
		log:          log.With().Str("component", "receiving_vasp").Logger(),
	}
}

func (s *ReceivingVasp) baseURL() string {
	scheme := "https"
	if umautils.IsDomainLocalhost(s.cfg.VaspDomain) {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s", scheme, s.cfg.VaspDomain)
}

func (s *ReceivingVasp) metadataForUser(address string) string {
	return fmt.Sprintf(
		`[["text/plain","Pay to %s user %s"],["text/identifier","%s"]]`,
		s.cfg.VaspDomain, address, address,
	)
}

// HandleLnurlpRequest answers both plain LNURL and UMA lnurlp queries.
func (s *ReceivingVasp) HandleLnurlpRequest(ctx context.Context, requestURL url.URL) (*protocol.LnurlpResponse, error) {
	request, err := uma.ParseLnurlpRequest(requestURL)
	if err != nil {
		var unsupported uma.UnsupportedVersionError
		if errors.As(err, &unsupported) {
			return nil, apperror.ErrUnsupportedVersion()
		}
		return nil, apperror.Validation(err.Error())
	}

	username, err := domain.UsernameFromUma(request.ReceiverAddress)
	if err != nil {
		return nil, apperror.ErrInvalidUma(request.ReceiverAddress)
	}
	umaRecord, err := s.umas.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if umaRecord == nil {
		return nil, apperror.ErrNotFound("User")
	}
	user, err := s.users.GetByID(ctx, umaRecord.UserID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}

	address := umaRecord.Address(s.cfg.VaspDomain)

	if request.IsUmaRequest() {
		umaRequest := request.AsUmaRequest()

		accepted, err := s.compliance.ShouldAcceptTransactionFromVasp(ctx, umaRequest.VaspDomain, address)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if !accepted {
			return nil, apperror.ErrForbidden("This VASP is not allowed to send payments here")
		}

		if !s.cfg.Testing {
			pubKeys, err := uma.FetchPublicKeyForVasp(umaRequest.VaspDomain, s.pubKeyCache)
			if err != nil {
				return nil, apperror.Counterparty("Failed to fetch sending VASP public keys", err)
			}
			signingKey, err := pubKeys.SigningPubKey()
			if err != nil {
				return nil, apperror.Counterparty("Invalid sending VASP public keys", err)
			}
			if err := uma.VerifyUmaLnurlpQuerySignature(*umaRequest, signingKey, s.nonceCache); err != nil {
				return nil, apperror.Validation(fmt.Sprintf("Invalid lnurlp signature: %v", err))
			}
		}
	}

	currencies, err := s.currency.Currencies(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	signingKey, err := s.cfg.SigningPrivKey()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	callback := fmt.Sprintf("%s/api/uma/payreq/%s", s.baseURL(), user.ID)
	isSubjectToTravelRule := true
	kycStatus := protocol.KycStatus(user.KycStatus)
	commentChars := commentCharsAllowed
	payerDataOptions := protocol.CounterPartyDataOptions{
		protocol.CounterPartyDataFieldIdentifier.String(): {Mandatory: true},
		protocol.CounterPartyDataFieldCompliance.String(): {Mandatory: true},
		protocol.CounterPartyDataFieldName.String():       {Mandatory: false},
		protocol.CounterPartyDataFieldEmail.String():      {Mandatory: false},
	}

	response, err := uma.GetLnurlpResponse(
		*request,
		callback,
		s.metadataForUser(address),
		minSendableSats,
		maxSendableSats,
		&signingKey,
		&isSubjectToTravelRule,
		&payerDataOptions,
		&currencies,
		&kycStatus,
		&commentChars,
		nil,
	)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return response, nil
}

// HandlePayRequest creates an invoice for an incoming pay request and
// records the pending payment so the webhook can settle it.
func (s *ReceivingVasp) HandlePayRequest(ctx context.Context, receiverID uuid.UUID, request *protocol.PayRequest) (*protocol.PayReqResponse, error) {
	user, err := s.users.GetByID(ctx, receiverID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("User")
	}
	umaRecord, err := s.umas.GetDefaultByUserID(ctx, receiverID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if umaRecord == nil {
		return nil, apperror.ErrNotFound("UMA")
	}
	address := umaRecord.Address(s.cfg.VaspDomain)

	senderAddress := ""
	if request.IsUmaRequest() {
		senderAddress = *request.PayerData.Identifier()
		if !s.cfg.Testing {
			senderDomain, err := domain.DomainFromUma(senderAddress)
			if err != nil {
				return nil, apperror.ErrInvalidUma(senderAddress)
			}
			pubKeys, err := uma.FetchPublicKeyForVasp(senderDomain, s.pubKeyCache)
			if err != nil {
				return nil, apperror.Counterparty("Failed to fetch sending VASP public keys", err)
			}
			signingKey, err := pubKeys.SigningPubKey()
			if err != nil {
				return nil, apperror.Counterparty("Invalid sending VASP public keys", err)
			}
			if err := uma.VerifyPayReqSignature(request, signingKey, s.nonceCache); err != nil {
				return nil, apperror.Validation(fmt.Sprintf("Invalid payreq signature: %v", err))
			}
		}
	}

	code := "SAT"
	if request.ReceivingCurrencyCode != nil {
		code = *request.ReceivingCurrencyCode
	}
	if code != "SAT" {
		currencies, err := s.currency.Currencies(ctx, receiverID)
		if err != nil {
			return nil, err
		}
		found := false
		for _, c := range currencies {
			if c.Code == code {
				found = true
				break
			}
		}
		if !found {
			return nil, apperror.ErrUnsupportedCurrency(code)
		}
	}

	conversionRate, err := s.currency.MillisatoshiPerUnit(ctx, code)
	if err != nil {
		return nil, err
	}
	decimals := supportedCurrencies[code].decimals
	fees := exchangeFeesMsats(code)

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

	utxoCallback := fmt.Sprintf("%s/api/uma/utxocallback?txid=%s", s.baseURL(), uuid.NewString())
	payeeData := protocol.PayeeData{
		protocol.CounterPartyDataFieldIdentifier.String(): address,
	}
	signingPrivKey, err := s.cfg.SigningPrivKey()
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	response, err := uma.GetPayReqResponse(
		*request,
		s.lightning,
		s.metadataForUser(address),
		&code,
		&decimals,
		&conversionRate,
		&fees,
		utxosPtr,
		nodePubKeyPtr,
		&utxoCallback,
		&payeeData,
		&signingPrivKey,
		&address,
		nil,
		nil,
	)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	invoice, err := s.lightning.DecodeInvoice(ctx, response.EncodedInvoice)
	if err != nil {
		return nil, apperror.Counterparty("Failed to decode created invoice", err)
	}

	receivingAmount := int64(0)
	if response.PaymentInfo != nil && response.PaymentInfo.Amount != nil {
		receivingAmount = *response.PaymentInfo.Amount
	}
	if err := s.payReqData.Create(ctx, &domain.PayReqData{
		ID:                  uuid.New(),
		UserID:              user.ID,
		UmaID:               umaRecord.ID,
		PaymentHash:         invoice.PaymentHash,
		AmountInLowestDenom: receivingAmount,
		CurrencyCode:        code,
		ExchangeFeesMsats:   fees,
		Multiplier:          conversionRate,
		ExpiresAt:           invoice.ExpiresAt,
		SenderUma:           senderAddress,
		CreatedAt:           time.Now(),
	}); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	if err := s.compliance.RegisterTransactionMonitoring(ctx, invoice.PaymentHash); err != nil {
		s.log.Warn().Err(err).Msg("failed to register transaction monitoring")
	}

	return response, nil
}

// HandleUtxoCallback verifies and records the sender's channel UTXOs.
func (s *ReceivingVasp) HandleUtxoCallback(ctx context.Context, callback *protocol.PostTransactionCallback) error {
	if !s.cfg.Testing {
		if callback.VaspDomain == nil {
			return apperror.Validation("Missing vaspDomain in post-transaction callback")
		}
		pubKeys, err := uma.FetchPublicKeyForVasp(*callback.VaspDomain, s.pubKeyCache)
		if err != nil {
			return apperror.Counterparty("Failed to fetch counterparty public keys", err)
		}
		signingKey, err := pubKeys.SigningPubKey()
		if err != nil {
			return apperror.Counterparty("Invalid counterparty public keys", err)
		}
		if err := uma.VerifyPostTransactionCallbackSignature(callback, signingKey, s.nonceCache); err != nil {
			return apperror.Validation(fmt.Sprintf("Invalid post-transaction callback signature: %v", err))
		}
	}

	s.log.Info().Interface("utxos", callback.Utxos).Msg("received post-transaction utxos")
	return nil
}

// SettleIncomingPayment credits the receiver once per payment hash and
// fires a push notification.
func (s *ReceivingVasp) SettleIncomingPayment(ctx context.Context, event ports.LnWebhookEvent) error {
	if event.Status != "SUCCESS" {
		s.log.Debug().Str("status", event.Status).Str("payment_hash", event.PaymentHash).Msg("ignoring non-success webhook event")
		return nil
	}

	exists, err := s.transactions.ExistsByHash(ctx, event.PaymentHash)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if exists {
		s.log.Info().Str("payment_hash", event.PaymentHash).Msg("payment already settled, skipping")
		return nil
	}

	data, err := s.payReqData.GetByPaymentHash(ctx, event.PaymentHash)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if data == nil {
		return apperror.ErrNotFound("Payment")
	}

	umaRecord, err := s.umas.GetDefaultByUserID(ctx, data.UserID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if umaRecord == nil {
		return apperror.ErrNotFound("UMA")
	}

	if _, err := s.ledger.Add(ctx, ports.LedgerEntryParams{
		Uma:             umaRecord.Username,
		Amount:          data.AmountInLowestDenom,
		CurrencyCode:    data.CurrencyCode,
		SenderUma:       data.SenderUma,
		ReceiverUma:     umaRecord.Address(s.cfg.VaspDomain),
		TransactionHash: event.PaymentHash,
	}); err != nil {
		return err
	}

	if err := s.notifier.PaymentReceived(ctx, data.UserID, data.AmountInLowestDenom, data.CurrencyCode, data.SenderUma); err != nil {
		s.log.Warn().Err(err).Msg("failed to deliver payment notification")
	}
	return nil
}
