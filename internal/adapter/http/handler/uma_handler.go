package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"uma-vasp-backend/config"
	"uma-vasp-backend/internal/adapter/http/dto"
	"uma-vasp-backend/internal/core/ports"
	"uma-vasp-backend/pkg/apperror"
	"uma-vasp-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/uma-universal-money-address/uma-go-sdk/uma"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
	umautils "github.com/uma-universal-money-address/uma-go-sdk/uma/utils"
)

// UmaHandler serves the receiving side of the UMA protocol: the
// well-known discovery endpoints, lnurlp, pay requests, the UTXO
// callback and the Lightning node webhook.
type UmaHandler struct {
	cfg          config.UmaConfig
	receivingSvc ports.ReceivingVaspService
	log          zerolog.Logger
}

// NewUmaHandler creates a new UmaHandler.
func NewUmaHandler(cfg config.UmaConfig, receivingSvc ports.ReceivingVaspService, log zerolog.Logger) *UmaHandler {
	return &UmaHandler{cfg: cfg, receivingSvc: receivingSvc, log: log}
}

func (h *UmaHandler) baseURL() string {
	scheme := "https"
	if umautils.IsDomainLocalhost(h.cfg.VaspDomain) {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s", scheme, h.cfg.VaspDomain)
}

// LnurlPubKey handles GET /.well-known/lnurlpubkey.
func (h *UmaHandler) LnurlPubKey(c *gin.Context) {
	response.OK(c, dto.PubKeyResponse{
		SigningPubKeyHex:    h.cfg.SigningPubKeyHex,
		EncryptionPubKeyHex: h.cfg.EncryptionPubKeyHex,
	})
}

// UmaConfiguration handles GET /.well-known/uma-configuration.
func (h *UmaHandler) UmaConfiguration(c *gin.Context) {
	base := h.baseURL()
	response.OK(c, dto.UmaConfigurationResponse{
		Name:                 h.cfg.VaspName,
		UmaMajorVersions:     uma.GetSupportedMajorVersions(),
		UmaRequestEndpoint:   base + "/api/uma/payreq",
		LnurlpEndpoint:       base + "/.well-known/lnurlp",
		PublicKeysEndpoint:   base + "/.well-known/lnurlpubkey",
		UtxoCallbackEndpoint: base + "/api/uma/utxocallback",
	})
}

// Lnurlp handles GET /.well-known/lnurlp/:username. An unsupported UMA
// version gets the 412 negotiation body the protocol prescribes.
func (h *UmaHandler) Lnurlp(c *gin.Context) {
	requestURL := url.URL{
		Scheme:   "https",
		Host:     h.cfg.VaspDomain,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	}
	if umautils.IsDomainLocalhost(h.cfg.VaspDomain) {
		requestURL.Scheme = "http"
	}

	lnurlpResponse, err := h.receivingSvc.HandleLnurlpRequest(c.Request.Context(), requestURL)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "UNSUPPORTED_VERSION" {
			h.unsupportedVersion(c)
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, lnurlpResponse)
}

func (h *UmaHandler) unsupportedVersion(c *gin.Context) {
	versions := uma.GetSupportedMajorVersions()
	parts := make([]string, 0, len(versions))
	for _, v := range versions {
		parts = append(parts, strconv.Itoa(v))
	}
	c.JSON(http.StatusPreconditionFailed, gin.H{
		"supportedMajorVersions": strings.Join(parts, ","),
		"unsupportedVersion":     c.Query("umaVersion"),
	})
}

// PayReq handles POST and GET /api/uma/payreq/:userID.
func (h *UmaHandler) PayReq(c *gin.Context) {
	receiverID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid receiver id"))
		return
	}

	request, err := h.parsePayRequest(c)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	payReqResponse, err := h.receivingSvc.HandlePayRequest(c.Request.Context(), receiverID, request)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, payReqResponse)
}

func (h *UmaHandler) parsePayRequest(c *gin.Context) (*protocol.PayRequest, error) {
	if c.Request.Method == http.MethodGet {
		return protocol.ParsePayRequestFromQueryParams(c.Request.URL.Query())
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	return uma.ParsePayRequest(body)
}

// UtxoCallback handles POST /api/uma/utxocallback.
func (h *UmaHandler) UtxoCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}
	callback, err := uma.ParsePostTransactionCallback(body)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.receivingSvc.HandleUtxoCallback(c.Request.Context(), callback); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "OK"})
}

// LnWebhook handles POST /api/webhooks/ln. The HMAC check happens in
// middleware; by the time we are here the payload is trusted.
func (h *UmaHandler) LnWebhook(c *gin.Context) {
	var event ports.LnWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.receivingSvc.SettleIncomingPayment(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "OK"})
}
