package transport

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// DecodeHandler serves the decode operations as REST routes on the gateway mux.
type DecodeHandler struct {
	decoder Decoder
	logger  *zap.Logger
}

func NewDecodeHandler(decoder Decoder, logger *zap.Logger) *DecodeHandler {
	return &DecodeHandler{decoder: decoder, logger: logger.Named("decode")}
}

// Register adds the decode routes to mux.
func (h *DecodeHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{"/v1/transactions/{txid}/envelope/{protocol}", h.envelope},
		{"/v1/transactions/{txid}/output-pair/{a}/{b}", h.outputPair},
		{"/v1/transactions/{txid}/stamp", h.stamp},
		{"/v1/blocks/{height}/transactions/{txid}", h.locate},
	}
	for _, r := range routes {
		if err := mux.HandlePath(http.MethodGet, r.pattern, r.handler); err != nil {
			return fmt.Errorf("register %s: %w", r.pattern, err)
		}
	}
	return nil
}

func (h *DecodeHandler) envelope(w http.ResponseWriter, r *http.Request, params map[string]string) {
	protocol, err := model.ParseProtocol(params["protocol"])
	if err != nil {
		h.fail(w, r, err, zap.String("txid", params["txid"]))
		return
	}
	res, err := h.decoder.DecodeEnvelope(r.Context(), params["txid"], protocol)
	h.respond(w, r, res, err, zap.String("txid", params["txid"]))
}

func (h *DecodeHandler) outputPair(w http.ResponseWriter, r *http.Request, params map[string]string) {
	a, errA := parseIndex(params["a"])
	b, errB := parseIndex(params["b"])
	if err := errors.Join(errA, errB); err != nil {
		h.fail(w, r, err, zap.String("txid", params["txid"]))
		return
	}
	res, err := h.decoder.DecodeOutputPair(r.Context(), params["txid"], a, b)
	h.respond(w, r, res, err, zap.String("txid", params["txid"]))
}

func (h *DecodeHandler) stamp(w http.ResponseWriter, r *http.Request, params map[string]string) {
	res, err := h.decoder.DecodeStamp(r.Context(), params["txid"])
	h.respond(w, r, res, err, zap.String("txid", params["txid"]))
}

func (h *DecodeHandler) locate(w http.ResponseWriter, r *http.Request, params map[string]string) {
	height, err := strconv.ParseUint(params["height"], 10, 64)
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: height %q", model.ErrNotFound, params["height"]), zap.String("height", params["height"]))
		return
	}
	tx, err := h.decoder.LocateInBlock(r.Context(), height, params["txid"])
	if err != nil {
		h.fail(w, r, err, zap.Uint64("height", height), zap.String("txid", params["txid"]))
		return
	}
	view, err := NewTxView(tx)
	h.respond(w, r, view, err, zap.Uint64("height", height), zap.String("txid", params["txid"]))
}

func parseIndex(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrOutputOutOfRange, s)
	}
	return uint32(v), nil
}

func (h *DecodeHandler) fail(w http.ResponseWriter, r *http.Request, err error, fields ...zap.Field) {
	kind := model.Kind(err)
	code := StatusCode(err)
	fields = append(fields, zap.String("path", r.URL.Path), zap.String("kind", kind), zap.Error(err))
	if code >= http.StatusInternalServerError {
		h.logger.Error("decode request failed", fields...)
	} else {
		h.logger.Info("decode request rejected", fields...)
	}
	_ = writeJSON(w, code, ErrorResponse{Kind: kind, Error: err.Error()})
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// StatusCode maps an error to the HTTP status reported for it.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	switch model.Kind(err) {
	case "InvalidTxid", "UnsupportedProtocol", "OutputOutOfRange":
		return http.StatusBadRequest
	case "NotFound":
		return http.StatusNotFound
	case "Transport":
		return http.StatusBadGateway
	case "InvalidSchema":
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

func (h *DecodeHandler) respond(w http.ResponseWriter, r *http.Request, res any, err error, fields ...zap.Field) {
	if err != nil {
		h.fail(w, r, err, fields...)
		return
	}
	if err := writeJSON(w, http.StatusOK, res); err != nil {
		fields = append(fields, zap.String("path", r.URL.Path), zap.Error(err))
		h.logger.Error("encode response", fields...)
		_ = writeJSON(w, http.StatusInternalServerError, ErrorResponse{Kind: "Encode", Error: err.Error()})
	}
}

// writeJSON encodes v before touching w, so an unencodable value leaves the
// response unwritten.
func writeJSON(w http.ResponseWriter, code int, v any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err := w.Write(buf.Bytes())
	return err
}

// TxView is the script data of a located transaction.
type TxView struct {
	TxID    string       `json:"txid"`
	Hex     string       `json:"hex"`
	Inputs  []InputView  `json:"inputs"`
	Outputs []OutputView `json:"outputs"`
}

type InputView struct {
	PrevOut string           `json:"prevout"`
	Witness []model.HexBytes `json:"witness,omitempty"`
}

type OutputView struct {
	Value  int64          `json:"value"`
	Script model.HexBytes `json:"script"`
}

// NewTxView renders tx with its witnesses and output scripts.
func NewTxView(tx *wire.MsgTx) (*TxView, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	view := &TxView{
		TxID:    tx.TxHash().String(),
		Hex:     hex.EncodeToString(buf.Bytes()),
		Inputs:  make([]InputView, 0, len(tx.TxIn)),
		Outputs: make([]OutputView, 0, len(tx.TxOut)),
	}
	for _, in := range tx.TxIn {
		iv := InputView{PrevOut: in.PreviousOutPoint.String()}
		for _, item := range in.Witness {
			iv.Witness = append(iv.Witness, model.HexBytes(item))
		}
		view.Inputs = append(view.Inputs, iv)
	}
	for _, out := range tx.TxOut {
		view.Outputs = append(view.Outputs, OutputView{Value: out.Value, Script: out.PkScript})
	}
	return view, nil
}
