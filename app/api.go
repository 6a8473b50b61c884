// Package app exposes the participant-facing answer API over HTTP.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DE-labtory/harpocrates/codec"
	"github.com/DE-labtory/harpocrates/core"
	"github.com/DE-labtory/harpocrates/store"
	"github.com/DE-labtory/harpocrates/submission"
	kitendpoint "github.com/go-kit/kit/endpoint"
	kitlog "github.com/go-kit/kit/log"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
)

type ErrIllegalArgument struct {
	Reason string
}

func (e ErrIllegalArgument) Error() string {
	return fmt.Sprintf("err illegal argument: %s", e.Reason)
}

type endpoint struct {
	logger   kitlog.Logger
	answerer core.Answerer
}

func newEndpoint(answerer core.Answerer, logger kitlog.Logger) *endpoint {
	return &endpoint{
		logger:   logger,
		answerer: answerer,
	}
}

func NewApiHandler(answerer core.Answerer, logger kitlog.Logger) http.Handler {
	endpoint := newEndpoint(answerer, logger)
	r := mux.NewRouter()

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(encodeError),
	}

	r.Methods("GET").Path("/healthz").HandlerFunc(func(w http.ResponseWriter, request *http.Request) {
		logger.Log("method", "GET", "endpoint", "healthz")
		w.Write([]byte("up"))
	})

	r.Methods("POST").Path("/answers").Handler(kithttp.NewServer(
		endpoint.submitAnswer,
		decodeSubmitAnswerRequest,
		encodeResponse,
		opts...,
	))

	r.Methods("GET").Path("/answers/status").Handler(kithttp.NewServer(
		endpoint.answerStatus,
		decodeEmptyRequest,
		encodeResponse,
		opts...,
	))

	r.Methods("POST").Path("/answers/decrypt").Handler(kithttp.NewServer(
		endpoint.decryptAnswer,
		decodeEmptyRequest,
		encodeResponse,
		opts...,
	))

	return r
}

func (e *endpoint) submitAnswer(ctx context.Context, request interface{}) (interface{}, error) {
	e.logger.Log("endpoint", "submitAnswer")

	f := e.makeSubmitAnswerEndpoint()
	response, err := f(ctx, request)
	if err != nil {
		e.logger.Log("endpoint", "submitAnswer", "err", err.Error())
	}
	return response, err
}

func (e *endpoint) makeSubmitAnswerEndpoint() kitendpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(SubmitAnswerRequest)
		if err := e.answerer.Submit(req.Answer); err != nil {
			return nil, err
		}
		return SubmitAnswerResponse{State: e.answerer.State().String()}, nil
	}
}

func (e *endpoint) answerStatus(ctx context.Context, request interface{}) (interface{}, error) {
	return StatusResponse{
		State:     e.answerer.State().String(),
		Submitted: e.answerer.HasSubmitted(),
		Handle:    e.answerer.CurrentHandle().String(),
		Decrypted: e.answerer.DecryptedText(),
		Message:   e.answerer.LastMessage(),
	}, nil
}

func (e *endpoint) decryptAnswer(ctx context.Context, request interface{}) (interface{}, error) {
	e.logger.Log("endpoint", "decryptAnswer")

	if err := e.answerer.Decrypt(); err != nil {
		e.logger.Log("endpoint", "decryptAnswer", "err", err.Error())
		return nil, err
	}
	return DecryptAnswerResponse{State: e.answerer.State().String()}, nil
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type SubmitAnswerResponse struct {
	State string `json:"state"`
}

type StatusResponse struct {
	State     string `json:"state"`
	Submitted bool   `json:"submitted"`
	Handle    string `json:"handle"`
	Decrypted string `json:"decrypted"`
	Message   string `json:"message"`
}

type DecryptAnswerResponse struct {
	State string `json:"state"`
}

func decodeSubmitAnswerRequest(_ context.Context, r *http.Request) (interface{}, error) {
	body := SubmitAnswerRequest{}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		return nil, err
	}
	if body.Answer == "" {
		return nil, ErrIllegalArgument{"answer is empty"}
	}
	return body, nil
}

func decodeEmptyRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

func encodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if e, ok := response.(errorer); ok && e.error() != nil {
		encodeError(ctx, e.error(), w)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

type errorer interface {
	error() error
}

// encode errors from business-logic
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	switch err.(type) {
	case ErrIllegalArgument:
		w.WriteHeader(http.StatusBadRequest)
	default:
		switch err {
		case submission.ErrEmptyInput, codec.ErrTooLong:
			w.WriteHeader(http.StatusBadRequest)
		case submission.ErrInFlight, store.ErrAlreadySubmitted:
			w.WriteHeader(http.StatusConflict)
		case submission.ErrNotSubmitted:
			w.WriteHeader(http.StatusPreconditionFailed)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
