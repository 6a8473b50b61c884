package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DE-labtory/harpocrates"
	"github.com/DE-labtory/harpocrates/store"
	kitlog "github.com/go-kit/kit/log"
)

type fakeAnswerer struct {
	submitFunc  func(answer string) error
	decryptFunc func() error
	state       harpocrates.State
	submitted   bool
	handle      harpocrates.Handle
	decrypted   string
	message     string
}

func (f *fakeAnswerer) Submit(answer string) error {
	return f.submitFunc(answer)
}
func (f *fakeAnswerer) Decrypt() error {
	return f.decryptFunc()
}
func (f *fakeAnswerer) State() harpocrates.State          { return f.state }
func (f *fakeAnswerer) HasSubmitted() bool                { return f.submitted }
func (f *fakeAnswerer) CurrentHandle() harpocrates.Handle { return f.handle }
func (f *fakeAnswerer) DecryptedText() string             { return f.decrypted }
func (f *fakeAnswerer) LastMessage() string               { return f.message }
func (f *fakeAnswerer) Run()                              {}
func (f *fakeAnswerer) Close()                            {}

func setupServer(answerer *fakeAnswerer) *httptest.Server {
	return httptest.NewServer(NewApiHandler(answerer, kitlog.NewNopLogger()))
}

func TestApi_Healthz(t *testing.T) {
	server := setupServer(&fakeAnswerer{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz failed with err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status is not 200. got=%d", resp.StatusCode)
	}
}

func TestApi_SubmitAnswer(t *testing.T) {
	answerer := &fakeAnswerer{
		state: harpocrates.Encrypting,
		submitFunc: func(answer string) error {
			if answer != "ABC" {
				t.Fatalf("unexpected answer. got=%q", answer)
			}
			return nil
		},
	}
	server := setupServer(answerer)
	defer server.Close()

	resp, err := http.Post(server.URL+"/answers", "application/json", strings.NewReader(`{"answer":"ABC"}`))
	if err != nil {
		t.Fatalf("submit failed with err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status is not 200. got=%d", resp.StatusCode)
	}

	body := SubmitAnswerResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response failed with err: %v", err)
	}
	if body.State != harpocrates.Encrypting.String() {
		t.Fatalf("unexpected state. got=%s", body.State)
	}
}

func TestApi_SubmitAnswer_Empty(t *testing.T) {
	server := setupServer(&fakeAnswerer{})
	defer server.Close()

	resp, err := http.Post(server.URL+"/answers", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("submit failed with err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty answer status is not 400. got=%d", resp.StatusCode)
	}
}

func TestApi_SubmitAnswer_AlreadySubmitted(t *testing.T) {
	answerer := &fakeAnswerer{
		submitFunc: func(answer string) error {
			return store.ErrAlreadySubmitted
		},
	}
	server := setupServer(answerer)
	defer server.Close()

	resp, err := http.Post(server.URL+"/answers", "application/json", strings.NewReader(`{"answer":"DEF"}`))
	if err != nil {
		t.Fatalf("submit failed with err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("resubmission status is not 409. got=%d", resp.StatusCode)
	}
}

func TestApi_Status(t *testing.T) {
	answerer := &fakeAnswerer{
		state:     harpocrates.Decrypted,
		submitted: true,
		handle:    harpocrates.NewHandle(harpocrates.CipherText("ct")),
		decrypted: "ABC",
		message:   "answer decrypted",
	}
	server := setupServer(answerer)
	defer server.Close()

	resp, err := http.Get(server.URL + "/answers/status")
	if err != nil {
		t.Fatalf("status failed with err: %v", err)
	}
	defer resp.Body.Close()

	body := StatusResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response failed with err: %v", err)
	}
	if !body.Submitted || body.Decrypted != "ABC" || body.State != harpocrates.Decrypted.String() {
		t.Fatalf("unexpected status body: %+v", body)
	}
}

func TestApi_Decrypt(t *testing.T) {
	answerer := &fakeAnswerer{
		state:       harpocrates.Decrypting,
		decryptFunc: func() error { return nil },
	}
	server := setupServer(answerer)
	defer server.Close()

	resp, err := http.Post(server.URL+"/answers/decrypt", "application/json", nil)
	if err != nil {
		t.Fatalf("decrypt failed with err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("decrypt status is not 200. got=%d", resp.StatusCode)
	}
}
