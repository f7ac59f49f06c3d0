package authform

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryTokenStore struct {
	mu     sync.Mutex
	tokens []string
	err    error
}

func (s *memoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.tokens = append(s.tokens, token)
	return nil
}

type recordingNavigator struct {
	targets []string
}

func (n *recordingNavigator) Navigate(target string) error {
	n.targets = append(n.targets, target)
	return nil
}

func newTestForm(t *testing.T, baseURL string, displayFor time.Duration) (*Form, *memoryTokenStore, *recordingNavigator) {
	t.Helper()
	tokens := &memoryTokenStore{}
	navigator := &recordingNavigator{}
	form := New(Config{
		BaseURL:         baseURL,
		RedirectURL:     "/dashboard",
		ErrorDisplayFor: displayFor,
	}, tokens, navigator)
	return form, tokens, navigator
}

func TestRegister_PasswordMismatch(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	form, tokens, navigator := newTestForm(t, server.URL, time.Second)

	err := form.Register(context.Background(), RegisterFields{
		Email:           "ana@exemplo.com",
		Password:        "segredo1",
		ConfirmPassword: "segredo2",
	})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, MessagePasswordMismatch, form.Message())
	assert.Zero(t, calls.Load())
	assert.Empty(t, tokens.tokens)
	assert.Empty(t, navigator.targets)
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"ana@exemplo.com","password":"segredo"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc.def.ghi"}`))
	}))
	defer server.Close()

	form, tokens, navigator := newTestForm(t, server.URL+"/", time.Second)

	err := form.Login(context.Background(), LoginFields{Email: "ana@exemplo.com", Password: "segredo"})

	require.NoError(t, err)
	assert.Equal(t, []string{"abc.def.ghi"}, tokens.tokens)
	assert.Equal(t, []string{"/dashboard"}, navigator.targets)
	assert.Empty(t, form.Message())
}

func TestRegister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Ana","email":"ana@exemplo.com","password":"segredo"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"novo"}`))
	}))
	defer server.Close()

	form, tokens, navigator := newTestForm(t, server.URL, time.Second)

	err := form.Register(context.Background(), RegisterFields{
		Name:            "Ana",
		Email:           "ana@exemplo.com",
		Password:        "segredo",
		ConfirmPassword: "segredo",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"novo"}, tokens.tokens)
	assert.Equal(t, []string{"/dashboard"}, navigator.targets)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"mensagem do campo error", http.StatusUnauthorized, `{"error":"Credenciais inválidas"}`, "Credenciais inválidas"},
		{"mensagem do campo message", http.StatusBadRequest, `{"message":"E-mail obrigatório"}`, "E-mail obrigatório"},
		{"corpo sem mensagem", http.StatusInternalServerError, `{}`, MessageFallback},
		{"corpo inválido", http.StatusBadGateway, `<html>`, MessageFallback},
		{"sucesso sem token", http.StatusOK, `{}`, MessageFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			form, tokens, navigator := newTestForm(t, server.URL, time.Second)

			err := form.Login(context.Background(), LoginFields{Email: "ana@exemplo.com", Password: "x"})

			var submitErr *SubmitError
			require.ErrorAs(t, err, &submitErr)
			assert.Equal(t, tt.expected, submitErr.Message)
			assert.Equal(t, tt.expected, form.Message())
			assert.Empty(t, tokens.tokens)
			assert.Empty(t, navigator.targets)
		})
	}
}

func TestLogin_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	form, _, _ := newTestForm(t, baseURL, time.Second)

	err := form.Login(context.Background(), LoginFields{Email: "ana@exemplo.com", Password: "x"})

	var submitErr *SubmitError
	require.ErrorAs(t, err, &submitErr)
	assert.Equal(t, MessageFallback, form.Message())
}

func TestLogin_TokenStoreFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	}))
	defer server.Close()

	form, tokens, navigator := newTestForm(t, server.URL, time.Second)
	tokens.err = errors.New("disco cheio")

	err := form.Login(context.Background(), LoginFields{Email: "ana@exemplo.com", Password: "x"})

	assert.Error(t, err)
	assert.Equal(t, MessageFallback, form.Message())
	assert.Empty(t, navigator.targets)
}

func TestMessage_ClearedAfterDisplayTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Credenciais inválidas"}`))
	}))
	defer server.Close()

	form, _, _ := newTestForm(t, server.URL, 50*time.Millisecond)

	var mu sync.Mutex
	var shown []string
	form.OnMessage = func(message string) {
		mu.Lock()
		shown = append(shown, message)
		mu.Unlock()
	}

	_ = form.Login(context.Background(), LoginFields{Email: "ana@exemplo.com", Password: "x"})
	assert.Equal(t, "Credenciais inválidas", form.Message())

	assert.Eventually(t, func() bool { return form.Message() == "" }, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Credenciais inválidas", ""}, shown)
}

func TestMessage_NewMessageRestartsTimer(t *testing.T) {
	form, _, _ := newTestForm(t, "http://localhost", 150*time.Millisecond)

	form.showMessage("primeira")
	time.Sleep(100 * time.Millisecond)
	form.showMessage("segunda")

	// a primeira contagem já teria vencido aqui
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, "segunda", form.Message())

	assert.Eventually(t, func() bool { return form.Message() == "" }, time.Second, 10*time.Millisecond)
}

func TestSubmit_InFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	}))
	defer server.Close()

	form, tokens, _ := newTestForm(t, server.URL, time.Second)

	done := make(chan error, 1)
	go func() {
		done <- form.Login(context.Background(), LoginFields{Email: "ana@exemplo.com", Password: "x"})
	}()

	<-started
	assert.True(t, form.Submitting())

	err := form.Login(context.Background(), LoginFields{Email: "ana@exemplo.com", Password: "x"})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, form.Submitting())
	assert.Equal(t, []string{"abc"}, tokens.tokens)
}
