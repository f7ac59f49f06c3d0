// Package authform envia os formulários de login e cadastro ao servidor de
// autenticação, guarda o token devolvido e exibe erros temporários.
package authform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	MessagePasswordMismatch = "As senhas não conferem"
	MessageFallback         = "Ocorreu um erro. Tente novamente."

	DefaultErrorDisplayFor = 5 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
)

var (
	ErrPasswordMismatch   = errors.New("senha e confirmação diferentes")
	ErrSubmissionInFlight = errors.New("já existe um envio em andamento")
	ErrMissingToken       = errors.New("resposta sem token")
)

// SubmitError descreve uma falha de envio. Message é o texto exibido ao usuário.
type SubmitError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// TokenStore guarda o token recebido no login
type TokenStore interface {
	Save(token string) error
}

// Navigator leva o usuário ao destino após o login
type Navigator interface {
	Navigate(target string) error
}

// NavigatorFunc adapta uma função a Navigator
type NavigatorFunc func(target string) error

func (f NavigatorFunc) Navigate(target string) error {
	return f(target)
}

type LoginFields struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterFields struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

type Config struct {
	BaseURL         string
	RedirectURL     string
	RequestTimeout  time.Duration
	ErrorDisplayFor time.Duration
}

type authResponse struct {
	Token   string `json:"token"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Form envia os dois formulários. Um único envio por vez.
type Form struct {
	config    Config
	client    *http.Client
	tokens    TokenStore
	navigator Navigator

	// OnMessage é chamado sempre que a mensagem exibida muda ("" ao limpar)
	OnMessage func(message string)

	inFlight atomic.Bool

	mu         sync.Mutex
	message    string
	generation uint64
	timer      *time.Timer
}

func New(cfg Config, tokens TokenStore, navigator Navigator) *Form {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.ErrorDisplayFor <= 0 {
		cfg.ErrorDisplayFor = DefaultErrorDisplayFor
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Form{
		config:    cfg,
		client:    &http.Client{Timeout: cfg.RequestTimeout},
		tokens:    tokens,
		navigator: navigator,
	}
}

// Login envia as credenciais para <base>/login
func (f *Form) Login(ctx context.Context, fields LoginFields) error {
	return f.submit(ctx, "/login", fields)
}

// Register envia o cadastro para <base>/register. Senhas diferentes são
// rejeitadas sem nenhuma chamada de rede.
func (f *Form) Register(ctx context.Context, fields RegisterFields) error {
	if fields.Password != fields.ConfirmPassword {
		f.showMessage(MessagePasswordMismatch)
		return ErrPasswordMismatch
	}

	return f.submit(ctx, "/register", fields)
}

// Message devolve o erro exibido no momento
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Submitting informa se há um envio em andamento
func (f *Form) Submitting() bool {
	return f.inFlight.Load()
}

func (f *Form) submit(ctx context.Context, path string, payload any) error {
	if !f.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	token, err := f.post(ctx, path, payload)
	if err != nil {
		var submitErr *SubmitError
		if !errors.As(err, &submitErr) {
			submitErr = &SubmitError{Message: MessageFallback, Err: err}
		}

		logrus.WithError(err).WithField("path", path).Warn("Falha no envio do formulário")
		f.showMessage(submitErr.Message)
		return submitErr
	}

	if err := f.tokens.Save(token); err != nil {
		f.showMessage(MessageFallback)
		return &SubmitError{Message: MessageFallback, Err: fmt.Errorf("erro ao salvar token: %w", err)}
	}

	f.clearMessage()

	if err := f.navigator.Navigate(f.config.RedirectURL); err != nil {
		return fmt.Errorf("erro ao redirecionar para %s: %w", f.config.RedirectURL, err)
	}

	return nil
}

func (f *Form) post(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar formulário: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao enviar requisição: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &SubmitError{StatusCode: resp.StatusCode, Message: MessageFallback, Err: err}
	}

	var decoded authResponse
	// corpo inválido cai na mensagem padrão
	_ = json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &SubmitError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(decoded),
			Err:        fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if decoded.Token == "" {
		return "", &SubmitError{StatusCode: resp.StatusCode, Message: serverMessage(decoded), Err: ErrMissingToken}
	}

	return decoded.Token, nil
}

func serverMessage(resp authResponse) string {
	switch {
	case strings.TrimSpace(resp.Error) != "":
		return resp.Error
	case strings.TrimSpace(resp.Message) != "":
		return resp.Message
	default:
		return MessageFallback
	}
}

// showMessage exibe a mensagem e agenda a limpeza. Uma mensagem nova reinicia a contagem.
func (f *Form) showMessage(message string) {
	f.mu.Lock()
	f.generation++
	generation := f.generation
	f.message = message
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.config.ErrorDisplayFor, func() {
		f.expire(generation)
	})
	f.mu.Unlock()

	f.notify(message)
}

func (f *Form) expire(generation uint64) {
	f.mu.Lock()
	if generation != f.generation || f.message == "" {
		f.mu.Unlock()
		return
	}
	f.message = ""
	f.timer = nil
	f.mu.Unlock()

	f.notify("")
}

func (f *Form) clearMessage() {
	f.mu.Lock()
	f.generation++
	hadMessage := f.message != ""
	f.message = ""
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mu.Unlock()

	if hadMessage {
		f.notify("")
	}
}

func (f *Form) notify(message string) {
	if f.OnMessage != nil {
		f.OnMessage(message)
	}
}
