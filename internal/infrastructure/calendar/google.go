package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ecogestor/licenciamento-api/internal/application/agenda"
	"github.com/ecogestor/licenciamento-api/internal/domain/entity"
	"github.com/ecogestor/licenciamento-api/pkg/logger"
)

// Garante que GoogleClient implementa agenda.Client.
var _ agenda.Client = (*GoogleClient)(nil)

const (
	googleTokenURL = "https://oauth2.googleapis.com/token"
	googleAPIBase  = "https://www.googleapis.com/calendar/v3"

	// Lembretes 7, 3 e 1 dia antes do prazo, em minutos.
	lembrete7Dias = 7 * 24 * 60
	lembrete3Dias = 3 * 24 * 60
	lembrete1Dia  = 24 * 60
)

// GoogleConfig credenciais OAuth2 e calendário de destino.
type GoogleConfig struct {
	CalendarID   string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// GoogleClient cliente HTTP do Google Calendar autenticado via refresh token.
type GoogleClient struct {
	cfg  GoogleConfig
	http *http.Client
	log  *logger.Logger

	mu          sync.Mutex
	accessToken string
	expiry      time.Time
}

// NewGoogleClient constrói o cliente real do Google Calendar.
func NewGoogleClient(cfg GoogleConfig, log *logger.Logger) *GoogleClient {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	return &GoogleClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}
}

// evento corpo JSON da API de eventos do Google Calendar.
type evento struct {
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	Start       eventoDataHora  `json:"start"`
	End         eventoDataHora  `json:"end"`
	Reminders   eventoLembretes `json:"reminders"`
}

type eventoDataHora struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type eventoLembretes struct {
	UseDefault bool             `json:"useDefault"`
	Overrides  []eventoLembrete `json:"overrides"`
}

type eventoLembrete struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// fusoEvento é o fuso do órgão emissor padrão (IMA/AL). Carregado uma vez;
// UTC como último recurso se o tzdata não estiver disponível.
var fusoEvento = func() *time.Location {
	loc, err := time.LoadLocation(nomeFusoEvento)
	if err != nil {
		return time.UTC
	}
	return loc
}()

const nomeFusoEvento = "America/Maceio"

func montarEvento(cond *entity.Condicionante, empresaNome string) *evento {
	limite := time.Now()
	if cond.DataLimite != nil {
		limite = *cond.DataLimite
	}
	// Evento ao meio-dia do prazo, no fuso do calendário, com uma hora de duração.
	inicio := time.Date(limite.Year(), limite.Month(), limite.Day(), 12, 0, 0, 0, fusoEvento)
	fim := inicio.Add(time.Hour)

	return &evento{
		Summary:     fmt.Sprintf("Condicionante: %s", empresaNome),
		Description: cond.Descricao,
		Start:       eventoDataHora{DateTime: inicio.Format(time.RFC3339), TimeZone: nomeFusoEvento},
		End:         eventoDataHora{DateTime: fim.Format(time.RFC3339), TimeZone: nomeFusoEvento},
		Reminders: eventoLembretes{
			Overrides: []eventoLembrete{
				{Method: "email", Minutes: lembrete7Dias},
				{Method: "email", Minutes: lembrete3Dias},
				{Method: "popup", Minutes: lembrete1Dia},
			},
		},
	}
}

// CriarEvento cria o evento e devolve o id atribuído pelo Google.
func (c *GoogleClient) CriarEvento(ctx context.Context, cond *entity.Condicionante, empresaNome string) (string, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", googleAPIBase, url.PathEscape(c.cfg.CalendarID))
	body, err := c.doJSON(ctx, http.MethodPost, endpoint, montarEvento(cond, empresaNome))
	if err != nil {
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode evento criado: %w", err)
	}
	c.log.Info().Str("event_id", out.ID).Str("condicionante_id", cond.ID).Msg("evento criado no Google Calendar")
	return out.ID, nil
}

// AtualizarEvento sobrescreve o evento existente.
func (c *GoogleClient) AtualizarEvento(ctx context.Context, eventID string, cond *entity.Condicionante, empresaNome string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		googleAPIBase, url.PathEscape(c.cfg.CalendarID), url.PathEscape(eventID))
	if _, err := c.doJSON(ctx, http.MethodPut, endpoint, montarEvento(cond, empresaNome)); err != nil {
		return err
	}
	c.log.Info().Str("event_id", eventID).Str("condicionante_id", cond.ID).Msg("evento atualizado no Google Calendar")
	return nil
}

// RemoverEvento exclui o evento do calendário.
func (c *GoogleClient) RemoverEvento(ctx context.Context, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		googleAPIBase, url.PathEscape(c.cfg.CalendarID), url.PathEscape(eventID))
	if _, err := c.doJSON(ctx, http.MethodDelete, endpoint, nil); err != nil {
		return err
	}
	c.log.Info().Str("event_id", eventID).Msg("evento removido do Google Calendar")
	return nil
}

// Modo identifica a implementação.
func (c *GoogleClient) Modo() string {
	return "google"
}

// doJSON executa a chamada autenticada e devolve o corpo da resposta.
func (c *GoogleClient) doJSON(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode evento: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("montar requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chamar Google Calendar: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ler resposta do Google Calendar: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Google Calendar respondeu %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// token devolve um access token válido, renovando pelo refresh token
// quando expirado.
func (c *GoogleClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.expiry) {
		return c.accessToken, nil
	}

	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"refresh_token": {c.cfg.RefreshToken},
		"grant_type":    {"refresh_token"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("montar requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("renovar token OAuth2: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ler resposta de token: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token OAuth2 recusado (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode token OAuth2: %w", err)
	}

	c.accessToken = out.AccessToken
	// Margem de um minuto antes do vencimento real.
	c.expiry = time.Now().Add(time.Duration(out.ExpiresIn-60) * time.Second)
	return c.accessToken, nil
}
