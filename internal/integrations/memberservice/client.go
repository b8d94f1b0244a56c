package memberservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aldnch/GolfTeeService/internal/config"
	"github.com/aldnch/GolfTeeService/pkg/logger"
)

// Client HTTP клиент сервиса участников клуба.
// Сервис отвечает за профили; имена участников здесь только для отображения.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient создает новый клиент сервиса участников
func NewClient(cfg config.MemberServiceConfig, log *logger.Logger) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: cfg.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

// GetMember получает данные участника по ID
func (c *Client) GetMember(ctx context.Context, memberID int64) (*Member, error) {
	url := fmt.Sprintf("%s/api/v1/members/%d", c.baseURL, memberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMember - create request: %v", ErrRequestFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMember - do request: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrMemberNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GetMember - unexpected status %d", ErrRequestFailed, resp.StatusCode)
	}

	var response memberResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: GetMember - decode body: %v", ErrDecodeResponse, err)
	}
	if response.Data == nil {
		return nil, ErrMemberNotFound
	}

	return response.Data, nil
}

// GetMemberName получает имя участника с мягкой деградацией.
// При недоступности сервиса возвращается заглушка, а не ошибка:
// имя участника не критично для бронирования.
func (c *Client) GetMemberName(ctx context.Context, memberID int64) string {
	member, err := c.GetMember(ctx, memberID)
	if err != nil {
		c.logger.Warn("memberservice: falling back to placeholder name for member %d: %v", memberID, err)
		return FallbackName(memberID)
	}
	return member.Name
}

// FallbackName заглушка имени участника при недоступности сервиса
func FallbackName(memberID int64) string {
	return fmt.Sprintf("Member #%d", memberID)
}
