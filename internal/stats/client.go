package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	appName    = "afisha"
	timeLayout = "2006-01-02 15:04:05"
	maxSpooled = 1000
)

// statsEpoch — нижняя граница периода при запросе просмотров.
var statsEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type Hit struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

type viewStat struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// Client отправляет хиты просмотров во внешний сервис статистики и читает
// счётчики уникальных просмотров. Базовый URL передаётся конфигурацией;
// пустой URL отключает клиент. Недоставленные хиты складываются в память
// и досылаются планировщиком, доставка не exactly-once.
type Client struct {
	baseURL  string
	http     *http.Client
	strategy retry.Strategy
	logger   logger.Logger

	mu      sync.Mutex
	spooled []Hit
}

func NewClient(baseURL string, logger logger.Logger) *Client {
	if baseURL == "" {
		logger.Warn("stats server url is empty, view counting disabled")
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    200 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}
}

// Hit регистрирует просмотр события. При недоступности сервиса хит
// откладывается для повторной отправки, ошибка не возвращается наверх.
func (c *Client) Hit(ctx context.Context, eventID, ip string) error {
	if c.baseURL == "" {
		return nil
	}

	hit := Hit{
		App:       appName,
		URI:       "/events/" + eventID,
		IP:        ip,
		Timestamp: time.Now().UTC().Format(timeLayout),
	}

	if err := c.sendHit(ctx, hit); err != nil {
		c.spool(hit)
		return fmt.Errorf("send hit: %w", err)
	}

	return nil
}

// Views возвращает число уникальных просмотров события.
func (c *Client) Views(ctx context.Context, eventID string) (int64, error) {
	if c.baseURL == "" {
		return 0, nil
	}

	params := url.Values{}
	params.Set("start", statsEpoch.Format(timeLayout))
	params.Set("end", time.Now().UTC().Format(timeLayout))
	params.Set("unique", "true")
	params.Set("uris", "/events/"+eventID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build stats request: %w", err)
	}

	var stats []viewStat
	err = retry.Do(func() error {
		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("get stats: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("stats server returned %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&stats)
	}, c.strategy)
	if err != nil {
		return 0, err
	}

	if len(stats) == 0 {
		return 0, nil
	}
	return stats[0].Hits, nil
}

// FlushPending досылает отложенные хиты. Возвращает число доставленных.
func (c *Client) FlushPending(ctx context.Context) (int, error) {
	c.mu.Lock()
	pending := c.spooled
	c.spooled = nil
	c.mu.Unlock()

	if len(pending) == 0 {
		return 0, nil
	}

	sent := 0
	for i, hit := range pending {
		if err := c.sendHit(ctx, hit); err != nil {
			// остаток возвращаем в очередь до следующего тика
			c.mu.Lock()
			c.spooled = append(pending[i:], c.spooled...)
			c.mu.Unlock()
			return sent, fmt.Errorf("resend hit: %w", err)
		}
		sent++
	}

	return sent, nil
}

func (c *Client) sendHit(ctx context.Context, hit Hit) error {
	body, err := json.Marshal(hit)
	if err != nil {
		return fmt.Errorf("marshal hit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build hit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("stats server returned %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) spool(hit Hit) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.spooled) >= maxSpooled {
		// переполнение: старые хиты дешевле потерять, чем копить без границы
		c.spooled = c.spooled[1:]
	}
	c.spooled = append(c.spooled, hit)
}
