package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/types"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
)

// DefaultBaseURL is the public Aladhan API endpoint.
const DefaultBaseURL = "http://api.aladhan.com"

// Client wraps the Aladhan prayer times API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// TimingsData is the subset of the /v1/timings response the app consumes.
type TimingsData struct {
	Timings struct {
		Fajr    string `json:"Fajr"`
		Sunrise string `json:"Sunrise"`
		Dhuhr   string `json:"Dhuhr"`
		Asr     string `json:"Asr"`
		Maghrib string `json:"Maghrib"`
		Isha    string `json:"Isha"`
	} `json:"timings"`
	Date struct {
		Readable string `json:"readable"`
		Hijri    struct {
			Day   string `json:"day"`
			Year  string `json:"year"`
			Month struct {
				En string `json:"en"`
				Ar string `json:"ar"`
			} `json:"month"`
		} `json:"hijri"`
		Gregorian struct {
			Date string `json:"date"`
		} `json:"gregorian"`
	} `json:"date"`
	Meta struct {
		Timezone string `json:"timezone"`
		Method   struct {
			Name string `json:"name"`
		} `json:"method"`
	} `json:"meta"`
}

type timingsResponse struct {
	Code int         `json:"code"`
	Data TimingsData `json:"data"`
}

type calendarResponse struct {
	Code int           `json:"code"`
	Data []TimingsData `json:"data"`
}

// Timings fetches one day of prayer times. date is DD-MM-YYYY; empty means today.
func (c *Client) Timings(ctx context.Context, latitude, longitude float64, date string, method int) (*TimingsData, error) {
	const op = "AladhanClient.Timings"

	if date == "" {
		date = time.Now().Format("02-01-2006")
	}

	endpoint := fmt.Sprintf("%s/v1/timings/%s?%s", c.baseURL, date, c.query(latitude, longitude, method))

	var payload timingsResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &payload.Data, nil
}

// Calendar fetches a whole month of prayer times.
func (c *Client) Calendar(ctx context.Context, latitude, longitude float64, year, month, method int) ([]TimingsData, error) {
	const op = "AladhanClient.Calendar"

	endpoint := fmt.Sprintf("%s/v1/calendar/%d/%d?%s", c.baseURL, year, month, c.query(latitude, longitude, method))

	var payload calendarResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payload.Data, nil
}

func (c *Client) query(latitude, longitude float64, method int) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("method", strconv.Itoa(method))
	return q.Encode()
}

func (c *Client) get(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return wrap.Error(ctx, fmt.Errorf("%w: %v", types.ErrUpstreamUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return wrap.Error(ctx, fmt.Errorf("%w: unexpected response status %d", types.ErrUpstreamUnavailable, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		ctx = wrap.WithAction(ctx, "decode_aladhan_payload")
		return wrap.Error(ctx, fmt.Errorf("failed to decode Aladhan response: %w", err))
	}

	return nil
}
