package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"expense_report/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const sessionCookie = "session"

var ErrEmptyLocation = errors.New("input location is empty")

// OpenError reports an input that could not be opened for reading.
type OpenError struct {
	Location string
	Err      error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("unable to open file '%s': %s", e.Location, e.Err.Error())
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response: %s", e.Status)
}

// Opener opens inputs from local paths or http(s) URLs.
type Opener struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewOpener(cfg config.Config, logger *zap.Logger) *Opener {
	httpClient := resty.New().
		SetHeader("Accept", "text/plain").
		SetTimeout(cfg.Timeout).
		SetRetryCount(1).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		}).
		AddRetryHook(func(resp *resty.Response, _ error) {
			// Bodies are streamed, so a response that is retried must be closed here.
			if resp != nil && resp.RawBody() != nil {
				_ = resp.RawBody().Close()
			}
		})

	if token := strings.TrimSpace(cfg.SessionToken); token != "" {
		httpClient.SetCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}

	return &Opener{
		http:   httpClient,
		logger: logger.Named("input"),
	}
}

func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open returns a reader over location. The caller closes it.
func (o *Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if strings.TrimSpace(location) == "" {
		return nil, &OpenError{Location: location, Err: ErrEmptyLocation}
	}
	if IsRemote(location) {
		return o.openRemote(ctx, location)
	}

	file, err := os.Open(location)
	if err != nil {
		return nil, &OpenError{Location: location, Err: err}
	}
	o.logger.Debug("opened input file", zap.String("path", location))
	return file, nil
}

func (o *Opener) openRemote(ctx context.Context, url string) (io.ReadCloser, error) {
	start := time.Now()
	resp, err := o.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, &OpenError{Location: url, Err: err}
	}

	body := resp.RawBody()
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		if body != nil {
			_ = body.Close()
		}
		o.logger.Warn("input fetch failed",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, &OpenError{Location: url, Err: &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}}
	}

	o.logger.Debug("fetched input",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return body, nil
}
