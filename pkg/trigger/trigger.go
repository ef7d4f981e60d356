package trigger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/devfolio/portfolio-api/pkg/httpclient"
	"github.com/devfolio/portfolio-api/pkg/logger"
	"github.com/devfolio/portfolio-api/pkg/retry"
	"go.uber.org/zap"
)

// callTimeout bounds the whole notification, retries included
const callTimeout = 30 * time.Second

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("trigger returned status %d", e.code)
}

// retryable retries transport failures and 5xx responses
func retryable(err error) bool {
	if se, ok := err.(*statusError); ok {
		return se.code >= 500
	}
	return true
}

// Call performs a GET on triggerURL with recordID appended and retries
// transient failures.
func Call(ctx context.Context, triggerURL, recordID string, httpClient httpclient.Client, cfg retry.Config) error {
	targetURL := triggerURL + recordID
	cfg.Retryable = retryable

	return retry.Do(ctx, cfg, "trigger", func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
		if err != nil {
			return err
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &statusError{code: resp.StatusCode}
		}

		logger.Info("Trigger URL called successfully",
			zap.String("url", targetURL),
			zap.String("record_id", recordID),
			zap.Int("status_code", resp.StatusCode))
		return nil
	})
}

// CallAsync notifies triggerURL in the background. Failures are logged and
// never reach the caller. An empty triggerURL disables the call.
func CallAsync(triggerURL, recordID string, httpClient httpclient.Client) {
	if triggerURL == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		if err := Call(ctx, triggerURL, recordID, httpClient, retry.WebhookConfig()); err != nil {
			logger.Error("Failed to call trigger URL",
				zap.Error(err),
				zap.String("url", triggerURL),
				zap.String("record_id", recordID))
		}
	}()
}
