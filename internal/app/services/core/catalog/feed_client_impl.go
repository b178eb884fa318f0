package catalog

import (
	"context"
	"net/http"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"
	"preplan-service/internal/pkg/schedule"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	feedClientInstance FeedClient
	onceFeedClient     sync.Once
)

type feedClient struct {
	FeedURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewFeedClient(feedURL string, fetchTimeout time.Duration, logger *zap.Logger) FeedClient {
	onceFeedClient.Do(func() {
		feedClientInstance = &feedClient{
			FeedURL:    feedURL,
			HTTPClient: &http.Client{Timeout: fetchTimeout},
			Log:        logger,
		}
	})
	return feedClientInstance
}

func (c *feedClient) FetchFeed(ctx context.Context) ([]schedule.FeedRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("feedClient.FetchFeed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FeedURL, nil)
	if err != nil {
		c.Log.Error("feedClient.FetchFeed error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCatalogFeedRequest(err)
	}
	req.Header.Set("Accept", constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("feedClient.FetchFeed error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCatalogFeedRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Error("feedClient.FetchFeed unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusKey, resp.StatusCode),
		)
		return nil, exceptions.ErrCatalogFeedRequest(nil)
	}

	var records []schedule.FeedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		c.Log.Error("feedClient.FetchFeed error decoding payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCatalogFeedDecode(err)
	}

	return records, nil
}
