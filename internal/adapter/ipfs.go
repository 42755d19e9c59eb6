package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-will-keeper/internal/config"
	"github.com/MKhiriev/go-will-keeper/internal/logger"
	"github.com/MKhiriev/go-will-keeper/internal/utils"
	"github.com/MKhiriev/go-will-keeper/models"
)

type ipfsStorageAdapter struct {
	client   *utils.HTTPClient
	endpoint string

	logger *logger.Logger
}

// NewIPFSStorageAdapter constructs a [StorageAdapter] that posts to the add
// endpoint in adapterCfg.IPFSURL. Basic auth is attached when a project id
// is configured.
func NewIPFSStorageAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (StorageAdapter, error) {
	endpoint, err := utils.NormalizeURL(adapterCfg.IPFSURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ipfs url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	if adapterCfg.IPFSProjectID != "" {
		client.SetBasicAuth(adapterCfg.IPFSProjectID, adapterCfg.IPFSProjectSecret)
	}

	return &ipfsStorageAdapter{client: client, endpoint: endpoint, logger: log}, nil
}

// Upload implements [StorageAdapter]. Transport failures and non-2xx
// replies are wrapped in [ErrGatewayUnavailable]; a reply without a token
// returns [ErrCIDNotFound].
func (a *ipfsStorageAdapter) Upload(ctx context.Context, name string, content io.Reader) (models.UploadResult, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetFileReader("file", name, content).
		Post(a.endpoint)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w: %w", ErrGatewayUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{}, err
	}

	result, err := ExtractCID(resp.Body())
	if err != nil {
		a.logger.Warn().
			Str("func", "ipfsStorageAdapter.Upload").
			Str("file", name).
			Int("status", resp.StatusCode()).
			Msg("gateway reply has no content identifier")
		return models.UploadResult{}, err
	}

	if result.FileName == "" {
		result.FileName = name
	}

	a.logger.Info().
		Str("func", "ipfsStorageAdapter.Upload").
		Str("file", name).
		Str("cid", result.CID).
		Str("source", string(result.Source)).
		Msg("file uploaded")

	return result, nil
}
