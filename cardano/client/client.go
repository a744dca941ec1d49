package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blockfrost/blockfrost-go"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/models"
)

const (
	DefaultTimeout = 30 * time.Second

	ProjectIdHeader = "project_id"

	pageSize = 100
	maxPages = 20
)

type IndexerClient interface {
	GetAddressUtxos(ctx context.Context, address string) ([]Utxo, error)
	GetAddressAssetUtxos(ctx context.Context, address string, unit string) ([]Utxo, error)
	GetPolicyAssets(ctx context.Context, policyId string) ([]PolicyAsset, error)
	GetAssetAddresses(ctx context.Context, unit string) ([]AssetAddress, error)
	GetAsset(ctx context.Context, unit string) (*Asset, error)
	GetTransaction(ctx context.Context, txHash string) (*Transaction, error)
	GetTransactionUtxos(ctx context.Context, txHash string) (*TransactionUtxos, error)
	GetLatestBlock(ctx context.Context) (*Block, error)
	GetProtocolParameters(ctx context.Context) (*ProtocolParameters, error)
	GetScript(ctx context.Context, scriptHash string) (*Script, error)
	SubmitTx(ctx context.Context, tx []byte) (string, error)
}

// BlockfrostAPI is the part of blockfrost.APIClient the indexer client calls.
type BlockfrostAPI interface {
	AddressUTXOs(ctx context.Context, address string, query blockfrost.APIQueryParams) ([]blockfrost.AddressUTXO, error)
	AssetsByPolicy(ctx context.Context, policyId string) ([]blockfrost.AssetByPolicy, error)
	AssetAddresses(ctx context.Context, asset string, query blockfrost.APIQueryParams) ([]blockfrost.AssetAddress, error)
	Asset(ctx context.Context, asset string) (blockfrost.Asset, error)
	Transaction(ctx context.Context, hash string) (blockfrost.TransactionContent, error)
	TransactionUTXOs(ctx context.Context, hash string) (blockfrost.TransactionUTXOs, error)
	TransactionSubmit(ctx context.Context, cbor []byte) (string, error)
	BlockLatest(ctx context.Context) (blockfrost.Block, error)
	LatestEpochParameters(ctx context.Context) (blockfrost.EpochParameters, error)
	Script(ctx context.Context, address string) (blockfrost.Script, error)
}

// BlockfrostClient serves IndexerClient from a Blockfrost compatible indexer.
type BlockfrostClient struct {
	api     BlockfrostAPI
	timeout time.Duration
}

var _ IndexerClient = &BlockfrostClient{}

func NewIndexerClient(api BlockfrostAPI, timeout time.Duration) *BlockfrostClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BlockfrostClient{
		api:     api,
		timeout: timeout,
	}
}

func NewIndexerClientFromConfig(config models.CardanoConfig) *BlockfrostClient {
	api := blockfrost.NewAPIClient(blockfrost.APIClientOptions{
		ProjectID: config.IndexerProjectId,
		Server:    strings.TrimRight(config.IndexerURL, "/"),
	})
	log.WithField("url", config.IndexerURL).Debug("[INDEXER] Initialized blockfrost client")
	return NewIndexerClient(api, time.Duration(config.IndexerTimeoutMillis)*time.Millisecond)
}

// call runs one library call under the client timeout and maps its result onto the local type.
func call[S any, T any](c *BlockfrostClient, ctx context.Context, fn func(context.Context) (S, error)) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := fn(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	var converted T
	if err := convert(result, &converted); err != nil {
		return nil, err
	}
	return &converted, nil
}

// pages collects a paginated listing. A 404 is an empty listing.
func pages[S any, T any](c *BlockfrostClient, ctx context.Context, fn func(context.Context, blockfrost.APIQueryParams) ([]S, error)) ([]T, error) {
	all := []T{}
	for page := 1; page <= maxPages; page++ {
		items, err := call[[]S, []T](c, ctx, func(ctx context.Context) ([]S, error) {
			return fn(ctx, blockfrost.APIQueryParams{Count: pageSize, Page: page})
		})
		if IsNotFound(err) {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
		all = append(all, *items...)
		if len(*items) < pageSize {
			break
		}
	}
	return all, nil
}

// convert copies a library struct into the local type through their shared json names.
func convert(from interface{}, to interface{}) error {
	data, err := json.Marshal(from)
	if err != nil {
		return fmt.Errorf("marshal indexer response: %w", err)
	}
	if err := json.Unmarshal(data, to); err != nil {
		return fmt.Errorf("unmarshal indexer response: %w", err)
	}
	return nil
}

// wrapError turns a library api error into an *Error with the status the indexer reported.
func wrapError(err error) error {
	var apiErr *blockfrost.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("indexer request: %w", err)
	}
	body, marshalErr := json.Marshal(apiErr.Response)
	if marshalErr != nil {
		return &Error{StatusCode: http.StatusBadGateway, Kind: ErrorKindText, Message: apiErr.Error()}
	}
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)
	status := parsed.StatusCode
	if status == 0 {
		status = http.StatusBadGateway
	}
	return classifyError(status, "application/json", body)
}

func (c *BlockfrostClient) GetAddressUtxos(ctx context.Context, address string) ([]Utxo, error) {
	return pages[blockfrost.AddressUTXO, Utxo](c, ctx, func(ctx context.Context, query blockfrost.APIQueryParams) ([]blockfrost.AddressUTXO, error) {
		return c.api.AddressUTXOs(ctx, address, query)
	})
}

func (c *BlockfrostClient) GetAddressAssetUtxos(ctx context.Context, address string, unit string) ([]Utxo, error) {
	utxos, err := c.GetAddressUtxos(ctx, address)
	if err != nil {
		return nil, err
	}
	holding := []Utxo{}
	for _, utxo := range utxos {
		for _, amount := range utxo.Amount {
			if amount.Unit == unit {
				holding = append(holding, utxo)
				break
			}
		}
	}
	return holding, nil
}

func (c *BlockfrostClient) GetPolicyAssets(ctx context.Context, policyId string) ([]PolicyAsset, error) {
	assets, err := call[[]blockfrost.AssetByPolicy, []PolicyAsset](c, ctx, func(ctx context.Context) ([]blockfrost.AssetByPolicy, error) {
		return c.api.AssetsByPolicy(ctx, policyId)
	})
	if IsNotFound(err) {
		return []PolicyAsset{}, nil
	}
	if err != nil {
		return nil, err
	}
	return *assets, nil
}

func (c *BlockfrostClient) GetAssetAddresses(ctx context.Context, unit string) ([]AssetAddress, error) {
	return pages[blockfrost.AssetAddress, AssetAddress](c, ctx, func(ctx context.Context, query blockfrost.APIQueryParams) ([]blockfrost.AssetAddress, error) {
		return c.api.AssetAddresses(ctx, unit, query)
	})
}

func (c *BlockfrostClient) GetAsset(ctx context.Context, unit string) (*Asset, error) {
	return call[blockfrost.Asset, Asset](c, ctx, func(ctx context.Context) (blockfrost.Asset, error) {
		return c.api.Asset(ctx, unit)
	})
}

func (c *BlockfrostClient) GetTransaction(ctx context.Context, txHash string) (*Transaction, error) {
	return call[blockfrost.TransactionContent, Transaction](c, ctx, func(ctx context.Context) (blockfrost.TransactionContent, error) {
		return c.api.Transaction(ctx, txHash)
	})
}

func (c *BlockfrostClient) GetTransactionUtxos(ctx context.Context, txHash string) (*TransactionUtxos, error) {
	return call[blockfrost.TransactionUTXOs, TransactionUtxos](c, ctx, func(ctx context.Context) (blockfrost.TransactionUTXOs, error) {
		return c.api.TransactionUTXOs(ctx, txHash)
	})
}

func (c *BlockfrostClient) GetLatestBlock(ctx context.Context) (*Block, error) {
	return call[blockfrost.Block, Block](c, ctx, c.api.BlockLatest)
}

func (c *BlockfrostClient) GetProtocolParameters(ctx context.Context) (*ProtocolParameters, error) {
	return call[blockfrost.EpochParameters, ProtocolParameters](c, ctx, c.api.LatestEpochParameters)
}

func (c *BlockfrostClient) GetScript(ctx context.Context, scriptHash string) (*Script, error) {
	return call[blockfrost.Script, Script](c, ctx, func(ctx context.Context) (blockfrost.Script, error) {
		return c.api.Script(ctx, scriptHash)
	})
}

// SubmitTx posts the signed transaction once. The raw submitter is the fallback.
func (c *BlockfrostClient) SubmitTx(ctx context.Context, tx []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	txHash, err := c.api.TransactionSubmit(ctx, tx)
	if err != nil {
		return "", wrapError(err)
	}
	return txHash, nil
}
