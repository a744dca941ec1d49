package cardano

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/cardano/client"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/models"
)

// OracleSnapshot is the settings record of a project as last seen on chain.
type OracleSnapshot struct {
	Project        models.Project
	State          util.OracleState
	CollectionName string
	ParamUtxoRef   string
	OracleUnit     string
	OracleUtxo     client.Utxo
}

type OracleReader interface {
	GetOracleSnapshot(ctx context.Context, projectId string) (*OracleSnapshot, error)
	GetOracleSnapshotByPolicy(ctx context.Context, policyId string) (*OracleSnapshot, error)
}

type oracleReader struct {
	projects ProjectStore
	client   client.IndexerClient

	// project id to the oracle unit whose origin was checked
	verified sync.Map
}

var _ OracleReader = &oracleReader{}

func NewOracleReader(projects ProjectStore, indexer client.IndexerClient) OracleReader {
	return &oracleReader{
		projects: projects,
		client:   indexer,
	}
}

func (x *oracleReader) GetOracleSnapshot(ctx context.Context, projectId string) (*OracleSnapshot, error) {
	project, err := x.projects.FindProject(projectId)
	if err != nil {
		return nil, err
	}
	return x.snapshot(ctx, project)
}

func (x *oracleReader) GetOracleSnapshotByPolicy(ctx context.Context, policyId string) (*OracleSnapshot, error) {
	project, err := x.projects.FindProjectByPolicy(policyId)
	if err != nil {
		return nil, err
	}
	return x.snapshot(ctx, project)
}

func (x *oracleReader) snapshot(ctx context.Context, project *models.Project) (*OracleSnapshot, error) {
	logger := log.WithField("project_id", project.ProjectId)

	unit, err := x.oracleUnit(ctx, project.OraclePolicyId)
	if err != nil {
		return nil, err
	}
	if err := x.verifyOrigin(ctx, project, unit); err != nil {
		return nil, err
	}

	utxo, err := x.oracleUtxo(ctx, unit)
	if err != nil {
		return nil, err
	}

	if utxo.InlineDatum == nil {
		return nil, upstream("read oracle datum", fmt.Errorf("oracle utxo %s carries no inline datum", utxo.Input()))
	}
	state, err := util.ParseOracleState(*utxo.InlineDatum)
	if err != nil {
		return nil, upstream("decode oracle datum", err)
	}

	collectionName := project.CollectionName
	if collectionName == "" {
		collectionName = project.ProjectId
	}

	logger.WithField("oracle_utxo", utxo.Input().String()).
		WithField("count", state.Count).
		Debug("[ORACLE] Read oracle state")

	return &OracleSnapshot{
		Project:        *project,
		State:          *state,
		CollectionName: collectionName,
		ParamUtxoRef:   project.ParamUtxoRef,
		OracleUnit:     unit,
		OracleUtxo:     *utxo,
	}, nil
}

// oracleUnit finds the thread token of the one-shot oracle policy.
func (x *oracleReader) oracleUnit(ctx context.Context, oraclePolicyId string) (string, error) {
	assets, err := x.client.GetPolicyAssets(ctx, oraclePolicyId)
	if err != nil {
		return "", upstream("list oracle policy assets", err)
	}
	for _, asset := range assets {
		if asset.Quantity == "1" {
			return asset.Asset, nil
		}
	}
	return "", upstream("list oracle policy assets", fmt.Errorf("no oracle token minted under policy %s", oraclePolicyId))
}

// verifyOrigin checks that the oracle token was minted by the transaction that spent the
// project's param utxo. The oracle policy id is the one-shot policy applied to that utxo.
func (x *oracleReader) verifyOrigin(ctx context.Context, project *models.Project, unit string) error {
	if project.ParamUtxoRef == "" {
		return nil
	}
	if checked, ok := x.verified.Load(project.ProjectId); ok && checked == unit {
		return nil
	}

	paramUtxo, err := parseUtxoRef(project.ParamUtxoRef)
	if err != nil {
		return fmt.Errorf("%w: project %s: %v", ErrOracleMismatch, project.ProjectId, err)
	}
	asset, err := x.client.GetAsset(ctx, unit)
	if err != nil {
		return upstream("look up oracle token", err)
	}
	if asset.InitialMintTxHash == "" {
		return upstream("look up oracle token", fmt.Errorf("oracle token %s has no mint transaction", unit))
	}
	mintTx, err := x.client.GetTransactionUtxos(ctx, asset.InitialMintTxHash)
	if err != nil {
		return upstream("look up oracle mint", err)
	}
	if !mintTx.Spends(paramUtxo) {
		return fmt.Errorf("%w: token %s was not minted from param utxo %s", ErrOracleMismatch, unit, project.ParamUtxoRef)
	}

	x.verified.Store(project.ProjectId, unit)
	log.WithField("project_id", project.ProjectId).
		WithField("oracle_unit", unit).
		Debug("[ORACLE] Verified oracle token origin")
	return nil
}

func (x *oracleReader) oracleUtxo(ctx context.Context, unit string) (*client.Utxo, error) {
	holders, err := x.client.GetAssetAddresses(ctx, unit)
	if err != nil {
		return nil, upstream("find oracle holder", err)
	}

	var address string
	for _, holder := range holders {
		if holder.Quantity == "1" {
			address = holder.Address
			break
		}
	}
	if address == "" {
		return nil, upstream("find oracle holder", fmt.Errorf("oracle token %s is not held by any address", unit))
	}

	utxos, err := x.client.GetAddressAssetUtxos(ctx, address, unit)
	if err != nil {
		return nil, upstream("find oracle utxo", err)
	}
	if len(utxos) == 0 {
		return nil, upstream("find oracle utxo", fmt.Errorf("no utxo at %s holds oracle token %s", address, unit))
	}
	return &utxos[0], nil
}
