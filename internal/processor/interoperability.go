package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/repository"
	"github.com/goodnatureofminers/blockinsight7000-lisk/internal/storage"
)

const (
	moduleInteroperability                 = "interoperability"
	commandSubmitMainchainCrossChainUpdate = "submitMainchainCrossChainUpdate"
	commandSubmitSidechainCrossChainUpdate = "submitSidechainCrossChainUpdate"
	commandRegisterSidechain               = "registerSidechain"
	commandRegisterMainchain               = "registerMainchain"
	commandTerminateSidechainForLiveness   = "terminateSidechainForLiveness"
	eventTerminatedStateCreated            = "terminatedStateCreated"
	eventChainAccountUpdated               = "chainAccountUpdated"

	// MainchainName is the registered name of the mainchain.
	MainchainName = "lisk_mainchain"
)

func interoperabilityEntries() []Entry {
	return []Entry{
		entry(moduleInteroperability, commandSubmitMainchainCrossChainUpdate, applyCrossChainUpdate, revertCrossChainUpdate),
		entry(moduleInteroperability, commandSubmitSidechainCrossChainUpdate, applyCrossChainUpdate, revertCrossChainUpdate),
		// Registration and termination are final on chain; their reverts leave the chain row in place.
		entry(moduleInteroperability, commandRegisterSidechain, applyRegisterSidechain, noop),
		entry(moduleInteroperability, commandRegisterMainchain, applyRegisterMainchain, noop),
		entry(moduleInteroperability, commandTerminateSidechainForLiveness, applyTerminateSidechain, noop),
	}
}

type crossChainUpdateParams struct {
	SendingChainID string          `json:"sendingChainID"`
	Certificate    json.RawMessage `json:"certificate"`
}

type certificateJSON struct {
	Height    uint64 `json:"height"`
	Timestamp int64  `json:"timestamp"`
}

type chainAccountUpdatedJSON struct {
	Status          *int             `json:"status"`
	LastCertificate *certificateJSON `json:"lastCertificate"`
}

var chainStatuses = map[int]model.ChainStatus{
	0: model.ChainRegistered,
	1: model.ChainActive,
	2: model.ChainTerminated,
}

// crossChainOutcome derives the chain status and certificate height a CCU left behind.
// A chainAccountUpdated event is authoritative; otherwise the certificate in params is
// used when it is in decoded form.
func crossChainOutcome(p crossChainUpdateParams, events []model.Event) (model.ChainStatus, uint64) {
	status := model.ChainActive
	var height uint64

	trimmed := bytes.TrimSpace(p.Certificate)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var c certificateJSON
		if err := json.Unmarshal(trimmed, &c); err == nil {
			height = c.Height
		}
	}

	if e, ok := findEvent(events, moduleInteroperability, eventChainAccountUpdated); ok {
		var data chainAccountUpdatedJSON
		if err := json.Unmarshal(e.Data, &data); err == nil {
			if data.Status != nil {
				if s, ok := chainStatuses[*data.Status]; ok {
					status = s
				}
			}
			if data.LastCertificate != nil && data.LastCertificate.Height > 0 {
				height = data.LastCertificate.Height
			}
		}
	}
	if _, ok := findEvent(events, moduleInteroperability, eventTerminatedStateCreated); ok {
		status = model.ChainTerminated
	}
	return status, height
}

func decodeCrossChainUpdate(tx *model.Transaction) (crossChainUpdateParams, error) {
	var p crossChainUpdateParams
	if err := decodeParams(tx, &p); err != nil {
		return p, err
	}
	if p.SendingChainID == "" {
		return p, fmt.Errorf("%w: tx %s: missing sendingChainID", ErrInvalidParams, tx.ID)
	}
	return p, nil
}

func findApp(ctx context.Context, ex storage.Executor, chainID string) (model.BlockchainApp, bool, error) {
	apps, err := repository.BlockchainApps.Find(ctx, ex, storage.Where(storage.Eq("chain_id", chainID)))
	if err != nil || len(apps) == 0 {
		return model.BlockchainApp{}, false, err
	}
	return apps[0], true, nil
}

func applyCrossChainUpdate(ctx context.Context, _ *Env, in Input) error {
	p, err := decodeCrossChainUpdate(in.Tx)
	if err != nil {
		return err
	}

	app, found, err := findApp(ctx, in.DB, p.SendingChainID)
	if err != nil {
		return err
	}
	if !found {
		app = model.BlockchainApp{ChainID: p.SendingChainID, Status: model.ChainRegistered}
	}

	status, height := crossChainOutcome(p, in.Events)
	app.Status = status
	if height > 0 {
		app.LastCertificateHeight = height
	}
	app.LastUpdated = in.Header.Timestamp

	if _, err := repository.BlockchainApps.Upsert(ctx, in.DB, []model.BlockchainApp{app}); err != nil {
		return err
	}
	audit := model.CCUAudit{
		ChainID:       p.SendingChainID,
		TransactionID: in.Tx.ID,
		Height:        in.Header.Height,
		TxIndex:       in.Tx.Index,
	}
	_, err = repository.CCUAudits.Upsert(ctx, in.DB, []model.CCUAudit{audit})
	return err
}

func revertCrossChainUpdate(ctx context.Context, env *Env, in Input) error {
	p, err := decodeCrossChainUpdate(in.Tx)
	if err != nil {
		return err
	}

	_, err = repository.CCUAudits.Delete(ctx, in.DB, storage.Where(
		storage.Eq("chain_id", p.SendingChainID),
		storage.Eq("transaction_id", in.Tx.ID),
	))
	if err != nil {
		return err
	}

	app, found, err := findApp(ctx, in.DB, p.SendingChainID)
	if err != nil || !found {
		return err
	}

	prev, found, err := repository.LatestCCUAuditBefore(ctx, in.DB, p.SendingChainID, in.Header.Height, in.Tx.Index)
	if err != nil {
		return err
	}
	switch {
	case found:
		if err := restoreFromUpdate(ctx, in.DB, &app, prev); err != nil {
			return err
		}
	case app.RegistrationHeight == 0:
		// the row was created by this update, not by an indexed registration
		_, err := repository.BlockchainApps.Delete(ctx, in.DB, storage.Where(storage.Eq("chain_id", app.ChainID)))
		if err == nil {
			env.Logger.Debug("chain removed", zap.String("chain_id", app.ChainID))
		}
		return err
	default:
		if err := resetToRegistered(ctx, in.DB, &app); err != nil {
			return err
		}
	}

	env.Logger.Debug("chain status restored",
		zap.String("chain_id", app.ChainID),
		zap.String("status", string(app.Status)),
		zap.Uint64("below_height", in.Header.Height),
	)
	_, err = repository.BlockchainApps.Upsert(ctx, in.DB, []model.BlockchainApp{app})
	return err
}

func restoreFromUpdate(ctx context.Context, ex storage.Executor, app *model.BlockchainApp, audit model.CCUAudit) error {
	tx, found, err := repository.TransactionByID(ctx, ex, audit.TransactionID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("restore chain %s: cross-chain update %s not stored", audit.ChainID, audit.TransactionID)
	}
	p, err := decodeCrossChainUpdate(&tx)
	if err != nil {
		return err
	}
	events, err := repository.BlockEvents(ctx, ex, tx.BlockID)
	if err != nil {
		return err
	}

	status, height := crossChainOutcome(p, model.TransactionEvents(events, tx.ID))
	app.Status = status
	app.LastCertificateHeight = height
	app.LastUpdated = tx.Timestamp
	return nil
}

func resetToRegistered(ctx context.Context, ex storage.Executor, app *model.BlockchainApp) error {
	app.Status = model.ChainRegistered
	app.LastCertificateHeight = 0
	app.LastUpdated = 0

	block, found, err := repository.BlockAtHeight(ctx, ex, app.RegistrationHeight)
	if err != nil {
		return err
	}
	if found && app.RegistrationHeight > 0 {
		app.LastUpdated = block.Timestamp
	}
	return nil
}

type registerSidechainParams struct {
	ChainID string `json:"chainID"`
	Name    string `json:"name"`
}

func applyRegisterSidechain(ctx context.Context, _ *Env, in Input) error {
	var p registerSidechainParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return err
	}
	return registerChain(ctx, in, p.ChainID, p.Name)
}

type registerMainchainParams struct {
	OwnChainID string `json:"ownChainID"`
}

func applyRegisterMainchain(ctx context.Context, _ *Env, in Input) error {
	var p registerMainchainParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return err
	}
	chainID, err := MainchainID(p.OwnChainID)
	if err != nil {
		return err
	}
	return registerChain(ctx, in, chainID, MainchainName)
}

// registerChain records a registration without touching the status of an already known chain.
func registerChain(ctx context.Context, in Input, chainID, name string) error {
	if chainID == "" {
		return fmt.Errorf("%w: tx %s: missing chain id", ErrInvalidParams, in.Tx.ID)
	}
	app := model.BlockchainApp{
		ChainID:            chainID,
		Name:               name,
		Status:             model.ChainRegistered,
		LastUpdated:        in.Header.Timestamp,
		RegistrationHeight: in.Header.Height,
	}
	_, err := repository.BlockchainApps.Upsert(ctx, in.DB, []model.BlockchainApp{app}, "name", "registration_height")
	return err
}

type terminateSidechainParams struct {
	ChainID string `json:"chainID"`
}

func applyTerminateSidechain(ctx context.Context, _ *Env, in Input) error {
	var p terminateSidechainParams
	if err := decodeParams(in.Tx, &p); err != nil {
		return err
	}
	if p.ChainID == "" {
		return fmt.Errorf("%w: tx %s: missing chainID", ErrInvalidParams, in.Tx.ID)
	}

	app, found, err := findApp(ctx, in.DB, p.ChainID)
	if err != nil {
		return err
	}
	if !found {
		app = model.BlockchainApp{ChainID: p.ChainID}
	}
	app.Status = model.ChainTerminated
	app.LastUpdated = in.Header.Timestamp
	_, err = repository.BlockchainApps.Upsert(ctx, in.DB, []model.BlockchainApp{app})
	return err
}

// MainchainID returns the mainchain id of the network a chain id belongs to.
func MainchainID(chainID string) (string, error) {
	if len(chainID) != 8 {
		return "", fmt.Errorf("%w: chain id %q", ErrInvalidParams, chainID)
	}
	return chainID[:2] + "000000", nil
}
