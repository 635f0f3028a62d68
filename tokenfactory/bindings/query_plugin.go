package bindings

import (
	"encoding/json"
	"fmt"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	bindingstypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings/types"
	tokenfactorykeeper "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/keeper"
	tokenfactorytypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

// QueryPlugin answers token factory queries from the registry.
type QueryPlugin struct {
	querier tokenfactorykeeper.Querier
}

// NewQueryPlugin returns a query plugin over the committed state in store.
func NewQueryPlugin(store storetypes.KVStore, addresses tokenfactorytypes.AddressValidator) *QueryPlugin {
	registry, _ := Keepers(store, addresses)
	return &QueryPlugin{querier: tokenfactorykeeper.NewQuerier(registry)}
}

// CustomQuerier dispatches custom token factory queries.
func CustomQuerier(qp *QueryPlugin) func(request json.RawMessage) ([]byte, error) {
	return func(request json.RawMessage) ([]byte, error) {
		var contractQuery bindingstypes.TokenFactoryQuery
		if err := json.Unmarshal(request, &contractQuery); err != nil {
			queriesTotal.WithLabelValues(methodUnknown, resultError).Inc()
			return nil, sdkerrors.Wrap(err, "token factory query")
		}

		bz, name, err := qp.Query(contractQuery)
		queriesTotal.WithLabelValues(name, resultLabel(err)).Inc()
		return bz, err
	}
}

// Query serves a decoded query and returns its JSON response together with the query name.
func (qp *QueryPlugin) Query(query bindingstypes.TokenFactoryQuery) ([]byte, string, error) {
	request, err := query.Request()
	if err != nil {
		return nil, methodUnknown, err
	}

	var name string
	var res any
	switch r := request.(type) {
	case *bindingstypes.FullDenom:
		name = "full_denom"
		res, err = qp.GetFullDenom(r.CreatorAddr, r.Subdenom)
	case *bindingstypes.DenomAdmin:
		name = "admin"
		res, err = qp.GetDenomAdmin(r.Denom)
	case *bindingstypes.GetMetadata:
		name = "metadata"
		res, err = qp.GetMetadata(r.Denom)
	case *bindingstypes.DenomsByCreator:
		name = "denoms_by_creator"
		res = qp.GetDenomsByCreator(r.Creator)
	case *bindingstypes.GetParams:
		name = "params"
		res, err = qp.GetParams()
	default:
		return nil, methodUnknown, sdkerrors.Wrapf(tokenfactorytypes.ErrUnknownRequest, "unhandled token query %T", request)
	}
	if err != nil {
		return nil, name, err
	}

	bz, err := json.Marshal(res)
	if err != nil {
		return nil, name, fmt.Errorf("failed to JSON marshal %s response: %w", name, err)
	}
	return bz, name, nil
}

// GetFullDenom is a query to get the full denom name from a creator address and subdenom.
func (qp *QueryPlugin) GetFullDenom(creator, subdenom string) (*bindingstypes.FullDenomResponse, error) {
	fullDenom, err := qp.querier.FullDenom(creator, subdenom)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "full denom query")
	}
	return &bindingstypes.FullDenomResponse{Denom: fullDenom}, nil
}

// GetDenomAdmin is a query to get denom admin.
func (qp *QueryPlugin) GetDenomAdmin(denom string) (*bindingstypes.AdminResponse, error) {
	admin, err := qp.querier.Admin(denom)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin for denom: %s: %w", denom, err)
	}
	return &bindingstypes.AdminResponse{Admin: admin}, nil
}

// GetMetadata returns the stored metadata of denom, or an empty response when none was set.
func (qp *QueryPlugin) GetMetadata(denom string) (*bindingstypes.MetadataResponse, error) {
	metadata, err := qp.querier.Metadata(denom)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata for denom: %s: %w", denom, err)
	}
	return &bindingstypes.MetadataResponse{Metadata: metadata}, nil
}

func (qp *QueryPlugin) GetDenomsByCreator(creator string) *bindingstypes.DenomsByCreatorResponse {
	return &bindingstypes.DenomsByCreatorResponse{Denoms: qp.querier.DenomsByCreator(creator)}
}

func (qp *QueryPlugin) GetParams() (*bindingstypes.ParamsResponse, error) {
	params, err := qp.querier.Params()
	if err != nil {
		return nil, err
	}
	return &bindingstypes.ParamsResponse{Params: params}, nil
}
