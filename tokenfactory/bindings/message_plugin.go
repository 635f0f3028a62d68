package bindings

import (
	"context"
	"encoding/json"
	"time"

	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	dbm "github.com/tendermint/tm-db"

	"github.com/DefiantLabs/cosmos-tokenfactory/config"
	"github.com/DefiantLabs/cosmos-tokenfactory/pkg/model"
	"github.com/DefiantLabs/cosmos-tokenfactory/pkg/repository"
	bindingstypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/bindings/types"
	tokenfactorykeeper "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/keeper"
	tokenfactorytypes "github.com/DefiantLabs/cosmos-tokenfactory/tokenfactory/types"
)

const (
	MethodCreateDenom   = "create_denom"
	MethodChangeAdmin   = "change_admin"
	MethodMintTokens    = "mint_tokens"
	MethodBurnTokens    = "burn_tokens"
	MethodSetMetadata   = "set_metadata"
	MethodForceTransfer = "force_transfer_tokens"

	methodUnknown = "unknown"
)

// Messenger executes token factory messages against a backend. Every message runs in its
// own cache layer which is written back in one batch, and only when the message succeeds.
type Messenger struct {
	db        dbm.DB
	addresses tokenfactorytypes.AddressValidator
	publisher repository.EventPublisher
}

func NewMessenger(db dbm.DB, addresses tokenfactorytypes.AddressValidator, publisher repository.EventPublisher) *Messenger {
	if addresses == nil {
		addresses = tokenfactorytypes.MockAddresses{}
	}
	if publisher == nil {
		publisher = repository.NopPublisher{}
	}
	return &Messenger{
		db:        db,
		addresses: addresses,
		publisher: publisher,
	}
}

// DispatchRaw decodes a JSON token factory message and dispatches it.
func (m *Messenger) DispatchRaw(ctx context.Context, sender string, raw json.RawMessage) (*bindingstypes.Response, error) {
	var contractMsg bindingstypes.TokenFactoryMsg
	if err := json.Unmarshal(raw, &contractMsg); err != nil {
		messagesTotal.WithLabelValues(methodUnknown, resultError).Inc()
		return nil, sdkerrors.Wrap(err, "token factory msg")
	}
	return m.DispatchMsg(ctx, sender, contractMsg)
}

// DispatchMsg executes msg on behalf of sender.
func (m *Messenger) DispatchMsg(ctx context.Context, sender string, msg bindingstypes.TokenFactoryMsg) (*bindingstypes.Response, error) {
	command, err := msg.Command()
	if err != nil {
		messagesTotal.WithLabelValues(methodUnknown, resultError).Inc()
		return nil, err
	}

	var res *bindingstypes.Response
	var denom string
	err = inTransaction(m.db, func(store storetypes.KVStore) error {
		registry, _ := Keepers(store, m.addresses)

		var err error
		switch c := command.(type) {
		case *bindingstypes.CreateDenom:
			res, denom, err = m.createDenom(registry, sender, c)
		case *bindingstypes.ChangeAdmin:
			res, denom, err = m.changeAdmin(registry, sender, c)
		case *bindingstypes.MintTokens:
			res, denom, err = m.mintTokens(registry, sender, c)
		case *bindingstypes.BurnTokens:
			res, denom, err = m.burnTokens(registry, sender, c)
		case *bindingstypes.SetMetadata:
			res, denom, err = m.setMetadata(registry, sender, c)
		case *bindingstypes.ForceTransfer:
			res, denom, err = m.forceTransfer(registry, sender, c)
		default:
			err = sdkerrors.Wrapf(tokenfactorytypes.ErrUnknownRequest, "unhandled token msg %T", command)
		}
		return err
	})

	if err != nil {
		messagesTotal.WithLabelValues(methodOf(command), resultError).Inc()
		config.Log.ZDebug().Err(err).Str("sender", sender).Str("method", methodOf(command)).Msg("token factory msg failed")
		return nil, err
	}

	messagesTotal.WithLabelValues(methodOf(command), resultOk).Inc()

	m.publish(ctx, sender, denom, res)
	return res, nil
}

func (m *Messenger) publish(ctx context.Context, sender, denom string, res *bindingstypes.Response) {
	method, _ := res.Attribute("method")
	event := &model.RegistryEvent{
		Method:     method,
		Sender:     sender,
		Denom:      denom,
		Attributes: make(map[string]string, len(res.Attributes)),
		Time:       time.Now().UTC(),
	}
	for _, attr := range res.Attributes {
		event.Attributes[attr.Key] = attr.Value
	}

	if err := m.publisher.PublishEvent(ctx, event); err != nil {
		config.Log.Warn("Failed to publish token factory event", err)
	}
}

// createDenom creates a new token denom
func (m *Messenger) createDenom(f tokenfactorykeeper.Keeper, sender string, createDenom *bindingstypes.CreateDenom) (*bindingstypes.Response, string, error) {
	denom, err := f.CreateDenom(sender, createDenom.Subdenom, createDenom.Metadata)
	if err != nil {
		return nil, "", sdkerrors.Wrap(err, "perform create denom")
	}

	res := bindingstypes.NewResponse(MethodCreateDenom).AddAttribute("denom", denom)
	res.Data = tokenfactorytypes.EncodeCreateDenomReply(denom)
	return res, denom, nil
}

// changeAdmin changes the admin of a denom the sender controls.
func (m *Messenger) changeAdmin(f tokenfactorykeeper.Keeper, sender string, changeAdmin *bindingstypes.ChangeAdmin) (*bindingstypes.Response, string, error) {
	if err := f.ChangeAdmin(sender, changeAdmin.Denom, changeAdmin.NewAdminAddress); err != nil {
		return nil, "", sdkerrors.Wrap(err, "failed changing admin from message")
	}
	denom, err := f.CanonicalDenom(changeAdmin.Denom)
	if err != nil {
		return nil, "", err
	}

	res := bindingstypes.NewResponse(MethodChangeAdmin).
		AddAttribute("denom", denom).
		AddAttribute("new_admin", changeAdmin.NewAdminAddress)
	return res, denom, nil
}

// mintTokens mints tokens of a specified denom to an address.
func (m *Messenger) mintTokens(f tokenfactorykeeper.Keeper, sender string, mint *bindingstypes.MintTokens) (*bindingstypes.Response, string, error) {
	if err := f.MintTokens(sender, mint.Denom, mint.Amount, mint.MintToAddress); err != nil {
		return nil, "", sdkerrors.Wrap(err, "perform mint")
	}
	denom, err := f.CanonicalDenom(mint.Denom)
	if err != nil {
		return nil, "", err
	}

	res := bindingstypes.NewResponse(MethodMintTokens).
		AddAttribute("denom", denom).
		AddAttribute("amount", mint.Amount.String()).
		AddAttribute("mint_to_address", mint.MintToAddress)
	return res, denom, nil
}

// burnTokens burns tokens held by the sender.
func (m *Messenger) burnTokens(f tokenfactorykeeper.Keeper, sender string, burn *bindingstypes.BurnTokens) (*bindingstypes.Response, string, error) {
	if err := f.BurnTokens(sender, burn.Denom, burn.Amount, burn.BurnFromAddress); err != nil {
		return nil, "", sdkerrors.Wrap(err, "perform burn")
	}
	denom, err := f.CanonicalDenom(burn.Denom)
	if err != nil {
		return nil, "", err
	}

	res := bindingstypes.NewResponse(MethodBurnTokens).
		AddAttribute("denom", denom).
		AddAttribute("amount", burn.Amount.String())
	return res, denom, nil
}

// setMetadata replaces the metadata of a denom the sender controls.
func (m *Messenger) setMetadata(f tokenfactorykeeper.Keeper, sender string, setMetadata *bindingstypes.SetMetadata) (*bindingstypes.Response, string, error) {
	if err := f.SetMetadata(sender, setMetadata.Denom, setMetadata.Metadata); err != nil {
		return nil, "", sdkerrors.Wrap(err, "setting metadata")
	}
	denom, err := f.CanonicalDenom(setMetadata.Denom)
	if err != nil {
		return nil, "", err
	}

	return bindingstypes.NewResponse(MethodSetMetadata).AddAttribute("denom", denom), denom, nil
}

// forceTransfer moves tokens between two accounts on the sender's authority.
func (m *Messenger) forceTransfer(f tokenfactorykeeper.Keeper, sender string, forceTransfer *bindingstypes.ForceTransfer) (*bindingstypes.Response, string, error) {
	if err := f.ForceTransfer(sender, forceTransfer.Denom, forceTransfer.Amount, forceTransfer.FromAddress, forceTransfer.ToAddress); err != nil {
		return nil, "", sdkerrors.Wrap(err, "perform force transfer")
	}
	denom, err := f.CanonicalDenom(forceTransfer.Denom)
	if err != nil {
		return nil, "", err
	}

	res := bindingstypes.NewResponse(MethodForceTransfer).
		AddAttribute("denom", denom).
		AddAttribute("amount", forceTransfer.Amount.String()).
		AddAttribute("from_address", forceTransfer.FromAddress).
		AddAttribute("to_address", forceTransfer.ToAddress)
	return res, denom, nil
}

func methodOf(command bindingstypes.TokenCommand) string {
	switch command.(type) {
	case *bindingstypes.CreateDenom:
		return MethodCreateDenom
	case *bindingstypes.ChangeAdmin:
		return MethodChangeAdmin
	case *bindingstypes.MintTokens:
		return MethodMintTokens
	case *bindingstypes.BurnTokens:
		return MethodBurnTokens
	case *bindingstypes.SetMetadata:
		return MethodSetMetadata
	case *bindingstypes.ForceTransfer:
		return MethodForceTransfer
	default:
		return methodUnknown
	}
}
