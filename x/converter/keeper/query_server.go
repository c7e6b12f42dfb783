package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	"github.com/manifest-network/manifest-contracts/x/converter/types"
)

var _ types.QueryServer = Querier{}

type Querier struct {
	Keeper
}

func NewQuerier(keeper Keeper) Querier {
	return Querier{Keeper: keeper}
}

func (k Querier) Config(c context.Context) (*types.Config, error) {
	cfg, err := k.GetConfig(c)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (k Querier) Admin(c context.Context) (*types.AdminResponse, error) {
	admin, ok, err := k.admin.Admin(c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &types.AdminResponse{}, nil
	}
	return &types.AdminResponse{Admin: &admin}, nil
}

// Query answers a JSON query envelope with a JSON response.
func (k Querier) Query(c context.Context, request []byte) ([]byte, error) {
	q, err := types.ParseQueryMsg(request)
	if err != nil {
		return nil, err
	}

	var res any
	switch {
	case q.Config != nil:
		res, err = k.Config(c)
	case q.Admin != nil:
		res, err = k.Admin(c)
	}
	if err != nil {
		return nil, err
	}

	bz, err := json.Marshal(res)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to encode query response")
	}
	return bz, nil
}
