package types

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

// QueryServer answers converter queries.
type QueryServer interface {
	Config(context.Context) (*Config, error)
	Admin(context.Context) (*AdminResponse, error)
}

// QueryMsg is the JSON query envelope. Exactly one field is set.
type QueryMsg struct {
	Config *struct{} `json:"config,omitempty"`
	Admin  *struct{} `json:"admin,omitempty"`
}

// AdminResponse is the answer to an admin query. Admin is nil when no admin
// is stored.
type AdminResponse struct {
	Admin *string `json:"admin"`
}

// ParseQueryMsg decodes a query envelope and checks that exactly one query
// is requested.
func ParseQueryMsg(bz []byte) (QueryMsg, error) {
	var q QueryMsg
	if err := json.Unmarshal(bz, &q); err != nil {
		return QueryMsg{}, errorsmod.Wrap(ErrUnknownRequest, err.Error())
	}
	if (q.Config == nil) == (q.Admin == nil) {
		return QueryMsg{}, errorsmod.Wrap(ErrUnknownRequest, "expected exactly one of config or admin")
	}
	return q, nil
}
