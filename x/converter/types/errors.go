package types

// DONTCOVER

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	DefaultCodespace = ModuleName
)

// denom errors
var (
	ErrEmptyDenom                = errorsmod.Register(DefaultCodespace, 1100, "denom is empty")
	ErrInvalidIbcDenomFormat     = errorsmod.Register(DefaultCodespace, 1101, "invalid ibc denom format")
	ErrInvalidFactoryDenomFormat = errorsmod.Register(DefaultCodespace, 1102, "invalid factory denom format")
	ErrInvalidDenomFormat        = errorsmod.Register(DefaultCodespace, 1103, "invalid denom format")
)

// rate errors
var (
	ErrInvalidRateZero    = errorsmod.Register(DefaultCodespace, 1200, "rate is zero")
	ErrInvalidRateParsing = errorsmod.Register(DefaultCodespace, 1201, "failed to parse rate")
	ErrApplyOverflow      = errorsmod.Register(DefaultCodespace, 1202, "failed to apply rate")
	ErrApplyZero          = errorsmod.Register(DefaultCodespace, 1203, "resulting amount is zero")
)

// amount errors
var (
	ErrAmountIsZero       = errorsmod.Register(DefaultCodespace, 1300, "amount is zero")
	ErrAmountExceedsMax   = errorsmod.Register(DefaultCodespace, 1301, "amount exceeds maximum")
	ErrNonPayable         = errorsmod.Register(DefaultCodespace, 1302, "non-payable function called with funds")
	ErrInvalidAmountParse = errorsmod.Register(DefaultCodespace, 1303, "failed to parse amount")
)

// convert, config, auth and migrate errors
var (
	ErrInvalidFunds        = errorsmod.Register(DefaultCodespace, 1400, "invalid funds sent")
	ErrInvalidSourceDenom  = errorsmod.Register(DefaultCodespace, 1401, "invalid source denom")
	ErrSameDenom           = errorsmod.Register(DefaultCodespace, 1500, "source and target denom cannot be the same")
	ErrNotAdmin            = errorsmod.Register(DefaultCodespace, 1600, "only admin can perform this action")
	ErrCannotRenounce      = errorsmod.Register(DefaultCodespace, 1601, "cannot renounce admin role")
	ErrInvalidAddress      = errorsmod.Register(DefaultCodespace, 1602, "invalid address")
	ErrInvalidContractName = errorsmod.Register(DefaultCodespace, 1700, "invalid contract name")
	ErrPaused              = errorsmod.Register(DefaultCodespace, 1800, "contract is paused")
	ErrNotInstantiated     = errorsmod.Register(DefaultCodespace, 1801, "converter is not instantiated")
	ErrAlreadyInstantiated = errorsmod.Register(DefaultCodespace, 1802, "converter is already instantiated")
	ErrUnknownRequest      = errorsmod.Register(DefaultCodespace, 1803, "unknown request")
)
