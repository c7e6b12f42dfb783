package types

const (
	EventTypeInstantiate  = "instantiate"
	EventTypeConvert      = "convert"
	EventTypeUpdateConfig = "update_config"
	EventTypeUpdateAdmin  = "update_admin"
	EventTypeMigrate      = "migrate"

	AttributeKeyAction        = "action"
	AttributeKeySender        = "sender"
	AttributeKeyAdmin         = "admin"
	AttributeKeyPoaAdmin      = "poa_admin"
	AttributeKeyRate          = "rate"
	AttributeKeySourceDenom   = "source_denom"
	AttributeKeyTargetDenom   = "target_denom"
	AttributeKeyPaused        = "paused"
	AttributeKeyBurned        = "burned"
	AttributeKeyMinted        = "minted"
	AttributeKeyBurnedDenom   = "burned_denom"
	AttributeKeyMintedDenom   = "minted_denom"
	AttributeKeyAuthzGrantee  = "authz_grantee"
	AttributeKeyAuthzMsgCount = "authz_msg_count"
	AttributeKeyBurnType      = "burn_type"
	AttributeKeyMintType      = "mint_type"
	AttributeKeyNote          = "note"
	AttributeKeyOldAdmin      = "old_admin"
	AttributeKeyNewAdmin      = "new_admin"
	AttributeKeyContract      = "contract"
	AttributeKeyVersion       = "version"
	AttributeKeyFromVersion   = "from_version"
	AttributeKeyToVersion     = "to_version"

	NoteEmptyConfig     = "empty config, no changes made"
	NoteIdenticalConfig = "identical config, no changes made"
	NoteLatestVersion   = "already at latest version"
)
