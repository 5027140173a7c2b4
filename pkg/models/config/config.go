// Package config defines the Configuration Server and Client messages:
// node composition, keys, publication and subscription, features and
// heartbeats.
package config

import (
	"github.com/backkem/btmesh/pkg/access"
	"github.com/backkem/btmesh/pkg/schema"
	"github.com/backkem/btmesh/pkg/units"
)

// Shared leaves.
var (
	// Status is the status code field of configuration responses.
	Status = schema.U8.As(schema.Enum(StatusCodes()...))

	// TTL is a time-to-live up to 0x7F.
	TTL = schema.U8.Check(schema.Max(0x7F))

	// SIGModelID identifies a model defined by the mesh specification.
	SIGModelID = schema.NewStruct(
		schema.F("model_id", schema.U16),
	)

	// VendorModelID identifies a vendor model.
	VendorModelID = schema.NewStruct(
		schema.F("vendor_id", schema.U16),
		schema.F("model_id", schema.U16),
	)

	// ModelID is either model identifier. It must close the message.
	ModelID = schema.OneOf(VendorModelID, SIGModelID)
)

var (
	beaconState  = schema.U8.As(schema.Enum(BeaconOff, BeaconOn))
	featureState = schema.U8.As(schema.Enum(FeatureDisabled, FeatureEnabled, FeatureNotSupported))
	identity     = schema.U8.As(schema.Enum(NodeIdentityStopped, NodeIdentityRunning, NodeIdentityNotSupported))
	krPhase      = schema.U8.As(schema.Enum(KeyRefreshNormal, KeyRefreshFirst, KeyRefreshSecond))
	krTransition = schema.U8.As(schema.Enum(KeyRefreshSecond, KeyRefreshThird))
	key128       = schema.Bytes(16)
	hops         = schema.U8.Check(schema.Max(0x7F))
)

// withStatus prefixes fields with a status code.
func withStatus(fields ...schema.Field) *schema.Struct {
	return schema.NewStruct(append([]schema.Field{schema.F("status", Status)}, fields...)...)
}

var element = schema.NewStruct(
	schema.F("location", schema.U16.As(schema.Enum(Locations()...))),
	schema.F("sig_number", schema.LengthOf("sig_models", schema.U8)),
	schema.F("vendor_number", schema.LengthOf("vendor_models", schema.U8)),
	schema.F("sig_models", schema.Counted("sig_number", SIGModelID)),
	schema.F("vendor_models", schema.Counted("vendor_number", VendorModelID)),
)

// CompositionData is page 0 of the composition data.
var CompositionData = schema.NewStruct(
	schema.F("cid", schema.U16),
	schema.F("pid", schema.U16),
	schema.F("vid", schema.U16),
	schema.F("crpl", schema.U16),
	schema.F("features", schema.U16),
	schema.F("elements", schema.Greedy(element)),
)

var (
	compositionDataGet    = schema.NewStruct(schema.F("page", schema.U8))
	compositionDataStatus = schema.NewStruct(
		schema.F("page", schema.U8),
		schema.F("data", schema.On("page", schema.When(0, CompositionData)).Default(schema.GreedyBytes)),
	)
)

var (
	beacon     = schema.NewStruct(schema.F("beacon", beaconState))
	defaultTTL = schema.NewStruct(schema.F("ttl", TTL))
	gattProxy  = schema.NewStruct(schema.F("gatt_proxy", featureState))
	friend     = schema.NewStruct(schema.F("friend", featureState))
	relay      = schema.NewStruct(
		schema.F("relay", featureState),
		schema.F("retransmit", units.Retransmit(units.NetworkRetransmitUnit)),
	)
	networkTransmit = units.Retransmit(units.NetworkRetransmitUnit)
)

// PublishPeriod is the packed publish period byte.
var PublishPeriod = schema.Pack(1,
	schema.Bit("step_resolution", 2).As(schema.Enum(Resolution100ms, Resolution1s, Resolution10s, Resolution10min)),
	schema.Bit("number_of_steps", 6),
)

var publishKey = schema.Embed(schema.PackLE(2,
	schema.Bit("_rfu", 3),
	schema.Bit("credential_flag", 1).As(schema.Enum(MasterSecurity, FriendshipSecurity)),
	schema.Bit("app_key_index", 12),
))

func publication(address schema.Node) []schema.Field {
	return []schema.Field{
		schema.F("element_address", UnicastAddress),
		schema.F("publish_address", address),
		publishKey,
		schema.F("ttl", TTL),
		schema.F("publish_period", PublishPeriod),
		schema.F("retransmit", units.Retransmit(units.PublishRetransmitUnit)),
		schema.F("model", ModelID),
	}
}

var (
	publicationGet = schema.NewStruct(
		schema.F("element_address", UnicastAddress),
		schema.F("model", ModelID),
	)
	publicationSet    = schema.NewStruct(publication(NotVirtualAddress)...)
	publicationVASet  = schema.NewStruct(publication(schema.Bytes(16))...)
	publicationStatus = withStatus(publication(NotVirtualAddress)...)
)

var (
	subscription = schema.NewStruct(
		schema.F("element_address", UnicastAddress),
		schema.F("address", SubscriptionAddress),
		schema.F("model", ModelID),
	)
	subscriptionVA = schema.NewStruct(
		schema.F("element_address", UnicastAddress),
		schema.F("label", schema.Bytes(16)),
		schema.F("model", ModelID),
	)
	subscriptionDeleteAll = schema.NewStruct(
		schema.F("element_address", UnicastAddress),
		schema.F("model", ModelID),
	)
	subscriptionStatus = withStatus(
		schema.F("element_address", UnicastAddress),
		schema.F("address", StatusSubscriptionAddress),
		schema.F("model", ModelID),
	)
)

// modelGet addresses one model of an element by a fixed identifier kind.
func modelGet(id schema.Node) []schema.Field {
	return []schema.Field{
		schema.F("element_address", UnicastAddress),
		schema.F("model", id),
	}
}

var (
	sigSubscriptionGet     = schema.NewStruct(modelGet(SIGModelID)...)
	sigSubscriptionList    = withStatus(append(modelGet(SIGModelID), schema.F("addresses", schema.Greedy(schema.U16)))...)
	vendorSubscriptionGet  = schema.NewStruct(modelGet(VendorModelID)...)
	vendorSubscriptionList = withStatus(append(modelGet(VendorModelID), schema.F("addresses", schema.Greedy(schema.U16)))...)

	sigAppGet     = schema.NewStruct(modelGet(SIGModelID)...)
	sigAppList    = withStatus(append(modelGet(SIGModelID), schema.F("app_key_indices", units.KeyIndices))...)
	vendorAppGet  = schema.NewStruct(modelGet(VendorModelID)...)
	vendorAppList = withStatus(append(modelGet(VendorModelID), schema.F("app_key_indices", units.KeyIndices))...)
)

var (
	netKeyAdd    = schema.NewStruct(units.NetKeyIndex, schema.F("net_key", key128))
	netKeyIndex  = schema.NewStruct(units.NetKeyIndex)
	netKeyStatus = withStatus(units.NetKeyIndex)
	netKeyList   = schema.NewStruct(schema.F("net_key_indices", units.KeyIndices))

	appKeyAdd    = schema.NewStruct(units.NetAndAppKeyIndex, schema.F("app_key", key128))
	appKeyDelete = schema.NewStruct(units.NetAndAppKeyIndex)
	appKeyStatus = withStatus(units.NetAndAppKeyIndex)
	appKeyList   = withStatus(units.NetKeyIndex, schema.F("app_key_indices", units.KeyIndices))
)

var (
	modelApp = []schema.Field{
		schema.F("element_address", UnicastAddress),
		units.AppKeyIndex,
		schema.F("model", ModelID),
	}
	modelAppBind   = schema.NewStruct(modelApp...)
	modelAppStatus = withStatus(modelApp...)
)

var (
	nodeIdentitySet    = schema.NewStruct(units.NetKeyIndex, schema.F("identity", identity))
	nodeIdentityStatus = withStatus(units.NetKeyIndex, schema.F("identity", identity))

	keyRefreshSet    = schema.NewStruct(units.NetKeyIndex, schema.F("transition", krTransition))
	keyRefreshStatus = withStatus(units.NetKeyIndex, schema.F("phase", krPhase))
)

var (
	heartbeatPublication = []schema.Field{
		schema.F("destination", UnicastUnassignedGroupAddress),
		schema.F("count", units.Log2(1, 0x10, true)),
		schema.F("period", units.Log2(1, 0x10, false)),
		schema.F("ttl", TTL),
		schema.F("features", units.BitList(2)),
		units.NetKeyIndex,
	}
	heartbeatPublicationSet    = schema.NewStruct(heartbeatPublication...)
	heartbeatPublicationStatus = withStatus(heartbeatPublication...)

	heartbeatSubscription = []schema.Field{
		schema.F("source", UnicastUnassignedAddress),
		schema.F("destination", UnicastUnassignedGroupAddress),
		schema.F("period_log", units.Log2(1, 0x11, false)),
	}
	heartbeatSubscriptionSet    = schema.NewStruct(heartbeatSubscription...)
	heartbeatSubscriptionStatus = withStatus(append(heartbeatSubscription,
		schema.F("count", units.Log2(1, 0x11, true)),
		schema.F("min_hops", hops),
		schema.F("max_hops", hops),
	)...)
)

var (
	pollTimeoutGet    = schema.NewStruct(schema.F("lpn_address", schema.U16))
	pollTimeoutStatus = schema.NewStruct(
		schema.F("lpn_address", schema.U16),
		schema.F("poll_timeout", schema.U24),
	)
)

// Config returns the Configuration family.
func Config() access.Family {
	return access.Family{
		Name: "config",
		Messages: []access.Definition{
			access.Def(AppKeyAdd, "CONFIG_APPKEY_ADD", appKeyAdd),
			access.Def(AppKeyUpdate, "CONFIG_APPKEY_UPDATE", appKeyAdd),
			access.Def(AppKeyDelete, "CONFIG_APPKEY_DELETE", appKeyDelete),
			access.Def(AppKeyGet, "CONFIG_APPKEY_GET", netKeyIndex),
			access.Def(AppKeyList, "CONFIG_APPKEY_LIST", appKeyList),
			access.Def(AppKeyStatus, "CONFIG_APPKEY_STATUS", appKeyStatus),

			access.Def(CompositionDataGet, "CONFIG_COMPOSITION_DATA_GET", compositionDataGet),
			access.Def(CompositionDataStatus, "CONFIG_COMPOSITION_DATA_STATUS", compositionDataStatus),

			access.Def(BeaconGet, "CONFIG_BEACON_GET", access.Empty),
			access.Def(BeaconSet, "CONFIG_BEACON_SET", beacon),
			access.Def(BeaconStatus, "CONFIG_BEACON_STATUS", beacon),

			access.Def(DefaultTTLGet, "CONFIG_DEFAULT_TTL_GET", access.Empty),
			access.Def(DefaultTTLSet, "CONFIG_DEFAULT_TTL_SET", defaultTTL),
			access.Def(DefaultTTLStatus, "CONFIG_DEFAULT_TTL_STATUS", defaultTTL),

			access.Def(FriendGet, "CONFIG_FRIEND_GET", access.Empty),
			access.Def(FriendSet, "CONFIG_FRIEND_SET", friend),
			access.Def(FriendStatus, "CONFIG_FRIEND_STATUS", friend),

			access.Def(GATTProxyGet, "CONFIG_GATT_PROXY_GET", access.Empty),
			access.Def(GATTProxySet, "CONFIG_GATT_PROXY_SET", gattProxy),
			access.Def(GATTProxyStatus, "CONFIG_GATT_PROXY_STATUS", gattProxy),

			access.Def(KeyRefreshPhaseGet, "CONFIG_KEY_REFRESH_PHASE_GET", netKeyIndex),
			access.Def(KeyRefreshPhaseSet, "CONFIG_KEY_REFRESH_PHASE_SET", keyRefreshSet),
			access.Def(KeyRefreshPhaseStatus, "CONFIG_KEY_REFRESH_PHASE_STATUS", keyRefreshStatus),

			access.Def(ModelPublicationGet, "CONFIG_MODEL_PUBLICATION_GET", publicationGet),
			access.Def(ModelPublicationSet, "CONFIG_MODEL_PUBLICATION_SET", publicationSet),
			access.Def(ModelPublicationStatus, "CONFIG_MODEL_PUBLICATION_STATUS", publicationStatus),
			access.Def(ModelPublicationVASet, "CONFIG_MODEL_PUBLICATION_VIRTUAL_ADDRESS_SET", publicationVASet),

			access.Def(ModelSubscriptionAdd, "CONFIG_MODEL_SUBSCRIPTION_ADD", subscription),
			access.Def(ModelSubscriptionDelete, "CONFIG_MODEL_SUBSCRIPTION_DELETE", subscription),
			access.Def(ModelSubscriptionDeleteAll, "CONFIG_MODEL_SUBSCRIPTION_DELETE_ALL", subscriptionDeleteAll),
			access.Def(ModelSubscriptionOverwrite, "CONFIG_MODEL_SUBSCRIPTION_OVERWRITE", subscription),
			access.Def(ModelSubscriptionStatus, "CONFIG_MODEL_SUBSCRIPTION_STATUS", subscriptionStatus),
			access.Def(ModelSubscriptionVAAdd, "CONFIG_MODEL_SUBSCRIPTION_VIRTUAL_ADDRESS_ADD", subscriptionVA),
			access.Def(ModelSubscriptionVADelete, "CONFIG_MODEL_SUBSCRIPTION_VIRTUAL_ADDRESS_DELETE", subscriptionVA),
			access.Def(ModelSubscriptionVAOverwrite, "CONFIG_MODEL_SUBSCRIPTION_VIRTUAL_ADDRESS_OVERWRITE", subscriptionVA),

			access.Def(NetworkTransmitGet, "CONFIG_NETWORK_TRANSMIT_GET", access.Empty),
			access.Def(NetworkTransmitSet, "CONFIG_NETWORK_TRANSMIT_SET", networkTransmit),
			access.Def(NetworkTransmitStatus, "CONFIG_NETWORK_TRANSMIT_STATUS", networkTransmit),

			access.Def(RelayGet, "CONFIG_RELAY_GET", access.Empty),
			access.Def(RelaySet, "CONFIG_RELAY_SET", relay),
			access.Def(RelayStatus, "CONFIG_RELAY_STATUS", relay),

			access.Def(SIGModelSubscriptionGet, "CONFIG_SIG_MODEL_SUBSCRIPTION_GET", sigSubscriptionGet),
			access.Def(SIGModelSubscriptionList, "CONFIG_SIG_MODEL_SUBSCRIPTION_LIST", sigSubscriptionList),
			access.Def(VendorModelSubscriptionGet, "CONFIG_VENDOR_MODEL_SUBSCRIPTION_GET", vendorSubscriptionGet),
			access.Def(VendorModelSubscriptionList, "CONFIG_VENDOR_MODEL_SUBSCRIPTION_LIST", vendorSubscriptionList),

			access.Def(LowPowerNodePollTimeoutGet, "CONFIG_LOW_POWER_NODE_POLLTIMEOUT_GET", pollTimeoutGet),
			access.Def(LowPowerNodePollTimeoutStatus, "CONFIG_LOW_POWER_NODE_POLLTIMEOUT_STATUS", pollTimeoutStatus),

			access.Def(HeartbeatPublicationGet, "CONFIG_HEARTBEAT_PUBLICATION_GET", access.Empty),
			access.Def(HeartbeatPublicationSet, "CONFIG_HEARTBEAT_PUBLICATION_SET", heartbeatPublicationSet),
			access.Def(HeartbeatPublicationStatus, "CONFIG_HEARTBEAT_PUBLICATION_STATUS", heartbeatPublicationStatus),
			access.Def(HeartbeatSubscriptionGet, "CONFIG_HEARTBEAT_SUBSCRIPTION_GET", access.Empty),
			access.Def(HeartbeatSubscriptionSet, "CONFIG_HEARTBEAT_SUBSCRIPTION_SET", heartbeatSubscriptionSet),
			access.Def(HeartbeatSubscriptionStatus, "CONFIG_HEARTBEAT_SUBSCRIPTION_STATUS", heartbeatSubscriptionStatus),

			access.Def(ModelAppBind, "CONFIG_MODEL_APP_BIND", modelAppBind),
			access.Def(ModelAppStatus, "CONFIG_MODEL_APP_STATUS", modelAppStatus),
			access.Def(ModelAppUnbind, "CONFIG_MODEL_APP_UNBIND", modelAppBind),

			access.Def(NetKeyAdd, "CONFIG_NETKEY_ADD", netKeyAdd),
			access.Def(NetKeyDelete, "CONFIG_NETKEY_DELETE", netKeyIndex),
			access.Def(NetKeyGet, "CONFIG_NETKEY_GET", access.Empty),
			access.Def(NetKeyList, "CONFIG_NETKEY_LIST", netKeyList),
			access.Def(NetKeyStatus, "CONFIG_NETKEY_STATUS", netKeyStatus),
			access.Def(NetKeyUpdate, "CONFIG_NETKEY_UPDATE", netKeyAdd),

			access.Def(NodeIdentityGet, "CONFIG_NODE_IDENTITY_GET", netKeyIndex),
			access.Def(NodeIdentitySet, "CONFIG_NODE_IDENTITY_SET", nodeIdentitySet),
			access.Def(NodeIdentityStatus, "CONFIG_NODE_IDENTITY_STATUS", nodeIdentityStatus),

			access.Def(NodeReset, "CONFIG_NODE_RESET", access.Empty),
			access.Def(NodeResetStatus, "CONFIG_NODE_RESET_STATUS", access.Empty),

			access.Def(SIGModelAppGet, "CONFIG_SIG_MODEL_APP_GET", sigAppGet),
			access.Def(SIGModelAppList, "CONFIG_SIG_MODEL_APP_LIST", sigAppList),
			access.Def(VendorModelAppGet, "CONFIG_VENDOR_MODEL_APP_GET", vendorAppGet),
			access.Def(VendorModelAppList, "CONFIG_VENDOR_MODEL_APP_LIST", vendorAppList),
		},
	}
}

// Families returns every family defined by this package.
func Families() []access.Family {
	return []access.Family{Config()}
}
