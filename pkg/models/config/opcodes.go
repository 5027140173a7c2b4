package config

import "github.com/backkem/btmesh/pkg/opcode"

// Configuration opcodes.
const (
	AppKeyAdd    opcode.Opcode = 0x00
	AppKeyUpdate opcode.Opcode = 0x01
	AppKeyDelete opcode.Opcode = 0x8000
	AppKeyGet    opcode.Opcode = 0x8001
	AppKeyList   opcode.Opcode = 0x8002
	AppKeyStatus opcode.Opcode = 0x8003

	CompositionDataGet    opcode.Opcode = 0x8008
	CompositionDataStatus opcode.Opcode = 0x02

	BeaconGet    opcode.Opcode = 0x8009
	BeaconSet    opcode.Opcode = 0x800A
	BeaconStatus opcode.Opcode = 0x800B

	DefaultTTLGet    opcode.Opcode = 0x800C
	DefaultTTLSet    opcode.Opcode = 0x800D
	DefaultTTLStatus opcode.Opcode = 0x800E

	FriendGet    opcode.Opcode = 0x800F
	FriendSet    opcode.Opcode = 0x8010
	FriendStatus opcode.Opcode = 0x8011

	GATTProxyGet    opcode.Opcode = 0x8012
	GATTProxySet    opcode.Opcode = 0x8013
	GATTProxyStatus opcode.Opcode = 0x8014

	KeyRefreshPhaseGet    opcode.Opcode = 0x8015
	KeyRefreshPhaseSet    opcode.Opcode = 0x8016
	KeyRefreshPhaseStatus opcode.Opcode = 0x8017

	ModelPublicationGet   opcode.Opcode = 0x8018
	ModelPublicationSet   opcode.Opcode = 0x03
	ModelPublicationVASet opcode.Opcode = 0x801A

	ModelPublicationStatus opcode.Opcode = 0x8019

	ModelSubscriptionAdd       opcode.Opcode = 0x801B
	ModelSubscriptionDelete    opcode.Opcode = 0x801C
	ModelSubscriptionDeleteAll opcode.Opcode = 0x801D
	ModelSubscriptionOverwrite opcode.Opcode = 0x801E
	ModelSubscriptionStatus    opcode.Opcode = 0x801F

	ModelSubscriptionVAAdd       opcode.Opcode = 0x8020
	ModelSubscriptionVADelete    opcode.Opcode = 0x8021
	ModelSubscriptionVAOverwrite opcode.Opcode = 0x8022

	NetworkTransmitGet    opcode.Opcode = 0x8023
	NetworkTransmitSet    opcode.Opcode = 0x8024
	NetworkTransmitStatus opcode.Opcode = 0x8025

	RelayGet    opcode.Opcode = 0x8026
	RelaySet    opcode.Opcode = 0x8027
	RelayStatus opcode.Opcode = 0x8028

	SIGModelSubscriptionGet     opcode.Opcode = 0x8029
	SIGModelSubscriptionList    opcode.Opcode = 0x802A
	VendorModelSubscriptionGet  opcode.Opcode = 0x802B
	VendorModelSubscriptionList opcode.Opcode = 0x802C

	LowPowerNodePollTimeoutGet    opcode.Opcode = 0x802D
	LowPowerNodePollTimeoutStatus opcode.Opcode = 0x802E

	HeartbeatPublicationGet     opcode.Opcode = 0x8038
	HeartbeatPublicationSet     opcode.Opcode = 0x8039
	HeartbeatPublicationStatus  opcode.Opcode = 0x06
	HeartbeatSubscriptionGet    opcode.Opcode = 0x803A
	HeartbeatSubscriptionSet    opcode.Opcode = 0x803B
	HeartbeatSubscriptionStatus opcode.Opcode = 0x803C

	ModelAppBind   opcode.Opcode = 0x803D
	ModelAppStatus opcode.Opcode = 0x803E
	ModelAppUnbind opcode.Opcode = 0x803F

	NetKeyAdd    opcode.Opcode = 0x8040
	NetKeyDelete opcode.Opcode = 0x8041
	NetKeyGet    opcode.Opcode = 0x8042
	NetKeyList   opcode.Opcode = 0x8043
	NetKeyStatus opcode.Opcode = 0x8044
	NetKeyUpdate opcode.Opcode = 0x8045

	NodeIdentityGet    opcode.Opcode = 0x8046
	NodeIdentitySet    opcode.Opcode = 0x8047
	NodeIdentityStatus opcode.Opcode = 0x8048

	NodeReset       opcode.Opcode = 0x8049
	NodeResetStatus opcode.Opcode = 0x804A

	SIGModelAppGet     opcode.Opcode = 0x804B
	SIGModelAppList    opcode.Opcode = 0x804C
	VendorModelAppGet  opcode.Opcode = 0x804D
	VendorModelAppList opcode.Opcode = 0x804E
)
