package common

const (
	DefaultBIP39Passphrase = ""
	DefaultCardanoHDPath   = "m/1852'/1815'/0'/0/0"

	NetworkMainnet = "mainnet"
	NetworkPreprod = "preprod"
	NetworkPreview = "preview"

	KeyHashLength    = 28
	PublicKeyLength  = 32
	SignatureLength  = 64
	TxHashLength     = 32
	HardenedKeyStart = uint32(0x80000000)
)
