// Package config holds the settings bound to command line flags.
package config

const (
	// PrivateKeyEnv holds a hex private key to mint with when no keystore
	// is given.
	PrivateKeyEnv = "MONASCII_PRIVATE_KEY"
	// KeystoreEnv is the default for --keystore.
	KeystoreEnv = "MONASCII_KEYSTORE"
)

var (
	Network      string
	LogLevel     string
	StoreBackend string
	StoreDir     string
)

var (
	Keystore      string
	From          string
	GasLimit      uint64
	ExtraGasLimit uint64
	ForceLegacy   bool
	DontBroadcast bool
	DontWaitToBeMined bool
	Yes           bool
)

var (
	Category string
	Tx       string
)
