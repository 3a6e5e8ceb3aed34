package networks

import (
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

const DefaultNetwork = "monad-testnet"

// NetworkString is bound to the --network flag.
var NetworkString = DefaultNetwork

func CurrentNetwork() (Network, error) {
	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork != nil && (cachedNetwork.GetName() == NetworkString || contains(cachedNetwork.GetAlternativeNames(), NetworkString)) {
		return cachedNetwork, nil
	}
	n, err := GetNetwork(NetworkString)
	if err != nil {
		return nil, err
	}
	cachedNetwork = n
	return n, nil
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
