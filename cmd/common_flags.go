package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/monascii/config"
)

func AddCommonFlagsToTransactionalCmds(c *cobra.Command) {
	c.PersistentFlags().
		StringVarP(&config.Keystore, "keystore", "K", os.Getenv(config.KeystoreEnv), "Keystore file of the account to mint with. If empty, the hex key in "+config.PrivateKeyEnv+" is used.")
	c.PersistentFlags().
		Uint64VarP(&config.GasLimit, "gas", "g", 0, "Base gas limit for the tx. If default value is used, we will use the node to estimate the gas limit. The gas limit to be used in the tx is gas limit + extra gas limit")
	c.PersistentFlags().
		Uint64VarP(&config.ExtraGasLimit, "extragas", "G", 5000, "Extra gas limit for the tx. The gas limit to be used in the tx is gas limit + extra gas limit")
	c.PersistentFlags().
		BoolVarP(&config.ForceLegacy, "legacy-tx", "L", false, "Force using legacy transaction")
	c.PersistentFlags().
		BoolVarP(&config.DontBroadcast, "dry", "d", false, "Will not broadcast the tx, only show signed tx. Nothing is added to the gallery.")
	c.PersistentFlags().
		BoolVarP(&config.DontWaitToBeMined, "no-wait", "F", false, "Will not wait the tx to be mined.")
	c.PersistentFlags().
		BoolVarP(&config.Yes, "yes", "y", false, "Don't ask for confirmation before broadcasting")
}
