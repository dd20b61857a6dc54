// Package erc20 encodes calls to the BaseERC20Factory contract, which
// deploys standard ERC-20 tokens on Hedera's EVM layer.
package erc20

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// DeployGas is the gas limit for a factory deployToken call.
const DeployGas = 3_000_000

const factoryABIJSON = `[{
	"name": "deployToken",
	"type": "function",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "name", "type": "string"},
		{"name": "symbol", "type": "string"},
		{"name": "decimals", "type": "uint8"},
		{"name": "initialSupply", "type": "uint256"}
	],
	"outputs": [{"name": "token", "type": "address"}]
}]`

var factoryABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(factoryABIJSON))
	if err != nil {
		panic(fmt.Sprintf("erc20: bad factory ABI: %v", err))
	}
	factoryABI = parsed
}

// factoryIDs holds the deployed BaseERC20Factory contract per network.
var factoryIDs = map[string]string{
	"testnet": "0.0.5615001",
	"mainnet": "0.0.7890000",
}

// FactoryContractID returns the factory contract for a network. override,
// when non-empty, replaces the built-in id (private deployments).
func FactoryContractID(network, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	id, ok := factoryIDs[network]
	if !ok {
		return "", fmt.Errorf("no ERC20 factory deployed on %s", network)
	}
	return id, nil
}

// PackDeployToken ABI-encodes a deployToken call.
func PackDeployToken(name, symbol string, decimals uint8, initialSupply *big.Int) ([]byte, error) {
	if initialSupply == nil {
		initialSupply = big.NewInt(0)
	}
	data, err := factoryABI.Pack("deployToken", name, symbol, decimals, initialSupply)
	if err != nil {
		return nil, fmt.Errorf("encode deployToken: %w", err)
	}
	return data, nil
}
