// Package client provides the `fungible` command-line client.
//
// The id and key commands work on identifiers alone. The asset and pair
// commands read and write the registry through the HTTP API of a running
// server (--server, default FUNGIBLE_HTTP or http://127.0.0.1:8080), or open a
// data directory directly when --data-dir or --config is given without
// --server. A local data directory cannot be opened while a server holds it.
//
// Usage
//
//	fungible id parse 'Token(terra1xyz)'
//	fungible id sort 'Coin(uusd)' 'Token(b)' 'Coin(uluna)'
//
//	fungible key encode 'Coin(uluna)'                      # hex, 00756c756e61
//	fungible key encode 'Coin(uluna)' --format base58
//	fungible key encode 'Coin(uluna)' --quote 'Token(whDAI)' --namespace pairs
//	fungible key decode 00756c756e61
//	fungible key decode --pair <hex>
//
//	fungible asset put 'Coin(uluna)' --symbol LUNA --decimals 6
//	fungible asset list --kind token --filter 'json.decimals >= 6.0'
//	fungible asset list --order value
//
//	fungible pair put 'Coin(uluna)' 'Token(whDAI)' --contract terra1pool
//	fungible pair list --base 'Coin(uluna)'
//
//	fungible changes --after 120
//	fungible changes --follow
//
//	fungible health --grpc 127.0.0.1:50051
package client
