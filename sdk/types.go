package sdk

// Address is a VSC account identity, e.g. "hive:someone".
type Address string

func (a Address) String() string { return string(a) }

// Asset names a liquid token the contract can hold.
type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

func (a Asset) String() string { return string(a) }

// Intent is a caller-side authorization attached to a transaction,
// e.g. transfer.allow with a token and limit.
type Intent struct {
	Type string
	Args map[string]string
}

// Env is the transaction environment the host exposes to the contract.
type Env struct {
	Sender struct {
		Address Address
	}
	TxId    string
	Intents []Intent
}
